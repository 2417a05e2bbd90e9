package bootstrap

import (
	"fmt"
	"time"

	"github.com/nyayamitra/legal-assistant/internal/config"
	"github.com/nyayamitra/legal-assistant/internal/core/ports"
	"github.com/nyayamitra/legal-assistant/internal/core/usecase"
	"github.com/nyayamitra/legal-assistant/internal/infrastructure/classifier/keyword"
	"github.com/nyayamitra/legal-assistant/internal/infrastructure/corpus"
	"github.com/nyayamitra/legal-assistant/internal/infrastructure/session/memory"
	"github.com/nyayamitra/legal-assistant/internal/infrastructure/telemetry"
)

type App struct {
	Config config.Config

	Sessions ports.SessionStore
	SubmitUC *usecase.SubmitQueryUseCase
}

func New(cfg config.Config) (*App, error) {
	templates, err := corpus.Load()
	if err != nil {
		return nil, fmt.Errorf("load template corpus: %w", err)
	}

	classifier := keyword.NewClassifier()
	estimator := telemetry.NewEstimator(cfg.TelemetrySeed)
	sessions := memory.NewStore(
		cfg.FreeQueryLimit,
		cfg.HistoryLimit,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)

	submitUC := usecase.NewSubmitQueryUseCase(
		classifier,
		templates,
		estimator,
		sessions,
		time.Duration(cfg.ProcessingDelayMS)*time.Millisecond,
	)

	return &App{
		Config:   cfg,
		Sessions: sessions,
		SubmitUC: submitUC,
	}, nil
}
