package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
	"github.com/nyayamitra/legal-assistant/internal/core/ports"
)

type SubmitQueryUseCase struct {
	classifier ports.QueryClassifier
	templates  ports.TemplateResolver
	telemetry  ports.TelemetrySource
	sessions   ports.SessionStore

	processingDelay time.Duration
	now             func() time.Time
}

func NewSubmitQueryUseCase(
	classifier ports.QueryClassifier,
	templates ports.TemplateResolver,
	telemetry ports.TelemetrySource,
	sessions ports.SessionStore,
	processingDelay time.Duration,
) *SubmitQueryUseCase {
	return &SubmitQueryUseCase{
		classifier:      classifier,
		templates:       templates,
		telemetry:       telemetry,
		sessions:        sessions,
		processingDelay: processingDelay,
		now:             time.Now,
	}
}

// Submit runs one query through the pipeline. Rejections happen strictly in
// order: empty text first (no session touched), then the quota and in-flight
// gates (no classification work). The quota is decremented and the history
// entry appended only after the synthesis completes; canceling ctx during
// the processing delay releases the in-flight gate and mutates nothing.
func (uc *SubmitQueryUseCase) Submit(
	ctx context.Context,
	sessionID string,
	rawText string,
	language domain.LanguageCode,
) (*domain.ResponseRecord, domain.QuotaState, error) {
	start := uc.now()

	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, domain.QuotaState{}, domain.ErrEmptyQuery
	}

	if _, err := uc.sessions.Begin(ctx, sessionID); err != nil {
		return nil, domain.QuotaState{}, err
	}

	category := uc.classifier.Classify(text)
	tmpl, _ := uc.templates.Resolve(language, category)

	if err := uc.waitProcessing(ctx); err != nil {
		_ = uc.sessions.Abort(context.WithoutCancel(ctx), sessionID)
		return nil, domain.QuotaState{}, err
	}

	query := domain.Query{
		ID:          start.UnixMilli(),
		RawText:     text,
		Language:    language,
		SubmittedAt: start,
	}
	completed := uc.now()
	record := synthesize(query, category, tmpl, uc.telemetry.Estimate(), completed.Sub(start), completed)

	quota, err := uc.sessions.Commit(ctx, sessionID, domain.HistoryEntry{
		ID:       query.ID,
		Text:     text,
		Language: language,
		Category: domain.HistoryCategoryPlaceholder,
	})
	if err != nil {
		return nil, domain.QuotaState{}, err
	}
	return record, quota, nil
}

// waitProcessing holds the submission for the artificial processing latency.
// It is the pipeline's only suspension point.
func (uc *SubmitQueryUseCase) waitProcessing(ctx context.Context) error {
	if uc.processingDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(uc.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
