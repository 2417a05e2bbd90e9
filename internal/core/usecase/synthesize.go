package usecase

import (
	"math"
	"time"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

const lastUpdatedLayout = "02 Jan 2006"

// synthesize combines the classified category, resolved template, telemetry
// and literal query text into the final response record. Citations are
// copied verbatim in corpus order; ProcessingTimeSeconds is the measured
// elapsed time rounded to one decimal place.
func synthesize(
	query domain.Query,
	category domain.Category,
	tmpl domain.Template,
	tel domain.Telemetry,
	elapsed time.Duration,
	completedAt time.Time,
) *domain.ResponseRecord {
	citations := make([]string, len(tmpl.Citations))
	copy(citations, tmpl.Citations)

	displayName := string(tmpl.Language)
	if lang, ok := domain.LanguageByCode(tmpl.Language); ok {
		displayName = lang.DisplayName
	}

	return &domain.ResponseRecord{
		QueryID:               query.ID,
		Text:                  tmpl.BuildNarrative(query.RawText),
		Citations:             citations,
		ConfidencePercent:     tel.ConfidencePercent,
		Category:              category,
		ComplexityLabel:       domain.ComplexityIntermediate,
		ProcessingTimeSeconds: math.Round(elapsed.Seconds()*10) / 10,
		AIAgentsConsulted:     tel.AIAgentsConsulted,
		CasesSimilar:          tel.CasesSimilar,
		LastUpdatedLabel:      completedAt.Format(lastUpdatedLayout),
		LanguageDisplayName:   displayName,
	}
}
