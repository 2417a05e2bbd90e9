package domain

import (
	"strings"
	"time"
)

// ComplexityIntermediate is the fixed complexity label attached to every
// synthesized response.
const ComplexityIntermediate = "Intermediate"

// HistoryCategoryPlaceholder is what history entries record instead of the
// real classification result. The upstream product has always written this
// placeholder; changing it is a pending product decision, so the behavior is
// kept and the real category travels on the ResponseRecord only.
const HistoryCategoryPlaceholder = "Unknown"

// Query is one submission attempt. Immutable after creation; it survives
// only as a HistoryEntry summary.
type Query struct {
	ID          int64        `json:"id"`
	RawText     string       `json:"raw_text"`
	Language    LanguageCode `json:"language"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// Template is one static corpus entry: a narrative skeleton plus its
// ordered citation list.
type Template struct {
	Language  LanguageCode
	Category  Category
	Narrative string
	Citations []string
}

// queryPlaceholder marks where the literal query text is substituted into
// a template narrative.
const queryPlaceholder = "{query}"

// BuildNarrative substitutes the literal, untransformed query text into the
// narrative skeleton. Citations are never derived from query content.
func (t Template) BuildNarrative(queryText string) string {
	return strings.ReplaceAll(t.Narrative, queryPlaceholder, queryText)
}

// Telemetry carries the synthetic presentation metrics. None of these are
// measurements; they are generated within fixed ranges for display.
type Telemetry struct {
	ConfidencePercent int `json:"confidence_percent"`
	AIAgentsConsulted int `json:"ai_agents_consulted"`
	CasesSimilar      int `json:"cases_similar"`
}

// ResponseRecord is the final synthesized answer returned to the caller.
// ProcessingTimeSeconds is real wall-clock time; ConfidencePercent,
// AIAgentsConsulted and CasesSimilar are synthetic (see Telemetry).
type ResponseRecord struct {
	QueryID               int64    `json:"query_id"`
	Text                  string   `json:"text"`
	Citations             []string `json:"citations"`
	ConfidencePercent     int      `json:"confidence_percent"`
	Category              Category `json:"category"`
	ComplexityLabel       string   `json:"complexity_label"`
	ProcessingTimeSeconds float64  `json:"processing_time_seconds"`
	AIAgentsConsulted     int      `json:"ai_agents_consulted"`
	CasesSimilar          int      `json:"cases_similar"`
	LastUpdatedLabel      string   `json:"last_updated_label"`
	LanguageDisplayName   string   `json:"language_display_name"`
}

// HistoryEntry is the bounded per-session summary of a past submission.
type HistoryEntry struct {
	ID       int64        `json:"id"`
	Text     string       `json:"text"`
	Language LanguageCode `json:"language"`
	Category string       `json:"category"`
}
