package ports

import (
	"context"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

// ResolutionLevel names which step of the fallback chain produced a template.
type ResolutionLevel string

const (
	ResolutionExact           ResolutionLevel = "exact"
	ResolutionLanguageGeneric ResolutionLevel = "language_generic"
	ResolutionEnglishFallback ResolutionLevel = "english_fallback"
)

// QueryClassifier assigns a legal category to free text. It must be pure:
// identical input always yields identical output, and the result is always
// a member of domain.Categories().
type QueryClassifier interface {
	Classify(text string) domain.Category
}

// TemplateResolver resolves a response template for a (language, category)
// pair. Resolution is total: unknown languages and uncovered categories fall
// through the chain exact -> language generic -> english general.
type TemplateResolver interface {
	Resolve(language domain.LanguageCode, category domain.Category) (domain.Template, ResolutionLevel)
}

// TelemetrySource generates the synthetic presentation metrics attached to
// each response. Implementations are seedable for reproducible tests.
type TelemetrySource interface {
	Estimate() domain.Telemetry
}

// SessionStore owns session state. Begin gates a submission: it enforces
// the quota and the single in-flight submission per session, creating the
// session lazily for unknown IDs. Commit decrements the quota, appends the
// history entry and releases the in-flight gate; Abort releases the gate
// without mutating anything else.
type SessionStore interface {
	Create(ctx context.Context) (domain.Session, error)
	Get(ctx context.Context, id string) (domain.Session, error)
	Begin(ctx context.Context, id string) (domain.QuotaState, error)
	Commit(ctx context.Context, id string, entry domain.HistoryEntry) (domain.QuotaState, error)
	Abort(ctx context.Context, id string) error
}
