package ports

import (
	"context"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

// SubmissionService is the inbound contract for free-query submissions.
// Submit runs the whole pipeline: validation, quota gate, classification,
// template resolution, the processing delay, synthesis and history commit.
// The returned quota reflects the state after the submission.
type SubmissionService interface {
	Submit(ctx context.Context, sessionID, rawText string, language domain.LanguageCode) (*domain.ResponseRecord, domain.QuotaState, error)
}
