package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nyayamitra/legal-assistant/internal/config"
	"github.com/nyayamitra/legal-assistant/internal/core/domain"
	"github.com/nyayamitra/legal-assistant/internal/core/ports"
	"github.com/nyayamitra/legal-assistant/internal/core/usecase"
	"github.com/nyayamitra/legal-assistant/internal/observability/metrics"
)

const (
	serviceName     = "api"
	sessionIDHeader = "X-Session-Id"
	maxBodyBytes    = 1 << 20
)

type Router struct {
	submit   ports.SubmissionService
	sessions ports.SessionStore
	metrics  *metrics.HTTPServerMetrics
	cfg      config.Config
}

func NewRouter(
	submit ports.SubmissionService,
	sessions ports.SessionStore,
	m *metrics.HTTPServerMetrics,
	cfg config.Config,
) *Router {
	return &Router{
		submit:   submit,
		sessions: sessions,
		metrics:  m,
		cfg:      cfg,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/sessions", rt.createSession)
	mux.HandleFunc("/v1/assistant/queries", rt.submitQuery)
	mux.HandleFunc("/v1/assistant/history", rt.history)
	mux.HandleFunc("/v1/assistant/quota", rt.quota)
	mux.HandleFunc("/v1/assistant/reveal", rt.reveal)
	mux.HandleFunc("/v1/languages", rt.languages)
	mux.Handle("/metrics", rt.metrics.Handler())

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent,
		time.Duration(rt.cfg.APIOverloadTimeoutMS)*time.Millisecond)
	handler = rt.metrics.Middleware(serviceName, handler)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) createSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	sess, err := rt.sessions.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"quota":      sess.Quota,
	})
}

func (rt *Router) submitQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-Session-Id header is required"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if utf8.RuneCountInString(req.Text) > rt.cfg.QueryMaxChars {
		rt.metrics.RecordRejection(serviceName, "too_long")
		writeError(w, domain.ErrQueryTooLong)
		return
	}

	language := domain.LanguageCode(strings.ToLower(strings.TrimSpace(req.Language)))

	start := time.Now()
	record, quota, err := rt.submit.Submit(r.Context(), sessionID, req.Text, language)
	if err != nil {
		rt.metrics.RecordRejection(serviceName, rejectionReason(err))
		writeError(w, err)
		return
	}

	rt.metrics.RecordQuery(serviceName, string(record.Category), string(language),
		time.Since(start), record.ConfidencePercent)
	writeJSON(w, http.StatusOK, map[string]any{
		"record": record,
		"quota":  quota,
	})
}

func (rt *Router) history(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	sess, ok := rt.sessionFromHeader(w, r)
	if !ok {
		return
	}
	history := sess.History
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (rt *Router) quota(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	sess, ok := rt.sessionFromHeader(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Quota)
}

func (rt *Router) reveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	raw := r.URL.Query().Get("confidence")
	target, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "confidence must be an integer"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"steps": usecase.ConfidenceRevealSteps(target),
	})
}

func (rt *Router) languages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"languages": domain.Languages()})
}

func (rt *Router) sessionFromHeader(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-Session-Id header is required"})
		return domain.Session{}, false
	}
	sess, err := rt.sessions.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return domain.Session{}, false
	}
	return sess, true
}

func rejectionReason(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrEmptyQuery):
		return "empty_query"
	case domain.IsKind(err, domain.ErrQuotaExhausted):
		return "quota_exhausted"
	case domain.IsKind(err, domain.ErrSubmissionInFlight):
		return "in_flight"
	default:
		return "other"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
