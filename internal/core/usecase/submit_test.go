package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
	"github.com/nyayamitra/legal-assistant/internal/core/ports"
)

type classifierFake struct {
	calls  int
	result domain.Category
}

func (f *classifierFake) Classify(string) domain.Category {
	f.calls++
	return f.result
}

type resolverFake struct {
	tmpl  domain.Template
	level ports.ResolutionLevel
}

func (f *resolverFake) Resolve(domain.LanguageCode, domain.Category) (domain.Template, ports.ResolutionLevel) {
	return f.tmpl, f.level
}

type telemetryFake struct {
	tel domain.Telemetry
}

func (f *telemetryFake) Estimate() domain.Telemetry { return f.tel }

type sessionStoreFake struct {
	remaining  int
	maxQuota   int
	inFlight   bool
	beginCalls int
	aborts     int
	commits    []domain.HistoryEntry
}

func (f *sessionStoreFake) Create(context.Context) (domain.Session, error) {
	return domain.NewSession("fake", f.maxQuota), nil
}

func (f *sessionStoreFake) Get(context.Context, string) (domain.Session, error) {
	return domain.NewSession("fake", f.maxQuota), nil
}

func (f *sessionStoreFake) Begin(context.Context, string) (domain.QuotaState, error) {
	f.beginCalls++
	if f.inFlight {
		return domain.QuotaState{}, domain.ErrSubmissionInFlight
	}
	if f.remaining <= 0 {
		return domain.QuotaState{}, domain.ErrQuotaExhausted
	}
	f.inFlight = true
	return domain.QuotaState{Remaining: f.remaining, Max: f.maxQuota}, nil
}

func (f *sessionStoreFake) Commit(_ context.Context, _ string, entry domain.HistoryEntry) (domain.QuotaState, error) {
	f.remaining--
	f.commits = append(f.commits, entry)
	f.inFlight = false
	return domain.QuotaState{Remaining: f.remaining, Max: f.maxQuota}, nil
}

func (f *sessionStoreFake) Abort(context.Context, string) error {
	f.aborts++
	f.inFlight = false
	return nil
}

func propertyTemplate() domain.Template {
	return domain.Template{
		Language:  domain.LanguageEnglish,
		Category:  domain.CategoryProperty,
		Narrative: `Regarding "{query}": tenancy deposits are governed by statute.`,
		Citations: []string{
			"Transfer of Property Act, 1882",
			"Model Tenancy Act, 2021",
			"Registration Act, 1908",
			"State Rent Control Act",
		},
	}
}

func newSubmitFixture(delay time.Duration) (*SubmitQueryUseCase, *classifierFake, *sessionStoreFake) {
	classifier := &classifierFake{result: domain.CategoryProperty}
	store := &sessionStoreFake{remaining: 5, maxQuota: 5}
	uc := NewSubmitQueryUseCase(
		classifier,
		&resolverFake{tmpl: propertyTemplate(), level: ports.ResolutionExact},
		&telemetryFake{tel: domain.Telemetry{ConfidencePercent: 97, AIAgentsConsulted: 4, CasesSimilar: 312}},
		store,
		delay,
	)
	return uc, classifier, store
}

func TestSubmitRejectsEmptyQueryBeforeAnyStateChange(t *testing.T) {
	uc, classifier, store := newSubmitFixture(0)

	for _, raw := range []string{"", "   ", "\n\t "} {
		_, _, err := uc.Submit(context.Background(), "s1", raw, domain.LanguageEnglish)
		if !domain.IsKind(err, domain.ErrEmptyQuery) {
			t.Fatalf("raw %q: expected ErrEmptyQuery, got %v", raw, err)
		}
	}
	if store.beginCalls != 0 {
		t.Fatalf("empty query reached the session store %d times", store.beginCalls)
	}
	if classifier.calls != 0 {
		t.Fatalf("empty query reached the classifier %d times", classifier.calls)
	}
}

func TestSubmitRejectsExhaustedQuotaBeforeClassification(t *testing.T) {
	uc, classifier, store := newSubmitFixture(0)
	store.remaining = 0

	_, _, err := uc.Submit(context.Background(), "s1", "my landlord kept the deposit", domain.LanguageEnglish)
	if !domain.IsKind(err, domain.ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
	if classifier.calls != 0 {
		t.Fatalf("rejected submission still invoked the classifier")
	}
	if len(store.commits) != 0 {
		t.Fatalf("rejected submission produced a history entry")
	}
}

func TestSubmitSynthesizesRecordAndCommits(t *testing.T) {
	uc, _, store := newSubmitFixture(0)
	fixed := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	record, quota, err := uc.Submit(context.Background(), "s1", "  My landlord is not returning my security deposit  ", domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if record.Category != domain.CategoryProperty {
		t.Fatalf("expected property category, got %q", record.Category)
	}
	wantText := `Regarding "My landlord is not returning my security deposit": tenancy deposits are governed by statute.`
	if record.Text != wantText {
		t.Fatalf("narrative mismatch:\n got %q\nwant %q", record.Text, wantText)
	}
	if len(record.Citations) != 4 || record.Citations[0] != "Transfer of Property Act, 1882" {
		t.Fatalf("citations not copied verbatim: %v", record.Citations)
	}
	if record.ComplexityLabel != domain.ComplexityIntermediate {
		t.Fatalf("expected complexity %q, got %q", domain.ComplexityIntermediate, record.ComplexityLabel)
	}
	if record.LastUpdatedLabel != "05 Mar 2026" {
		t.Fatalf("expected date-only label, got %q", record.LastUpdatedLabel)
	}
	if record.LanguageDisplayName != "English" {
		t.Fatalf("expected display name English, got %q", record.LanguageDisplayName)
	}
	if record.ConfidencePercent != 97 || record.AIAgentsConsulted != 4 || record.CasesSimilar != 312 {
		t.Fatalf("telemetry not carried onto record: %+v", record)
	}

	if quota.Remaining != 4 {
		t.Fatalf("expected remaining 4 after one submission, got %d", quota.Remaining)
	}
	if len(store.commits) != 1 {
		t.Fatalf("expected exactly one history commit, got %d", len(store.commits))
	}
	if store.commits[0].Category != domain.HistoryCategoryPlaceholder {
		t.Fatalf("history category expected placeholder %q, got %q",
			domain.HistoryCategoryPlaceholder, store.commits[0].Category)
	}
}

func TestSubmitDrivesQuotaToZeroThenRejects(t *testing.T) {
	uc, classifier, _ := newSubmitFixture(0)

	queries := []string{
		"landlord dispute over rent",
		"refund for a defective product",
		"unpaid salary from my employer",
		"neighbour built over the boundary",
		"how do I file a police complaint",
	}
	for i, q := range queries {
		_, quota, err := uc.Submit(context.Background(), "s1", q, domain.LanguageEnglish)
		if err != nil {
			t.Fatalf("submission %d: %v", i+1, err)
		}
		if quota.Remaining != 5-(i+1) {
			t.Fatalf("submission %d: expected remaining %d, got %d", i+1, 5-(i+1), quota.Remaining)
		}
	}

	_, _, err := uc.Submit(context.Background(), "s1", "one more", domain.LanguageEnglish)
	if !domain.IsKind(err, domain.ErrQuotaExhausted) {
		t.Fatalf("sixth submission expected ErrQuotaExhausted, got %v", err)
	}
	if classifier.calls != 5 {
		t.Fatalf("expected 5 classifier calls, got %d", classifier.calls)
	}
}

func TestSubmitCancellationDuringDelayMutatesNothing(t *testing.T) {
	uc, _, store := newSubmitFixture(500 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := uc.Submit(ctx, "s1", "my landlord kept the deposit", domain.LanguageEnglish)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
	if store.aborts != 1 {
		t.Fatalf("expected one abort, got %d", store.aborts)
	}
	if len(store.commits) != 0 {
		t.Fatalf("canceled submission committed a history entry")
	}
	if store.remaining != 5 {
		t.Fatalf("canceled submission consumed quota: remaining %d", store.remaining)
	}
	if store.inFlight {
		t.Fatalf("canceled submission left the in-flight gate held")
	}
}

func TestSubmitMeasuresProcessingTime(t *testing.T) {
	uc, _, _ := newSubmitFixture(0)
	base := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(2840 * time.Millisecond), base.Add(2840 * time.Millisecond)}
	uc.now = func() time.Time {
		next := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return next
	}

	record, _, err := uc.Submit(context.Background(), "s1", "anything", domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.ProcessingTimeSeconds != 2.8 {
		t.Fatalf("expected processing time 2.8, got %v", record.ProcessingTimeSeconds)
	}
}
