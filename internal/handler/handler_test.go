package handler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

type fakeOrchestrator struct {
	results map[string]domain.TranslationResult
	err     error

	gotRequest domain.TranslationRequest
}

func (f *fakeOrchestrator) Orchestrate(_ context.Context, req domain.TranslationRequest) (map[string]domain.TranslationResult, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestHandle_Success(t *testing.T) {
	orch := &fakeOrchestrator{
		results: map[string]domain.TranslationResult{
			"de": {Content: "Hallo", QualityScore: 0.95, ProviderUsed: domain.ProviderA},
		},
	}
	h := New(orch)

	req := domain.TranslationRequest{
		SourceText:    "Hello",
		SourceLocale:  "en",
		TargetLocales: []string{"de"},
		ContentType:   domain.ContentTypeGeneric,
	}
	resp, err := h.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}

	if resp.Error != "" {
		t.Errorf("Handle() error field = %q, want empty", resp.Error)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Handle() returned %d results, want 1", len(resp.Results))
	}
	if resp.Results["de"].Content != "Hallo" {
		t.Errorf("Handle() content = %q, want %q", resp.Results["de"].Content, "Hallo")
	}
	if orch.gotRequest.SourceText != "Hello" {
		t.Errorf("Handle() forwarded sourceText = %q, want %q", orch.gotRequest.SourceText, "Hello")
	}
}

func TestHandle_ValidationErrorIsRejectedCall(t *testing.T) {
	orch := &fakeOrchestrator{
		err: &domain.ValidationError{Reason: "target locale set is empty"},
	}
	h := New(orch)

	resp, err := h.Handle(context.Background(), domain.TranslationRequest{SourceText: "Hello"})
	if err != nil {
		t.Fatalf("Handle() should not fail the Lambda for validation errors: %v", err)
	}

	if resp.Results != nil {
		t.Errorf("Handle() results = %v, want nil", resp.Results)
	}
	if !strings.Contains(resp.Error, "target locale set is empty") {
		t.Errorf("Handle() error = %q, want validation reason", resp.Error)
	}
}

func TestHandle_UnexpectedErrorPropagates(t *testing.T) {
	orch := &fakeOrchestrator{err: context.Canceled}
	h := New(orch)

	resp, err := h.Handle(context.Background(), domain.TranslationRequest{SourceText: "Hello"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Handle() error = %v, want context.Canceled", err)
	}
	if resp != nil {
		t.Errorf("Handle() response = %v, want nil", resp)
	}
}
