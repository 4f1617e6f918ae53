// Package handler provides the Lambda handler for the localization orchestrator.
package handler

import (
	"context"
	"errors"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// Orchestrator runs one localization request to completion.
type Orchestrator interface {
	Orchestrate(ctx context.Context, req domain.TranslationRequest) (map[string]domain.TranslationResult, error)
}

// Response is the output of the localization orchestrator. Results holds one
// entry per requested target locale; Error is set instead when the request
// itself was malformed.
type Response struct {
	Results map[string]domain.TranslationResult `json:"results,omitempty"`
	Error   string                              `json:"error,omitempty"`
}

// Handler adapts the orchestrator to the Lambda calling convention.
type Handler struct {
	orch Orchestrator
}

// New builds a Handler.
func New(orch Orchestrator) *Handler {
	return &Handler{orch: orch}
}

// Handle processes one localization request. Validation failures surface as a
// Response with Error set (a rejected call, not a Lambda crash); anything else
// unexpected propagates as a real error.
func (h *Handler) Handle(ctx context.Context, req domain.TranslationRequest) (*Response, error) {
	results, err := h.orch.Orchestrate(ctx, req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return &Response{Error: verr.Error()}, nil
		}
		return nil, err
	}
	return &Response{Results: results}, nil
}
