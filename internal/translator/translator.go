// Package translator defines the translation provider capability and its
// backend implementations. Providers are stateless per call and
// interchangeable behind the Translator interface.
package translator

import (
	"context"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// Options carries per-call translation hints.
type Options struct {
	// PreserveFormatting asks the backend to keep markup and whitespace.
	PreserveFormatting bool
	// Glossary maps source terms to required target translations.
	Glossary map[string]string
	// Context is free-form editorial context for the backend.
	Context string
}

// Translator is one translation provider backend.
type Translator interface {
	// Translate renders text from sourceLocale into targetLocale.
	// Failures are reported as *domain.ProviderError.
	Translate(ctx context.Context, text, sourceLocale, targetLocale string, opts Options) (string, error)
}

// translateRequest is the wire format shared by translator backends.
type translateRequest struct {
	Chunks             []string          `json:"chunks"`
	SourceLocale       string            `json:"sourceLocale"`
	TargetLocale       string            `json:"targetLocale"`
	Glossary           map[string]string `json:"glossary,omitempty"`
	Context            string            `json:"context,omitempty"`
	PreserveFormatting bool              `json:"preserveFormatting,omitempty"`
}

// translateResponse is the wire format returned by translator backends.
type translateResponse struct {
	Translations []string `json:"translations"`
	Error        string   `json:"error,omitempty"`
}

func providerErr(id domain.ProviderID, kind domain.ProviderErrorKind, err error) *domain.ProviderError {
	return &domain.ProviderError{Provider: id, Kind: kind, Err: err}
}
