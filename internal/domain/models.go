// Package domain contains the core domain types for the localization orchestrator.
package domain

import "time"

// ContentType categorizes source content for provider routing.
type ContentType string

const (
	ContentTypeGeneric   ContentType = "generic"
	ContentTypeMarketing ContentType = "marketing"
	ContentTypeTechnical ContentType = "technical"
)

// Valid reports whether the content type is one of the known values.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeGeneric, ContentTypeMarketing, ContentTypeTechnical:
		return true
	}
	return false
}

// ProviderID identifies a translation provider backend.
type ProviderID string

const (
	ProviderA ProviderID = "provider-a"
	ProviderB ProviderID = "provider-b"
	ProviderC ProviderID = "provider-c"
)

// TranslationRequest is the input to the orchestrator. One source text is
// translated into every locale in TargetLocales.
type TranslationRequest struct {
	SourceText    string      `json:"sourceText"`
	SourceLocale  string      `json:"sourceLocale"`
	TargetLocales []string    `json:"targetLocales"`
	ContentType   ContentType `json:"contentType"`
	Context       string      `json:"context,omitempty"`
}

// TranslationResult is the per-locale outcome. Exactly one of the two shapes
// is populated: a successful translation (Content, QualityScore, ProviderUsed,
// NeedsReview, Adaptations) or a failure (Error, FallbackContent).
type TranslationResult struct {
	Content      string     `json:"content,omitempty"`
	QualityScore float64    `json:"qualityScore"`
	ProviderUsed ProviderID `json:"providerUsed,omitempty"`
	NeedsReview  bool       `json:"needsReview"`
	Adaptations  []string   `json:"adaptations,omitempty"`

	Error           ProviderErrorKind `json:"error,omitempty"`
	FallbackContent string            `json:"fallbackContent,omitempty"`
}

// Failed reports whether the result is the failure shape.
func (r TranslationResult) Failed() bool {
	return r.Error != ""
}

// ReviewQueueItem is appended to the review queue for every successful result
// scoring below the review threshold. The queue's consumer is external;
// the orchestrator only ever appends.
type ReviewQueueItem struct {
	ID           string            `json:"id"`
	Locale       string            `json:"locale"`
	Result       TranslationResult `json:"result"`
	QualityScore float64           `json:"qualityScore"`
	EnqueuedAt   time.Time         `json:"enqueuedAt"`
}
