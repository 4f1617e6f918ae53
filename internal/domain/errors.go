package domain

import "fmt"

// ValidationError rejects a malformed request before any provider work starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// ProviderErrorKind classifies provider call failures.
type ProviderErrorKind string

const (
	ProviderErrTimeout         ProviderErrorKind = "timeout"
	ProviderErrQuotaExceeded   ProviderErrorKind = "quota-exceeded"
	ProviderErrInvalidResponse ProviderErrorKind = "invalid-response"
)

// ProviderError is a failed provider call. It is isolated to one locale:
// the orchestrator substitutes fallback content and the batch continues.
type ProviderError struct {
	Provider ProviderID
	Kind     ProviderErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// QualityCheckError is a quality sub-check that could not complete. Its
// contribution degrades to 0 instead of aborting the assessment.
type QualityCheckError struct {
	Check string
	Err   error
}

func (e *QualityCheckError) Error() string {
	return fmt.Sprintf("quality check %s: %v", e.Check, e.Err)
}

func (e *QualityCheckError) Unwrap() error {
	return e.Err
}
