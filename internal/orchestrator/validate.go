package orchestrator

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// validate checks the request is well-formed and returns the deduplicated
// target-locale list in first-occurrence order. Any violation fails the whole
// call before provider work starts.
func validate(req domain.TranslationRequest) ([]string, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, &domain.ValidationError{Reason: "source text is empty"}
	}
	if err := checkLocale(req.SourceLocale); err != nil {
		return nil, err
	}
	if len(req.TargetLocales) == 0 {
		return nil, &domain.ValidationError{Reason: "target locale set is empty"}
	}
	if req.ContentType != "" && !req.ContentType.Valid() {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("unknown content type %q", req.ContentType)}
	}

	seen := make(map[string]bool, len(req.TargetLocales))
	locales := make([]string, 0, len(req.TargetLocales))
	for _, locale := range req.TargetLocales {
		if err := checkLocale(locale); err != nil {
			return nil, err
		}
		if seen[locale] {
			continue
		}
		seen[locale] = true
		locales = append(locales, locale)
	}
	return locales, nil
}

func checkLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return &domain.ValidationError{Reason: "locale code is empty"}
	}
	if _, err := language.Parse(locale); err != nil {
		return &domain.ValidationError{Reason: fmt.Sprintf("unsupported locale code %q", locale)}
	}
	return nil
}
