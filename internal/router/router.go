// Package router implements the provider routing policy.
package router

import (
	"strings"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// DefaultRegionalLocales is the default high-quality-regional set. ProviderA
// maintains dedicated regional models for these languages, so they always
// route there regardless of content type.
var DefaultRegionalLocales = []string{"de", "es", "fr", "it", "pt", "ja"}

// Router maps (target locale, content type) to a provider. The policy is
// pure and total: identical inputs always resolve to the identical provider,
// and every input resolves to some provider.
type Router struct {
	regional map[string]bool
}

// New builds a Router with the given high-quality-regional locale set.
// A nil or empty set falls back to DefaultRegionalLocales.
func New(regionalLocales []string) *Router {
	if len(regionalLocales) == 0 {
		regionalLocales = DefaultRegionalLocales
	}
	regional := make(map[string]bool, len(regionalLocales))
	for _, l := range regionalLocales {
		regional[baseLang(l)] = true
	}
	return &Router{regional: regional}
}

// SelectProvider resolves the provider for one target locale. Policy, first
// match wins:
//
//  1. locale in the high-quality-regional set -> ProviderA
//  2. marketing or technical content         -> ProviderB
//  3. everything else                        -> ProviderC
func (r *Router) SelectProvider(targetLocale string, contentType domain.ContentType) domain.ProviderID {
	if r.regional[baseLang(targetLocale)] {
		return domain.ProviderA
	}
	switch contentType {
	case domain.ContentTypeMarketing, domain.ContentTypeTechnical:
		return domain.ProviderB
	}
	return domain.ProviderC
}

// baseLang reduces a locale code to its primary language subtag, so regional
// variants like "es-MX" or "pt_BR" match their base entry.
func baseLang(locale string) string {
	locale = strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
