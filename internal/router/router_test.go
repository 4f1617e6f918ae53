package router

import (
	"testing"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

func TestSelectProvider(t *testing.T) {
	r := New(nil)

	tests := []struct {
		locale      string
		contentType domain.ContentType
		expected    domain.ProviderID
	}{
		// Regional policy wins regardless of content type
		{"de", domain.ContentTypeGeneric, domain.ProviderA},
		{"de", domain.ContentTypeTechnical, domain.ProviderA},
		{"de", domain.ContentTypeMarketing, domain.ProviderA},
		{"es", domain.ContentTypeTechnical, domain.ProviderA},
		{"fr", domain.ContentTypeGeneric, domain.ProviderA},
		{"it", domain.ContentTypeMarketing, domain.ProviderA},
		{"pt", domain.ContentTypeGeneric, domain.ProviderA},
		{"ja", domain.ContentTypeGeneric, domain.ProviderA},
		// Regional variants match their base language
		{"es-MX", domain.ContentTypeGeneric, domain.ProviderA},
		{"es_AR", domain.ContentTypeTechnical, domain.ProviderA},
		{"pt-BR", domain.ContentTypeGeneric, domain.ProviderA},
		{"fr-CA", domain.ContentTypeMarketing, domain.ProviderA},
		{"DE", domain.ContentTypeGeneric, domain.ProviderA},
		// Non-regional, specialized content -> ProviderB
		{"en", domain.ContentTypeTechnical, domain.ProviderB},
		{"en", domain.ContentTypeMarketing, domain.ProviderB},
		{"nl", domain.ContentTypeTechnical, domain.ProviderB},
		{"zh", domain.ContentTypeMarketing, domain.ProviderB},
		// Default/fallback -> ProviderC
		{"en", domain.ContentTypeGeneric, domain.ProviderC},
		{"nl", domain.ContentTypeGeneric, domain.ProviderC},
		{"ko", domain.ContentTypeGeneric, domain.ProviderC},
		{"xx", domain.ContentTypeGeneric, domain.ProviderC},
		{"en", domain.ContentType(""), domain.ProviderC},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+string(tt.contentType), func(t *testing.T) {
			got := r.SelectProvider(tt.locale, tt.contentType)
			if got != tt.expected {
				t.Errorf("SelectProvider(%q, %q) = %q, want %q",
					tt.locale, tt.contentType, got, tt.expected)
			}
		})
	}
}

func TestSelectProvider_Deterministic(t *testing.T) {
	r := New(nil)

	locales := []string{"de", "en", "es-MX", "nl", "xx", ""}
	types := []domain.ContentType{
		domain.ContentTypeGeneric,
		domain.ContentTypeMarketing,
		domain.ContentTypeTechnical,
	}

	for _, locale := range locales {
		for _, ct := range types {
			first := r.SelectProvider(locale, ct)
			for i := 0; i < 10; i++ {
				if got := r.SelectProvider(locale, ct); got != first {
					t.Fatalf("SelectProvider(%q, %q) not deterministic: %q then %q",
						locale, ct, first, got)
				}
			}
		}
	}
}

func TestSelectProvider_CustomRegionalSet(t *testing.T) {
	r := New([]string{"ko", "zh"})

	tests := []struct {
		locale      string
		contentType domain.ContentType
		expected    domain.ProviderID
	}{
		{"ko", domain.ContentTypeGeneric, domain.ProviderA},
		{"zh-TW", domain.ContentTypeTechnical, domain.ProviderA},
		// Default set no longer applies
		{"de", domain.ContentTypeGeneric, domain.ProviderC},
		{"de", domain.ContentTypeTechnical, domain.ProviderB},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+string(tt.contentType), func(t *testing.T) {
			got := r.SelectProvider(tt.locale, tt.contentType)
			if got != tt.expected {
				t.Errorf("SelectProvider(%q, %q) = %q, want %q",
					tt.locale, tt.contentType, got, tt.expected)
			}
		})
	}
}
