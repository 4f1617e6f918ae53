package quality

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/localization-orchestrator/internal/glossary"
)

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, c := range defaultChecks(nil) {
		sum += c.weight
	}
	assert.Equal(t, 1.0, sum)
}

func TestAssess_ScoreBounds(t *testing.T) {
	store := glossary.New(nil)
	a := NewAssessor(store, nil)

	inputs := []struct {
		name       string
		original   string
		translated string
	}{
		{"clean translation", "Hello world.", "Hallo Welt."},
		{"empty translation", "Hello world.", ""},
		{"empty original", "", "Hallo"},
		{"wildly long translation", "Hi.", "Das ist eine sehr sehr sehr sehr sehr lange Übersetzung für einen kurzen Text."},
		{"lost numbers", "Costs $12.50 for 3 items.", "Kostet etwas für einige Artikel."},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			score := a.Assess(context.Background(), tt.original, tt.translated, "en", "de")
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
			assert.False(t, score != score, "score must not be NaN")
		})
	}
}

func TestAssess_GoodTranslationScoresHigh(t *testing.T) {
	store := glossary.New([]glossary.Entry{
		{SourceLocale: "en", TargetLocale: "de", Term: "cart", Translation: "Warenkorb"},
	})
	a := NewAssessor(store, nil)

	score := a.Assess(context.Background(),
		"Your cart holds 3 items for $25.", "Ihr Warenkorb enthält 3 Artikel für $25.", "en", "de")

	assert.GreaterOrEqual(t, score, ReviewThreshold)
}

func TestAssess_FailingCheckContributesZero(t *testing.T) {
	failing := func(_ context.Context, _ CheckInput) (float64, error) {
		return 0, errors.New("backend unavailable")
	}
	perfect := func(_ context.Context, _ CheckInput) (float64, error) {
		return 1, nil
	}

	a := newAssessor([]check{
		{name: "broken", weight: 0.4, fn: failing},
		{name: "fine", weight: 0.6, fn: perfect},
	}, nil)

	score := a.Assess(context.Background(), "a", "b", "en", "de")
	assert.InDelta(t, 0.6, score, 1e-9)
}

func TestAssess_NilGlossaryDegrades(t *testing.T) {
	// Terminology check errors without a store; the other three still score.
	a := NewAssessor(nil, nil)

	score := a.Assess(context.Background(), "Hello world.", "Hallo Welt.", "en", "de")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 0.7)
}

func TestTerminologyCheck(t *testing.T) {
	store := glossary.New([]glossary.Entry{
		{SourceLocale: "en", TargetLocale: "de", Term: "cart", Translation: "Warenkorb"},
		{SourceLocale: "en", TargetLocale: "de", Term: "price", Translation: "Preis"},
	})
	fn := terminologyCheck(store)

	tests := []struct {
		name       string
		original   string
		translated string
		expected   float64
	}{
		{"all terms honored", "Add to cart at this price", "In den Warenkorb zu diesem Preis", 1.0},
		{"half honored", "Add to cart at this price", "In den Korb zu diesem Preis", 0.5},
		{"none honored", "Add to cart at this price", "In den Korb zu diesem Betrag", 0.0},
		{"no applicable terms", "Hello there", "Hallo", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := fn(context.Background(), CheckInput{
				Original:     tt.original,
				Translated:   tt.translated,
				SourceLocale: "en",
				TargetLocale: "de",
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestAccuracyCheck(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		translated string
		expected   float64
	}{
		{"numbers preserved", "Order 3 items for 12.50", "Bestellen Sie 3 Artikel für 12.50", 1.0},
		{"number lost", "Order 3 items for 12.50", "Bestellen Sie Artikel für 12.50", 0.5},
		{"placeholder preserved", "Hello {name}", "Hallo {name}", 1.0},
		{"placeholder lost", "Hello {name}", "Hallo", 0.0},
		{"no tokens", "Hello there", "Hallo", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := accuracyCheck(context.Background(), CheckInput{
				Original:   tt.original,
				Translated: tt.translated,
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestGrammarCheck(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		translated string
		max        float64
		min        float64
	}{
		{"clean", "Hello world.", "Hallo Welt.", 1.0, 1.0},
		{"empty", "Hello world.", "", 0.0, 0.0},
		{"lost casing and punctuation", "Hello world.", "hallo welt", 0.6, 0.6},
		{"unbalanced parens", "Note (important).", "Hinweis (wichtig.", 0.7, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := grammarCheck(context.Background(), CheckInput{
				Original:   tt.original,
				Translated: tt.translated,
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, tt.min-1e-9)
			assert.LessOrEqual(t, score, tt.max+1e-9)
		})
	}
}
