package quality

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/pricofy/localization-orchestrator/internal/domain"
	"github.com/pricofy/localization-orchestrator/internal/glossary"
)

// grammarCheck scores surface-level correctness in the target locale:
// sentence casing, terminal punctuation, balanced delimiters, spacing.
func grammarCheck(_ context.Context, in CheckInput) (float64, error) {
	if strings.TrimSpace(in.Translated) == "" {
		return 0, nil
	}

	score := 1.0

	if strings.Contains(in.Translated, "  ") {
		score -= 0.1
	}
	if !balanced(in.Translated, '(', ')') || !balanced(in.Translated, '[', ']') {
		score -= 0.3
	}

	origRunes := []rune(strings.TrimSpace(in.Original))
	transRunes := []rune(strings.TrimSpace(in.Translated))
	if len(origRunes) > 0 && len(transRunes) > 0 {
		if unicode.IsUpper(origRunes[0]) && unicode.IsLower(transRunes[0]) {
			score -= 0.2
		}
		if hasTerminal(origRunes) && !hasTerminal(transRunes) {
			score -= 0.2
		}
	}

	return score, nil
}

// terminologyCheck scores consistency against the glossary: every source term
// present in the original must surface as its preferred translation.
func terminologyCheck(store glossary.Store) CheckFunc {
	return func(_ context.Context, in CheckInput) (float64, error) {
		if store == nil {
			return 0, &domain.QualityCheckError{Check: "terminology", Err: errors.New("no glossary store")}
		}

		terms := store.Terms(in.SourceLocale, in.TargetLocale)
		original := strings.ToLower(in.Original)
		translated := strings.ToLower(in.Translated)

		applicable, matched := 0, 0
		for term, preferred := range terms {
			if !strings.Contains(original, term) {
				continue
			}
			applicable++
			if strings.Contains(translated, strings.ToLower(preferred)) {
				matched++
			}
		}
		if applicable == 0 {
			return 1, nil
		}
		return float64(matched) / float64(applicable), nil
	}
}

// culturalCheck scores appropriateness for the target market with cheap
// structural signals: length-ratio sanity and shouting.
func culturalCheck(_ context.Context, in CheckInput) (float64, error) {
	origLen := len([]rune(in.Original))
	transLen := len([]rune(in.Translated))
	if origLen == 0 {
		return 0, &domain.QualityCheckError{Check: "cultural", Err: errors.New("empty original")}
	}
	if transLen == 0 {
		return 0, nil
	}

	ratio := float64(transLen) / float64(origLen)

	var score float64
	switch {
	case ratio >= 0.5 && ratio <= 2.0:
		score = 1.0
	case ratio >= 0.33 && ratio <= 3.0:
		score = 0.6
	default:
		score = 0.2
	}

	if strings.Count(in.Translated, "!") > strings.Count(in.Original, "!")+2 {
		score -= 0.2
	}

	return score, nil
}

var accuracyToken = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)?|\{[^}]*\}`)

// accuracyCheck scores semantic fidelity by verifying that numbers and
// placeholders from the original survive translation.
func accuracyCheck(_ context.Context, in CheckInput) (float64, error) {
	tokens := accuracyToken.FindAllString(in.Original, -1)
	if len(tokens) == 0 {
		if strings.TrimSpace(in.Translated) == "" {
			return 0, nil
		}
		return 1, nil
	}

	preserved := 0
	for _, tok := range tokens {
		if strings.Contains(in.Translated, tok) {
			preserved++
		}
	}
	return float64(preserved) / float64(len(tokens)), nil
}

func balanced(s string, open, closing rune) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case open:
			depth++
		case closing:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func hasTerminal(runes []rune) bool {
	switch runes[len(runes)-1] {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}
