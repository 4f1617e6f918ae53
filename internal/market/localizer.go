package market

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usdAmount matches source-market dollar amounts like "$12.50".
var usdAmount = regexp.MustCompile(`\$\s?([0-9]+(?:\.[0-9]{1,2})?)`)

// Localized is the output of the market localizer.
type Localized struct {
	Content     string   `json:"content"`
	Adaptations []string `json:"adaptations,omitempty"`
}

// Localizer applies market configuration to translated content. It is a
// deterministic pure transform: no I/O, no side effects.
type Localizer struct {
	table *Table
}

// NewLocalizer builds a Localizer over the given market table.
func NewLocalizer(table *Table) *Localizer {
	return &Localizer{table: table}
}

// Localize adapts translated content for the target market: monetary amounts
// are reformatted in the market's currency convention, and the market's
// formality register and style tag are recorded as applied adaptations.
// Locales without a market config pass through unchanged.
func (l *Localizer) Localize(content, targetLocale string) Localized {
	cfg, ok := l.table.Lookup(targetLocale)
	if !ok {
		return Localized{Content: content}
	}

	var adaptations []string

	unit, err := currency.ParseISO(cfg.Currency)
	if err == nil && cfg.Currency != "USD" {
		printer := message.NewPrinter(language.Make(targetLocale))
		content = usdAmount.ReplaceAllStringFunc(content, func(match string) string {
			amount, perr := strconv.ParseFloat(usdAmount.FindStringSubmatch(match)[1], 64)
			if perr != nil {
				return match
			}
			formatted := printer.Sprint(currency.Symbol(unit.Amount(amount)))
			adaptations = append(adaptations, fmt.Sprintf("currency: %s reformatted as %s", match, formatted))
			return formatted
		})
	}

	if cfg.Formality != "" {
		adaptations = append(adaptations, "formality: "+cfg.Formality)
	}
	if cfg.StyleTag != "" {
		adaptations = append(adaptations, "style: "+cfg.StyleTag)
	}

	return Localized{Content: content, Adaptations: adaptations}
}
