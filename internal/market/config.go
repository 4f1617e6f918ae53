// Package market holds per-locale market configuration and the market
// localizer that applies it to translated content.
package market

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed markets.toml
var marketsFS embed.FS

// Config is the market configuration for one locale. Immutable at runtime.
type Config struct {
	Locale    string   `toml:"locale"`
	Currency  string   `toml:"currency"`
	Formality string   `toml:"formality"`
	StyleTag  string   `toml:"style_tag"`
	Holidays  []string `toml:"holidays"`
}

type marketsFile struct {
	Market []Config `toml:"market"`
}

// Table is a read-only locale -> Config lookup, safe for concurrent readers.
type Table struct {
	byLocale map[string]Config
}

// NewTable builds a Table from configs. Later duplicates win.
func NewTable(configs []Config) *Table {
	byLocale := make(map[string]Config, len(configs))
	for _, c := range configs {
		byLocale[normalize(c.Locale)] = c
	}
	return &Table{byLocale: byLocale}
}

// LoadEmbedded builds a Table from the embedded markets.toml.
func LoadEmbedded() (*Table, error) {
	data, err := marketsFS.ReadFile("markets.toml")
	if err != nil {
		return nil, fmt.Errorf("market: read embedded configs: %w", err)
	}
	return Parse(data)
}

// Parse builds a Table from TOML market data.
func Parse(data []byte) (*Table, error) {
	var file marketsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("market: parse configs: %w", err)
	}
	return NewTable(file.Market), nil
}

// Lookup resolves the config for a locale, falling back from a regional
// variant ("pt-BR") to its base language entry ("pt").
func (t *Table) Lookup(locale string) (Config, bool) {
	norm := normalize(locale)
	if c, ok := t.byLocale[norm]; ok {
		return c, true
	}
	if i := strings.IndexByte(norm, '-'); i > 0 {
		if c, ok := t.byLocale[norm[:i]]; ok {
			return c, true
		}
	}
	return Config{}, false
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}
