// Package glossary provides read-only terminology lookup per locale pair.
package glossary

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed terms.toml
var termsFS embed.FS

// Entry maps one source term to its preferred translation for a locale pair.
type Entry struct {
	SourceLocale string `toml:"source_locale"`
	TargetLocale string `toml:"target_locale"`
	Term         string `toml:"term"`
	Translation  string `toml:"translation"`
}

// Store is a read-only terminology table. Implementations must be safe for
// concurrent readers.
type Store interface {
	// Terms returns the source->target term map for a locale pair.
	// Missing pairs yield an empty map.
	Terms(sourceLocale, targetLocale string) map[string]string
}

type termsFile struct {
	Entry []Entry `toml:"entry"`
}

// TableStore is an immutable in-memory Store built from glossary entries.
type TableStore struct {
	byPair map[string]map[string]string
}

// New builds a TableStore from entries. Later duplicates win.
func New(entries []Entry) *TableStore {
	byPair := make(map[string]map[string]string)
	for _, e := range entries {
		key := pairKey(e.SourceLocale, e.TargetLocale)
		if byPair[key] == nil {
			byPair[key] = make(map[string]string)
		}
		byPair[key][strings.ToLower(e.Term)] = e.Translation
	}
	return &TableStore{byPair: byPair}
}

// LoadEmbedded builds a TableStore from the embedded terms.toml table.
func LoadEmbedded() (*TableStore, error) {
	data, err := termsFS.ReadFile("terms.toml")
	if err != nil {
		return nil, fmt.Errorf("glossary: read embedded terms: %w", err)
	}
	return Parse(data)
}

// Parse builds a TableStore from TOML glossary data.
func Parse(data []byte) (*TableStore, error) {
	var file termsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("glossary: parse terms: %w", err)
	}
	return New(file.Entry), nil
}

// Terms implements Store.
func (s *TableStore) Terms(sourceLocale, targetLocale string) map[string]string {
	terms := s.byPair[pairKey(sourceLocale, targetLocale)]
	// Copy so callers can't mutate the shared table.
	out := make(map[string]string, len(terms))
	for k, v := range terms {
		out[k] = v
	}
	return out
}

func pairKey(source, target string) string {
	return normalize(source) + "→" + normalize(target)
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}
