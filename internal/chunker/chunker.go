// Package chunker splits source text into provider-sized chunks.
package chunker

import "strings"

// DefaultMaxTokens is the default maximum tokens per chunk. Translator
// backends run with bounded memory, so payloads are kept under this budget.
const DefaultMaxTokens = 3000

// EstimateTokens estimates the token count for a text.
// Uses a simple heuristic: ~4 characters per token for Latin languages.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	tokens := len(text) / 4
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}

// Split breaks a document into sentence-like segments. Segments end at
// sentence punctuation or newlines; whitespace between segments is dropped.
func Split(text string) []string {
	var segments []string
	var b strings.Builder

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			segments = append(segments, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		switch r {
		case '\n':
			flush()
		case '.', '!', '?':
			// Sentence end only when followed by whitespace or end of text,
			// so decimals like "12.50" stay intact.
			if i+1 == len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return segments
}

// Chunk splits a document into chunks that don't exceed maxTokens each.
// Segments are kept whole - never split mid-sentence. A single segment
// larger than maxTokens gets its own chunk.
func Chunk(text string, maxTokens int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	segments := Split(text)

	var chunks []string
	var current []string
	currentTokens := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentTokens = 0
		}
	}

	for _, seg := range segments {
		segTokens := EstimateTokens(seg)

		if segTokens > maxTokens {
			flush()
			chunks = append(chunks, seg)
			continue
		}

		if currentTokens+segTokens > maxTokens {
			flush()
		}

		current = append(current, seg)
		currentTokens += segTokens
	}
	flush()

	return chunks
}

// Join reassembles translated chunks into one document.
func Join(chunks []string) string {
	return strings.Join(chunks, " ")
}
