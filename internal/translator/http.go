package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pricofy/localization-orchestrator/internal/chunker"
	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// HTTPTranslator translates through a JSON-over-HTTP translation endpoint.
type HTTPTranslator struct {
	id        domain.ProviderID
	endpoint  string
	apiKey    string
	client    *http.Client
	maxTokens int
}

// NewHTTPTranslator builds an HTTP-backed provider. A nil client gets a
// default with a 2-minute timeout.
func NewHTTPTranslator(id domain.ProviderID, endpoint, apiKey string, client *http.Client) *HTTPTranslator {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &HTTPTranslator{
		id:        id,
		endpoint:  endpoint,
		apiKey:    apiKey,
		client:    client,
		maxTokens: chunker.DefaultMaxTokens,
	}
}

// Translate implements Translator.
func (t *HTTPTranslator) Translate(ctx context.Context, text, sourceLocale, targetLocale string, opts Options) (string, error) {
	chunks := chunker.Chunk(text, t.maxTokens)
	if len(chunks) == 0 {
		return "", nil
	}

	body, err := json.Marshal(translateRequest{
		Chunks:             chunks,
		SourceLocale:       sourceLocale,
		TargetLocale:       targetLocale,
		Glossary:           opts.Glossary,
		Context:            opts.Context,
		PreserveFormatting: opts.PreserveFormatting,
	})
	if err != nil {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	httpResp, err := t.client.Do(req)
	if err != nil {
		kind := domain.ProviderErrInvalidResponse
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = domain.ProviderErrTimeout
		}
		return "", providerErr(t.id, kind, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusTooManyRequests {
		return "", providerErr(t.id, domain.ProviderErrQuotaExceeded, fmt.Errorf("status %d", httpResp.StatusCode))
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("status %d", httpResp.StatusCode))
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("read response: %w", err))
	}

	var resp translateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("parse response: %w", err))
	}
	if resp.Error != "" {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("translator error: %s", resp.Error))
	}
	if len(resp.Translations) != len(chunks) {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse,
			fmt.Errorf("got %d translations for %d chunks", len(resp.Translations), len(chunks)))
	}

	return chunker.Join(resp.Translations), nil
}

func isTimeout(err error) bool {
	var nerr interface{ Timeout() bool }
	return errors.As(err, &nerr) && nerr.Timeout()
}
