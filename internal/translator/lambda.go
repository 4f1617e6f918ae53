package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/pricofy/localization-orchestrator/internal/chunker"
	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// InvokeAPI is the subset of the Lambda client used by LambdaTranslator.
type InvokeAPI interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// LambdaTranslator translates through a dedicated translator Lambda function.
// The source text is chunked to keep each payload under the backend's token
// budget; translated chunks are rejoined in order.
type LambdaTranslator struct {
	id           domain.ProviderID
	client       InvokeAPI
	functionName string
	maxTokens    int
}

// NewLambdaTranslator builds a Lambda-backed provider.
func NewLambdaTranslator(id domain.ProviderID, client InvokeAPI, functionName string) *LambdaTranslator {
	return &LambdaTranslator{
		id:           id,
		client:       client,
		functionName: functionName,
		maxTokens:    chunker.DefaultMaxTokens,
	}
}

// Translate implements Translator.
func (t *LambdaTranslator) Translate(ctx context.Context, text, sourceLocale, targetLocale string, opts Options) (string, error) {
	chunks := chunker.Chunk(text, t.maxTokens)
	if len(chunks) == 0 {
		return "", nil
	}

	req := translateRequest{
		Chunks:             chunks,
		SourceLocale:       sourceLocale,
		TargetLocale:       targetLocale,
		Glossary:           opts.Glossary,
		Context:            opts.Context,
		PreserveFormatting: opts.PreserveFormatting,
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", providerErr(t.id, domain.ProviderErrInvalidResponse, fmt.Errorf("marshal request: %w", err))
	}

	result, err := t.client.Invoke(ctx, &lambdasdk.InvokeInput{
		FunctionName: &t.functionName,
		Payload:      payload,
	})
	if err != nil {
		return "", providerErr(t.id, classifyInvokeErr(err), fmt.Errorf("invoke %s: %w", t.functionName, err))
	}

	if result.FunctionError != nil {
		kind := domain.ProviderErrInvalidResponse
		if strings.Contains(strings.ToLower(*result.FunctionError), "timed out") {
			kind = domain.ProviderErrTimeout
		}
		return "", providerErr(t.id, kind, fmt.Errorf("lambda error: %s", *result.FunctionError))
	}

	var resp translateResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
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

// classifyInvokeErr maps an SDK invoke error onto the provider error taxonomy.
func classifyInvokeErr(err error) domain.ProviderErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ProviderErrTimeout
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "toomanyrequests") || strings.Contains(msg, "throttl") || strings.Contains(msg, "rate exceeded") {
		return domain.ProviderErrQuotaExceeded
	}
	return domain.ProviderErrInvalidResponse
}
