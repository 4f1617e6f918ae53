// Package analytics emits one aggregate event per completed request.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// Event is the aggregate metadata for one completed request. It is dispatched
// fire-and-forget; the orchestrator never waits on delivery.
type Event struct {
	Timestamp     time.Time          `json:"timestamp"`
	ContentType   domain.ContentType `json:"contentType"`
	WordCount     int                `json:"wordCount"`
	LocaleCount   int                `json:"localeCount"`
	FailedLocales int                `json:"failedLocales"`
	Duration      time.Duration      `json:"durationNs"`
}

// Sink receives one Event per completed request.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// NopSink discards events.
type NopSink struct{}

// Publish implements Sink.
func (NopSink) Publish(context.Context, Event) error { return nil }

// InvokeAPI is the subset of the Lambda client used by LambdaSink.
type InvokeAPI interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// LambdaSink forwards events to an analytics Lambda with an async invocation,
// so publishing never blocks on the analytics pipeline.
type LambdaSink struct {
	client       InvokeAPI
	functionName string
}

// NewLambdaSink builds a LambdaSink for the given analytics function.
func NewLambdaSink(client InvokeAPI, functionName string) *LambdaSink {
	return &LambdaSink{client: client, functionName: functionName}
}

// Publish implements Sink.
func (s *LambdaSink) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("analytics: marshal event: %w", err)
	}

	_, err = s.client.Invoke(ctx, &lambdasdk.InvokeInput{
		FunctionName:   aws.String(s.functionName),
		InvocationType: types.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("analytics: invoke %s: %w", s.functionName, err)
	}
	return nil
}
