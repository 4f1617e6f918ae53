// Warmup handling: CloudWatch Events trigger the function periodically so
// instances stay warm and the per-request fan-out never pays a cold start.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/pricofy/localization-orchestrator/internal/translator"
)

const (
	// warmupSource identifies warmup events from CloudWatch.
	warmupSource = "warmup"

	// warmupDelay keeps instances overlapping so extra ones actually spawn.
	warmupDelay = 75 * time.Millisecond
)

// warmupEvent is the CloudWatch Event payload for warmup.
type warmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// warmupResponse is returned for warmup invocations.
type warmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// isWarmupEvent checks whether the raw event is a warmup trigger.
func isWarmupEvent(event json.RawMessage) (*warmupEvent, bool) {
	var ev warmupEvent
	if err := json.Unmarshal(event, &ev); err != nil {
		return nil, false
	}
	if ev.Source != warmupSource {
		return nil, false
	}
	return &ev, true
}

// warmer answers warmup events and, when asked for concurrency, self-invokes
// asynchronously to spawn additional warm instances.
type warmer struct {
	client       translator.InvokeAPI
	functionName string
	log          *slog.Logger
}

func newWarmer(client translator.InvokeAPI, log *slog.Logger) *warmer {
	return &warmer{
		client:       client,
		functionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		log:          log,
	}
}

func (w *warmer) handle(ctx context.Context, ev *warmupEvent) (any, error) {
	warmed := 1 // this instance

	if ev.Concurrency > 0 {
		if err := w.selfInvoke(ctx, ev.Concurrency); err != nil {
			w.log.Warn("warmup self-invoke failed", slog.String("error", err.Error()))
		} else {
			warmed += ev.Concurrency
		}
	}

	time.Sleep(warmupDelay)

	return warmupResponse{Status: "warm", InstancesWarmed: warmed}, nil
}

// selfInvoke fires count async invocations of this function. Children get
// concurrency 0 so they never recurse.
func (w *warmer) selfInvoke(ctx context.Context, count int) error {
	payload, err := json.Marshal(warmupEvent{Source: warmupSource, Concurrency: 0})
	if err != nil {
		return err
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		invokeErr error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return invokeErr
}
