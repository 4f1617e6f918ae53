// Package main is the entry point for the localization orchestrator Lambda.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	sqssdk "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/pricofy/localization-orchestrator/internal/analytics"
	"github.com/pricofy/localization-orchestrator/internal/config"
	"github.com/pricofy/localization-orchestrator/internal/domain"
	"github.com/pricofy/localization-orchestrator/internal/glossary"
	"github.com/pricofy/localization-orchestrator/internal/handler"
	"github.com/pricofy/localization-orchestrator/internal/market"
	"github.com/pricofy/localization-orchestrator/internal/orchestrator"
	"github.com/pricofy/localization-orchestrator/internal/quality"
	"github.com/pricofy/localization-orchestrator/internal/review"
	"github.com/pricofy/localization-orchestrator/internal/router"
	"github.com/pricofy/localization-orchestrator/internal/translator"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Log)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("load AWS config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	lambdaClient := lambdasdk.NewFromConfig(awsCfg)

	providers := map[domain.ProviderID]translator.Translator{
		domain.ProviderA: translator.NewLambdaTranslator(domain.ProviderA, lambdaClient, cfg.Providers.AFunction),
		domain.ProviderB: translator.NewLambdaTranslator(domain.ProviderB, lambdaClient, cfg.Providers.BFunction),
		domain.ProviderC: translator.NewHTTPTranslator(domain.ProviderC, cfg.Providers.CEndpoint, cfg.Providers.CAPIKey,
			&http.Client{Timeout: cfg.Providers.Timeout + 10*time.Second}),
	}

	store, err := glossary.LoadEmbedded()
	if err != nil {
		log.Error("load glossary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	table, err := market.LoadEmbedded()
	if err != nil {
		log.Error("load market configs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var reviews review.Queue = review.NewMemoryQueue()
	if cfg.Review.QueueURL != "" {
		reviews = review.NewSQSQueue(sqssdk.NewFromConfig(awsCfg), cfg.Review.QueueURL)
	}

	var sink analytics.Sink = analytics.NopSink{}
	if cfg.Analytics.FunctionName != "" {
		sink = analytics.NewLambdaSink(lambdaClient, cfg.Analytics.FunctionName)
	}

	orch := orchestrator.New(orchestrator.Deps{
		Router:          router.New(cfg.RegionalLocaleList()),
		Providers:       providers,
		Glossary:        store,
		Assessor:        quality.NewAssessor(store, log),
		Localizer:       market.NewLocalizer(table),
		Reviews:         reviews,
		Analytics:       sink,
		ProviderTimeout: cfg.Providers.Timeout,
		Log:             log,
	})
	h := handler.New(orch)
	warmer := newWarmer(lambdaClient, log)

	lambda.Start(func(ctx context.Context, event json.RawMessage) (any, error) {
		// Warmup detection must come before request parsing.
		if warmup, ok := isWarmupEvent(event); ok {
			return warmer.handle(ctx, warmup)
		}

		var req domain.TranslationRequest
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, err
		}
		return h.Handle(ctx, req)
	})
}
