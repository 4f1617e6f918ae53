// Package orchestrator coordinates per-locale translation fan-out.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pricofy/localization-orchestrator/internal/analytics"
	"github.com/pricofy/localization-orchestrator/internal/domain"
	"github.com/pricofy/localization-orchestrator/internal/glossary"
	"github.com/pricofy/localization-orchestrator/internal/market"
	"github.com/pricofy/localization-orchestrator/internal/quality"
	"github.com/pricofy/localization-orchestrator/internal/review"
	"github.com/pricofy/localization-orchestrator/internal/router"
	"github.com/pricofy/localization-orchestrator/internal/translator"
)

// DefaultProviderTimeout bounds one provider call.
const DefaultProviderTimeout = 30 * time.Second

// Deps are the collaborators the orchestrator coordinates.
type Deps struct {
	Router    *router.Router
	Providers map[domain.ProviderID]translator.Translator
	Glossary  glossary.Store
	Assessor  *quality.Assessor
	Localizer *market.Localizer
	Reviews   review.Queue
	Analytics analytics.Sink
	// ProviderTimeout bounds each provider call; zero means DefaultProviderTimeout.
	ProviderTimeout time.Duration
	Log             *slog.Logger
}

// Orchestrator fans one request out across target locales, one concurrent
// task per locale, and joins the results into a locale-keyed map. A failed
// locale never blocks the others.
type Orchestrator struct {
	deps Deps
}

// New builds an Orchestrator.
func New(deps Deps) *Orchestrator {
	if deps.ProviderTimeout <= 0 {
		deps.ProviderTimeout = DefaultProviderTimeout
	}
	if deps.Analytics == nil {
		deps.Analytics = analytics.NopSink{}
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Orchestrator{deps: deps}
}

// Orchestrate translates the request into every target locale. The returned
// map holds exactly one entry per requested locale. Malformed requests fail
// fast with *domain.ValidationError before any provider work; cancellation
// returns ctx.Err() without surfacing partial results.
func (o *Orchestrator) Orchestrate(ctx context.Context, req domain.TranslationRequest) (map[string]domain.TranslationResult, error) {
	locales, err := validate(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	results := make(map[string]domain.TranslationResult, len(locales))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, locale := range locales {
		wg.Add(1)
		go func(locale string) {
			defer wg.Done()
			res := o.processLocale(ctx, req, locale)
			mu.Lock()
			results[locale] = res
			mu.Unlock()
		}(locale)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	o.publishEvent(ctx, req, results, time.Since(start))

	return results, nil
}

// processLocale runs one locale through the full pipeline:
// route -> translate -> assess -> [review] -> localize.
func (o *Orchestrator) processLocale(ctx context.Context, req domain.TranslationRequest, locale string) domain.TranslationResult {
	providerID := o.deps.Router.SelectProvider(locale, req.ContentType)

	prov, ok := o.deps.Providers[providerID]
	if !ok {
		o.deps.Log.Error("no backend registered for provider",
			slog.String("provider", string(providerID)),
			slog.String("locale", locale),
		)
		return failedResult(req, domain.ProviderErrInvalidResponse)
	}

	opts := translator.Options{
		PreserveFormatting: true,
		Context:            req.Context,
	}
	if o.deps.Glossary != nil {
		opts.Glossary = o.deps.Glossary.Terms(req.SourceLocale, locale)
	}

	callCtx, cancel := context.WithTimeout(ctx, o.deps.ProviderTimeout)
	translated, err := prov.Translate(callCtx, req.SourceText, req.SourceLocale, locale, opts)
	cancel()
	if err != nil {
		kind := domain.ProviderErrInvalidResponse
		var perr *domain.ProviderError
		if errors.As(err, &perr) {
			kind = perr.Kind
		} else if errors.Is(err, context.DeadlineExceeded) {
			kind = domain.ProviderErrTimeout
		}
		o.deps.Log.Warn("provider call failed",
			slog.String("provider", string(providerID)),
			slog.String("locale", locale),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return failedResult(req, kind)
	}

	score := o.deps.Assessor.Assess(ctx, req.SourceText, translated, req.SourceLocale, locale)
	needsReview := score < quality.ReviewThreshold

	localized := o.deps.Localizer.Localize(translated, locale)

	result := domain.TranslationResult{
		Content:      localized.Content,
		QualityScore: score,
		ProviderUsed: providerID,
		NeedsReview:  needsReview,
		Adaptations:  localized.Adaptations,
	}

	if needsReview && ctx.Err() == nil {
		item := domain.ReviewQueueItem{
			ID:           uuid.NewString(),
			Locale:       locale,
			Result:       result,
			QualityScore: score,
			EnqueuedAt:   time.Now().UTC(),
		}
		if err := o.deps.Reviews.Enqueue(ctx, item); err != nil {
			// A failing review sink must not fail a successful translation.
			o.deps.Log.Warn("review enqueue failed",
				slog.String("locale", locale),
				slog.String("error", err.Error()),
			)
		}
	}

	return result
}

// publishEvent dispatches the per-request analytics event without awaiting
// delivery. It runs on a detached context so an already-finished request
// can't cancel it mid-flight.
func (o *Orchestrator) publishEvent(ctx context.Context, req domain.TranslationRequest, results map[string]domain.TranslationResult, elapsed time.Duration) {
	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	ev := analytics.Event{
		Timestamp:     time.Now().UTC(),
		ContentType:   req.ContentType,
		WordCount:     len(strings.Fields(req.SourceText)),
		LocaleCount:   len(results),
		FailedLocales: failed,
		Duration:      elapsed,
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		pubCtx, cancel := context.WithTimeout(detached, 5*time.Second)
		defer cancel()
		if err := o.deps.Analytics.Publish(pubCtx, ev); err != nil {
			o.deps.Log.Warn("analytics publish failed", slog.String("error", err.Error()))
		}
	}()
}

func failedResult(req domain.TranslationRequest, kind domain.ProviderErrorKind) domain.TranslationResult {
	return domain.TranslationResult{
		Error:           kind,
		FallbackContent: req.SourceText,
	}
}
