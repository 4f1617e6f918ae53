// Package quality scores translations with independent weighted sub-checks.
package quality

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/pricofy/localization-orchestrator/internal/glossary"
)

// ReviewThreshold is the fixed escalation threshold: results scoring below it
// are routed to human review.
const ReviewThreshold = 0.8

// CheckInput is the material one sub-check scores.
type CheckInput struct {
	Original     string
	Translated   string
	SourceLocale string
	TargetLocale string
}

// CheckFunc scores one quality dimension in [0,1].
type CheckFunc func(ctx context.Context, in CheckInput) (float64, error)

type check struct {
	name   string
	weight float64
	fn     CheckFunc
}

// Assessor combines four independent sub-checks into one weighted score.
type Assessor struct {
	checks []check
	log    *slog.Logger
}

// NewAssessor builds the standard assessor: grammar (0.30), terminology
// against the glossary (0.30), cultural appropriateness (0.20) and semantic
// accuracy (0.20).
func NewAssessor(store glossary.Store, log *slog.Logger) *Assessor {
	return newAssessor(defaultChecks(store), log)
}

func defaultChecks(store glossary.Store) []check {
	return []check{
		{name: "grammar", weight: 0.30, fn: grammarCheck},
		{name: "terminology", weight: 0.30, fn: terminologyCheck(store)},
		{name: "cultural", weight: 0.20, fn: culturalCheck},
		{name: "accuracy", weight: 0.20, fn: accuracyCheck},
	}
}

func newAssessor(checks []check, log *slog.Logger) *Assessor {
	if log == nil {
		log = slog.Default()
	}
	return &Assessor{checks: checks, log: log}
}

// Assess runs all sub-checks concurrently and returns the weighted score in
// [0,1]. A sub-check that fails contributes 0 instead of aborting the
// assessment.
func (a *Assessor) Assess(ctx context.Context, original, translated, sourceLocale, targetLocale string) float64 {
	in := CheckInput{
		Original:     original,
		Translated:   translated,
		SourceLocale: sourceLocale,
		TargetLocale: targetLocale,
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		total float64
	)
	for _, c := range a.checks {
		wg.Add(1)
		go func(c check) {
			defer wg.Done()
			score, err := c.fn(ctx, in)
			if err != nil {
				a.log.Warn("quality check failed",
					slog.String("check", c.name),
					slog.String("target_locale", targetLocale),
					slog.String("error", err.Error()),
				)
				return
			}
			mu.Lock()
			total += c.weight * clamp(score)
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	return clamp(total)
}

func clamp(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
