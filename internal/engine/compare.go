package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/kdriggs/binpack2d/internal/model"
)

// ComparisonScenario names one parameter variant to run as part of a
// side-by-side comparison.
type ComparisonScenario struct {
	Name   string
	Params model.RunParams
}

// ComparisonResult holds the outcome and derived statistics for one
// scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   model.RunResult
	BinCount int
	Duration time.Duration
}

// CompareScenarios runs every scenario against the same items and returns
// results in scenario order, so a caller can print or serialize a
// side-by-side comparison (e.g. GA vs Tabu Search, or guillotine vs
// non-guillotine).
func CompareScenarios(ctx context.Context, rng *rand.Rand, items []model.Item, scenarios []ComparisonScenario, logger *slog.Logger) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for i, scenario := range scenarios {
		start := time.Now()
		childRng := childRand(rng, i)

		var result model.RunResult
		switch scenario.Params.Algorithm {
		case model.AlgorithmTabu:
			result = RunTabuSearch(ctx, childRng, items, scenario.Params, logger)
		default:
			result = RunGA(ctx, childRng, items, scenario.Params, logger)
		}

		results = append(results, ComparisonResult{
			Scenario: scenario,
			Result:   result,
			BinCount: len(result.Bins),
			Duration: time.Since(start),
		})
	}
	return results
}

// BuildDefaultScenarios generates a what-if comparison set from a base
// parameter set: the base parameters themselves, the other algorithm, and
// the opposite guillotine setting.
func BuildDefaultScenarios(base model.RunParams) []ComparisonScenario {
	scenarios := []ComparisonScenario{{Name: "current", Params: base}}

	altAlgo := base
	if base.Algorithm == model.AlgorithmGA {
		altAlgo.Algorithm = model.AlgorithmTabu
		scenarios = append(scenarios, ComparisonScenario{Name: "tabu search", Params: altAlgo})
	} else {
		altAlgo.Algorithm = model.AlgorithmGA
		scenarios = append(scenarios, ComparisonScenario{Name: "genetic algorithm", Params: altAlgo})
	}

	altGuillotine := base
	altGuillotine.Guillotine = !base.Guillotine
	label := "non-guillotine"
	if altGuillotine.Guillotine {
		label = "guillotine"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: label, Params: altGuillotine})

	return scenarios
}
