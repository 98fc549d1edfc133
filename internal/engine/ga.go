package engine

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/kdriggs/binpack2d/internal/model"
)

// RunGA runs the generational genetic algorithm driver: initialize a
// population (C4), then each generation score it (C3, parallel), track the
// best ordering seen so far, fill the first slots of the next population
// with crossover offspring (C5) bred from the best-fitness individuals,
// backfill the rest with a fresh population draw, and
// mutate (C6) the whole population. Elitism is implicit via the tracked
// best; it is never re-injected into the working population.
//
// ctx is checked once per generation; on cancellation the best solution
// found so far is returned immediately.
func RunGA(ctx context.Context, rng *rand.Rand, items []model.Item, params model.RunParams, logger *slog.Logger) model.RunResult {
	population := GeneratePopulation(rng, items, params.PopulationSize, params.Kappa)

	bestFitness := math.Inf(1)
	var bestOrdering model.Ordering

	for gen := 0; gen < params.Generations; gen++ {
		select {
		case <-ctx.Done():
			return finalizeGA(items, params, bestOrdering, bestFitness)
		default:
		}

		fitnesses := ComputeFitnesses(items, population, params.BinWidth, params.BinHeight, params.Guillotine, params.Rotation, params.Workers)

		bestIdx := argmin(fitnesses)
		if fitnesses[bestIdx] < bestFitness {
			bestFitness = fitnesses[bestIdx]
			bestOrdering = population[bestIdx].Clone()
		}

		offspring := Crossover(rng, population, fitnesses, params.CrossoverRate, params.Delta, params.Workers)
		remaining := GeneratePopulation(rng, items, params.PopulationSize-len(offspring), params.Kappa)
		next := make(model.Population, 0, params.PopulationSize)
		next = append(next, offspring...)
		next = append(next, remaining...)
		population = Mutate(rng, next, params.MutationRate, params.MutationOperator, params.Workers)

		if logger != nil {
			logger.Debug("ga generation complete", "generation", gen, "best_fitness", bestFitness)
		}
	}

	return finalizeGA(items, params, bestOrdering, bestFitness)
}

func finalizeGA(items []model.Item, params model.RunParams, bestOrdering model.Ordering, bestFitness float64) model.RunResult {
	if bestOrdering == nil {
		return model.RunResult{BestFitness: bestFitness}
	}
	_, bins := ComputeFitness(items, bestOrdering, params.BinWidth, params.BinHeight, params.Guillotine, params.Rotation)
	return model.RunResult{BestOrdering: bestOrdering, BestFitness: bestFitness, Bins: bins}
}

// argmin returns the index of the smallest value, lowest index wins ties
// (deterministic reduction, per the reproducibility requirement under a
// fixed RNG seed).
func argmin(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}
	return best
}
