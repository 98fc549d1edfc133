package engine

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/kdriggs/binpack2d/internal/model"
)

type tabuNeighbor struct {
	ordering model.Ordering
	move     model.Move
}

// buildNeighborhood enumerates the union of the three move classes —
// adjacent-swap, rotation, head-insertion — filtering out any move the
// tabu list currently forbids.
func buildNeighborhood(current model.Ordering, tabu *model.TabuList) []tabuNeighbor {
	n := len(current)
	neighbors := make([]tabuNeighbor, 0, 3*n)

	for i := 0; i < n-1; i++ {
		move := model.Move{Kind: model.MoveSwap, I: i, J: i + 1}
		if tabu.Forbids(move) {
			continue
		}
		o := current.Clone()
		o[i], o[i+1] = o[i+1], o[i]
		neighbors = append(neighbors, tabuNeighbor{ordering: o, move: move})
	}

	for i := 0; i < n; i++ {
		move := model.Move{Kind: model.MoveRotation, I: i}
		if tabu.Forbids(move) {
			continue
		}
		o := current.Clone()
		o[i] = -o[i]
		neighbors = append(neighbors, tabuNeighbor{ordering: o, move: move})
	}

	for i := 1; i < n; i++ {
		move := model.Move{Kind: model.MoveInsertion, I: i}
		if tabu.Forbids(move) {
			continue
		}
		o := make(model.Ordering, n)
		o[0] = current[i]
		copy(o[1:i+1], current[0:i])
		copy(o[i+1:], current[i+1:])
		neighbors = append(neighbors, tabuNeighbor{ordering: o, move: move})
	}

	return neighbors
}

// RunTabuSearch runs the classical-TS driver (C8): always move to the best
// neighbor regardless of improvement, recording non-improving moves in the
// bounded tabu list. ctx is checked once per iteration.
func RunTabuSearch(ctx context.Context, rng *rand.Rand, items []model.Item, params model.RunParams, logger *slog.Logger) model.RunResult {
	initial := GeneratePopulation(rng, items, 1, params.Kappa)[0]
	current := initial
	oldFitness, _ := ComputeFitness(items, current, params.BinWidth, params.BinHeight, params.Guillotine, params.Rotation)

	bestFitness := oldFitness
	bestOrdering := current.Clone()

	tabu := model.NewTabuList(params.TabuListSize)

	for iter := 0; iter < params.Iterations; iter++ {
		select {
		case <-ctx.Done():
			return finalizeTabu(items, params, bestOrdering, bestFitness)
		default:
		}

		neighbors := buildNeighborhood(current, tabu)
		if len(neighbors) == 0 {
			break
		}

		fitnesses := runParallelMap(len(neighbors), params.Workers, func(i int) float64 {
			f, _ := ComputeFitness(items, neighbors[i].ordering, params.BinWidth, params.BinHeight, params.Guillotine, params.Rotation)
			return f
		})

		minFitness := math.Inf(1)
		for _, f := range fitnesses {
			if f < minFitness {
				minFitness = f
			}
		}
		var tied []int
		for i, f := range fitnesses {
			if f == minFitness {
				tied = append(tied, i)
			}
		}
		chosen := tied[rng.Intn(len(tied))]
		newFitness := fitnesses[chosen]
		move := neighbors[chosen].move

		if newFitness >= oldFitness {
			tabu.Add(move)
		} else if newFitness < bestFitness {
			bestFitness = newFitness
			bestOrdering = neighbors[chosen].ordering.Clone()
		}

		current = neighbors[chosen].ordering
		oldFitness = newFitness

		if logger != nil {
			logger.Debug("tabu search iteration complete", "iteration", iter, "fitness", newFitness, "best_fitness", bestFitness)
		}
	}

	return finalizeTabu(items, params, bestOrdering, bestFitness)
}

func finalizeTabu(items []model.Item, params model.RunParams, bestOrdering model.Ordering, bestFitness float64) model.RunResult {
	_, bins := ComputeFitness(items, bestOrdering, params.BinWidth, params.BinHeight, params.Guillotine, params.Rotation)
	return model.RunResult{BestOrdering: bestOrdering, BestFitness: bestFitness, Bins: bins}
}
