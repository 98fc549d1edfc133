package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/kdriggs/binpack2d/internal/model"
)

// offspringGeneration performs order-based crossover between two parents.
// Three pointers k, l, r walk the parents and the offspring in lockstep:
// when both parents currently point at the same id it is copied directly;
// otherwise one of the two candidate ids is drawn, favoring the fitter
// parent's id with probability 0.75 (minimize semantics: the fitter parent
// is the one with the lower fitness).
func offspringGeneration(rng *rand.Rand, p1, p2 model.Ordering, f1, f2 float64) model.Ordering {
	n := len(p1)
	offspring := make(model.Ordering, n)
	used := make(map[int32]bool, n)
	k, l := 0, 0

	for r := 0; r < n; r++ {
		var choice int32
		if p1[k] == p2[l] {
			choice = p1[k]
		} else {
			probs := [2]float64{0.75, 0.25}
			if f1 >= f2 {
				probs = [2]float64{0.25, 0.75}
			}
			candidates := []int32{p1[k], p2[l]}
			choice = candidates[customChoice(rng, []int{0, 1}, probs[:])]
		}
		offspring[r] = choice
		id := choice
		if id < 0 {
			id = -id
		}
		used[id] = true

		for k < n && used[absID(p1[k])] {
			k++
		}
		for l < n && used[absID(p2[l])] {
			l++
		}
	}
	return offspring
}

func absID(signed int32) int32 {
	if signed < 0 {
		return -signed
	}
	return signed
}

// Crossover produces floor(cr*psize) offspring. Parent1 slots are the
// floor(cr*psize) individuals with the lowest (best) fitness; each is
// paired with a partner drawn by weighted sampling over fitness rank
// across the whole population, weight (psize-rank)^delta, resampling if
// the partner equals self. Each offspring's construction is independent
// and runs on the worker pool.
func Crossover(rng *rand.Rand, population model.Population, fitnesses []float64, crossoverRate, delta float64, workers int) model.Population {
	psize := len(population)
	numCx := int(crossoverRate * float64(psize))
	if numCx <= 0 {
		return model.Population{}
	}

	sortedIndices := make([]int, psize)
	for i := range sortedIndices {
		sortedIndices[i] = i
	}
	sort.SliceStable(sortedIndices, func(i, j int) bool {
		return fitnesses[sortedIndices[i]] < fitnesses[sortedIndices[j]]
	})

	ranks := make([]int, psize)
	for rank, idx := range sortedIndices {
		ranks[idx] = rank
	}
	probabilities := make([]float64, psize)
	for idx, rank := range ranks {
		probabilities[idx] = math.Pow(float64(psize-rank), delta)
	}

	selected := sortedIndices[:numCx]
	allPositions := make([]int, psize)
	for i := range allPositions {
		allPositions[i] = i
	}

	seeds := childSeeds(rng, numCx)
	return runParallelMap(numCx, workers, func(i int) model.Ordering {
		idx := selected[i]
		childRng := rand.New(rand.NewSource(seeds[i]))
		partner := idx
		for partner == idx {
			partner = customChoice(childRng, allPositions, probabilities)
		}
		return offspringGeneration(childRng, population[idx], population[partner], fitnesses[idx], fitnesses[partner])
	})
}
