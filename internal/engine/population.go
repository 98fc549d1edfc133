package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/kdriggs/binpack2d/internal/model"
)

// customChoice draws one index from the given candidate positions, with
// probability proportional to weights[pos] for pos in positions. It scans
// a cumulative sum and returns the first position whose cumulative weight
// exceeds the draw, so zero-weight positions are never chosen; a numerical
// overrun returns the last position.
func customChoice(rng *rand.Rand, positions []int, weights []float64) int {
	if len(positions) == 1 {
		return positions[0]
	}
	cum := make([]float64, len(positions))
	var total float64
	for i, pos := range positions {
		total += weights[pos]
		cum[i] = total
	}
	draw := rng.Float64() * total
	for i, c := range cum {
		if draw < c {
			return positions[i]
		}
	}
	return positions[len(positions)-1]
}

// GeneratePopulation builds psize orderings by repeated weighted sampling
// without replacement over items sorted by non-increasing area (the
// "deterministic sequence"), with position i in that sequence weighted
// (n-i)^kappa. No rotation bias is applied at this stage: every id in a
// freshly generated ordering is positive.
func GeneratePopulation(rng *rand.Rand, items []model.Item, psize int, kappa float64) model.Population {
	n := len(items)
	sequence := make([]model.Item, n)
	copy(sequence, items)
	sort.SliceStable(sequence, func(i, j int) bool {
		return sequence[i].Area() > sequence[j].Area()
	})

	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = math.Pow(float64(n-i), kappa)
	}

	pop := make(model.Population, psize)
	for p := 0; p < psize; p++ {
		available := make([]int, n)
		for i := range available {
			available[i] = i
		}
		ordering := make(model.Ordering, 0, n)
		for len(available) > 0 {
			chosen := customChoice(rng, available, weights)
			ordering = append(ordering, sequence[chosen].ID)
			for i, pos := range available {
				if pos == chosen {
					available = append(available[:i], available[i+1:]...)
					break
				}
			}
		}
		pop[p] = ordering
	}
	return pop
}
