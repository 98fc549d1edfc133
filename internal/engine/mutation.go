package engine

import (
	"math/rand"

	"github.com/kdriggs/binpack2d/internal/model"
)

// swapIndividual swaps two distinct uniformly chosen positions in place.
func swapIndividual(rng *rand.Rand, individual model.Ordering) {
	n := len(individual)
	if n <= 1 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	individual[i], individual[j] = individual[j], individual[i]
}

// rotateIndividual negates the signed id at one uniformly chosen position,
// toggling that slot's rotation flag for the next decode.
func rotateIndividual(rng *rand.Rand, individual model.Ordering) {
	if len(individual) == 0 {
		return
	}
	i := rng.Intn(len(individual))
	individual[i] = -individual[i]
}

// Mutate applies one mutation operator (selected by operator, default
// swap) to each individual independently with probability rate. Safe to
// call per-individual in parallel since each invocation only touches its
// own individual and its own child RNG.
func Mutate(rng *rand.Rand, population model.Population, rate float64, operator string, workers int) model.Population {
	mutated := population.Clone()
	seeds := childSeeds(rng, len(mutated))
	runParallelMap(len(mutated), workers, func(i int) struct{} {
		childRng := rand.New(rand.NewSource(seeds[i]))
		if childRng.Float64() < rate {
			switch operator {
			case model.MutationRotate:
				rotateIndividual(childRng, mutated[i])
			default:
				swapIndividual(childRng, mutated[i])
			}
		}
		return struct{}{}
	})
	return mutated
}
