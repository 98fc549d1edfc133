package model

import "fmt"

// Algorithm selects which metaheuristic driver runs the search.
type Algorithm string

const (
	AlgorithmGA    Algorithm = "ga"
	AlgorithmTabu  Algorithm = "tabu"
	MutationSwap             = "swap"
	MutationRotate           = "rotate"
)

// RunParams is the full set of driver parameters exposed at the CLI
// boundary: bin dimensions, which metaheuristic to run, and the tuning
// knobs for whichever driver is selected.
type RunParams struct {
	Algorithm      Algorithm `json:"algorithm"`
	BinWidth       int32     `json:"bin_width"`
	BinHeight      int32     `json:"bin_height"`
	Guillotine     bool      `json:"guillotine"`
	Rotation       bool      `json:"rotation"`
	Kappa          float64   `json:"kappa"`
	Delta          float64   `json:"delta"`
	Seed           int64     `json:"seed"`
	Workers        int       `json:"workers"`

	// GA-only.
	PopulationSize    int     `json:"population_size"`
	Generations       int     `json:"generations"`
	CrossoverRate     float64 `json:"crossover_rate"`
	MutationRate      float64 `json:"mutation_rate"`
	MutationOperator  string  `json:"mutation_operator"`

	// Tabu-only.
	Iterations   int `json:"iterations"`
	TabuListSize int `json:"tabu_list_size"`
}

// DefaultRunParams returns the parameter set used when a user has not
// persisted or supplied their own.
func DefaultRunParams() RunParams {
	return RunParams{
		Algorithm:        AlgorithmGA,
		Guillotine:       true,
		Rotation:         true,
		Kappa:            2.0,
		Delta:            2.0,
		Seed:             1,
		Workers:          0, // 0 means runtime.NumCPU()
		PopulationSize:   60,
		Generations:      150,
		CrossoverRate:    0.7,
		MutationRate:     0.1,
		MutationOperator: MutationSwap,
		Iterations:       500,
		TabuListSize:     20,
	}
}

// Validate checks the preconditions from the external interface contract
// against n, the number of items the params will be applied to.
func (p RunParams) Validate(n int) error {
	if p.BinWidth <= 0 || p.BinHeight <= 0 {
		return fmt.Errorf("bin dimensions must be positive, got %dx%d", p.BinWidth, p.BinHeight)
	}
	if p.Kappa < 1 {
		return fmt.Errorf("kappa must be >= 1, got %v", p.Kappa)
	}
	if p.Delta < 1 {
		return fmt.Errorf("delta must be >= 1, got %v", p.Delta)
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return fmt.Errorf("crossover_rate must be in [0,1], got %v", p.CrossoverRate)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("mutation_rate must be in [0,1], got %v", p.MutationRate)
	}
	if p.Algorithm == AlgorithmTabu && p.TabuListSize >= 3*n {
		return fmt.Errorf("tabu_list_size must be < 3*n (n=%d), got %d", n, p.TabuListSize)
	}
	switch p.Algorithm {
	case AlgorithmGA, AlgorithmTabu:
	default:
		return fmt.Errorf("unknown algorithm %q, want %q or %q", p.Algorithm, AlgorithmGA, AlgorithmTabu)
	}
	return nil
}

// AppConfig holds persisted CLI defaults, mirroring a user's saved
// preferences across invocations.
type AppConfig struct {
	Defaults RunParams `json:"defaults"`
}

// DefaultAppConfig returns an AppConfig populated with DefaultRunParams.
func DefaultAppConfig() AppConfig {
	return AppConfig{Defaults: DefaultRunParams()}
}
