package model

import "time"

// PlacedItem is the JSON-serializable shape of one item inside a solved
// bin, matching the documented output schema exactly.
type PlacedItem struct {
	ID      int32 `json:"id"`
	Width   int32 `json:"width"`
	Height  int32 `json:"height"`
	Rotated bool  `json:"rotated"`
	CornerX int32 `json:"corner_x"`
	CornerY int32 `json:"corner_y"`
}

// SolvedBin is the JSON-serializable shape of one bin in a solution.
type SolvedBin struct {
	ID     int32        `json:"id"`
	Width  int32        `json:"width"`
	Height int32        `json:"height"`
	Items  []PlacedItem `json:"items"`
}

// Solution is the top-level JSON document written by the solution exporter.
type Solution []SolvedBin

// FromBins converts the engine's working []*Bin representation into the
// exported Solution shape, dropping any item with width == 0 (an
// uninitialized slot in the sense of the original fixed-capacity design,
// preserved here only as a filter for defensive zero-value entries).
func FromBins(bins []*Bin) Solution {
	sol := make(Solution, 0, len(bins))
	for _, b := range bins {
		sb := SolvedBin{ID: b.ID, Width: b.Width, Height: b.Height}
		for _, it := range b.Items {
			if it.Width == 0 {
				continue
			}
			sb.Items = append(sb.Items, PlacedItem{
				ID:      it.ID,
				Width:   it.Width,
				Height:  it.Height,
				Rotated: it.Rotated,
				CornerX: it.CornerX,
				CornerY: it.CornerY,
			})
		}
		sol = append(sol, sb)
	}
	return sol
}

// RunResult is the outcome of one GA or Tabu Search driver invocation.
type RunResult struct {
	BestOrdering Ordering
	BestFitness  float64
	Bins         []*Bin
}

// RunRecord is one persisted, append-only entry in the run history store.
type RunRecord struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Params      RunParams `json:"params"`
	BinCount    int       `json:"bin_count"`
	BestFitness float64   `json:"best_fitness"`
	InputPath   string    `json:"input_path,omitempty"`
	OutputPath  string    `json:"output_path,omitempty"`
}
