package engine

import "github.com/kdriggs/binpack2d/internal/model"

// ComputeFitness decodes ordering against items, runs LGFI, and returns
// |bins| + fill_ratio(last_bin). Lower is better: the integer part counts
// bins, and among orderings with the same bin count the fractional part
// ranks the one with the emptier last bin lower.
func ComputeFitness(items []model.Item, ordering model.Ordering, binWidth, binHeight int32, guillotineCut, rotation bool) (float64, []*model.Bin) {
	sequence := model.Decode(items, ordering)
	bins := LGFI(sequence, binWidth, binHeight, guillotineCut, rotation)
	if len(bins) == 0 {
		return 0, bins
	}
	last := bins[len(bins)-1]
	return float64(len(bins)) + last.FillRatio(), bins
}

// ComputeFitnesses scores every ordering in population in parallel; each
// evaluation allocates its own scratch bins/free-rect slices, so no
// cross-evaluation state is shared.
func ComputeFitnesses(items []model.Item, population model.Population, binWidth, binHeight int32, guillotineCut, rotation bool, workers int) []float64 {
	return runParallel(len(population), workers, func(i int) float64 {
		f, _ := ComputeFitness(items, population[i], binWidth, binHeight, guillotineCut, rotation)
		return f
	})
}
