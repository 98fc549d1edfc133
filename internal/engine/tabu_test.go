package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kdriggs/binpack2d/internal/model"
)

func TestBuildNeighborhoodFiltersTabuSwap(t *testing.T) {
	current := model.Ordering{0, 1, 2, 3}
	tabu := model.NewTabuList(2)
	tabu.Add(model.Move{Kind: model.MoveSwap, I: 0, J: 1})

	neighbors := buildNeighborhood(current, tabu)
	for _, n := range neighbors {
		if n.move.Kind == model.MoveSwap && n.move.I == 0 && n.move.J == 1 {
			t.Fatalf("expected the tabu swap (0,1) to be excluded from the neighborhood")
		}
	}
}

// Tabu cycle avoidance: after one non-improving swap (0,1) is made tabu,
// the very next neighborhood must not offer that same swap again.
func TestTabuSearchCycleAvoidance(t *testing.T) {
	current := model.Ordering{0, 1, 2, 3}
	tabu := model.NewTabuList(2)

	before := buildNeighborhood(current, tabu)
	found := false
	for _, n := range before {
		if n.move.Kind == model.MoveSwap && n.move.I == 0 && n.move.J == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected swap (0,1) to be available before it is made tabu")
	}

	tabu.Add(model.Move{Kind: model.MoveSwap, I: 0, J: 1})
	after := buildNeighborhood(model.Ordering{1, 0, 2, 3}, tabu)
	for _, n := range after {
		if n.move.Kind == model.MoveSwap && n.move.I == 0 && n.move.J == 1 {
			t.Fatal("expected swap (0,1) to be forbidden in the next neighborhood")
		}
	}
}

func TestRunTabuSearchPlacesAllItems(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	items := []model.Item{
		model.NewItem(0, 10, 10),
		model.NewItem(1, 20, 20),
		model.NewItem(2, 30, 30),
		model.NewItem(3, 15, 15),
	}
	params := model.DefaultRunParams()
	params.Algorithm = model.AlgorithmTabu
	params.BinWidth, params.BinHeight = 50, 50
	params.Iterations = 20
	params.TabuListSize = 3
	params.Workers = 1

	result := RunTabuSearch(context.Background(), rng, items, params, nil)
	if result.BestOrdering == nil {
		t.Fatal("expected a best ordering")
	}
	placed := 0
	for _, b := range result.Bins {
		placed += len(b.Items)
	}
	if placed != len(items) {
		t.Errorf("expected all items placed, got %d", placed)
	}
}
