package model

import "testing"

func TestTabuListForbidsMatchingSwap(t *testing.T) {
	list := NewTabuList(2)
	list.Add(Move{Kind: MoveSwap, I: 0, J: 1})

	if !list.Forbids(Move{Kind: MoveSwap, I: 0, J: 1}) {
		t.Errorf("expected swap (0,1) to be forbidden")
	}
	if list.Forbids(Move{Kind: MoveSwap, I: 1, J: 2}) {
		t.Errorf("did not expect swap (1,2) to be forbidden")
	}
	if list.Forbids(Move{Kind: MoveRotation, I: 0}) {
		t.Errorf("a swap entry must not forbid a rotation move at the same index")
	}
}

func TestTabuListEvictsOldestOnOverflow(t *testing.T) {
	list := NewTabuList(2)
	list.Add(Move{Kind: MoveRotation, I: 0})
	list.Add(Move{Kind: MoveRotation, I: 1})
	list.Add(Move{Kind: MoveRotation, I: 2})

	if list.Len() != 2 {
		t.Fatalf("expected capacity-bounded length 2, got %d", list.Len())
	}
	if list.Forbids(Move{Kind: MoveRotation, I: 0}) {
		t.Errorf("expected oldest entry (rotation 0) to have been evicted")
	}
	if !list.Forbids(Move{Kind: MoveRotation, I: 1}) || !list.Forbids(Move{Kind: MoveRotation, I: 2}) {
		t.Errorf("expected the two most recent entries to remain tabu")
	}
}
