// Package model defines the data types shared by the LGFI placement engine
// and the metaheuristic search drivers: items, free rectangles, bins,
// signed-permutation orderings and the tabu memory used by the search.
package model

import "fmt"

// Item is a rectangle to be placed into a bin. Width and height reflect the
// item's current orientation; Rotated records whether that orientation is
// swapped relative to the orientation the item was created with.
//
// Before placement CornerX and CornerY are -1. After placement they satisfy
// 0 <= CornerX and CornerX+Width <= bin width (analogously for Y).
type Item struct {
	ID       int32
	Width    int32
	Height   int32
	Rotated  bool
	CornerX  int32
	CornerY  int32
}

// NewItem returns an unplaced item with the given id and dimensions.
func NewItem(id, width, height int32) Item {
	return Item{
		ID:      id,
		Width:   width,
		Height:  height,
		CornerX: -1,
		CornerY: -1,
	}
}

// Placed reports whether the item has been assigned a corner.
func (it Item) Placed() bool {
	return it.CornerX >= 0 && it.CornerY >= 0
}

// Area returns width*height.
func (it Item) Area() int64 {
	return int64(it.Width) * int64(it.Height)
}

// Rotate swaps width/height and toggles the rotated flag. It must only be
// called before placement.
func (it *Item) Rotate() {
	it.Width, it.Height = it.Height, it.Width
	it.Rotated = !it.Rotated
}

func (it Item) String() string {
	return fmt.Sprintf("Item{id=%d %dx%d rotated=%v @(%d,%d)}", it.ID, it.Width, it.Height, it.Rotated, it.CornerX, it.CornerY)
}

// ItemByID returns a defensive copy of the item with the given id, and
// whether it was found.
func ItemByID(items []Item, id int32) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
