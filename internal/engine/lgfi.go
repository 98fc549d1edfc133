// Package engine implements the LGFI placement engine and the genetic
// algorithm / tabu search metaheuristics that drive it, grounded on the
// guillotine packer and genetic optimizer structure of this module's
// teacher implementation, adapted from CNC cut-list packing to abstract
// 2D bin packing.
package engine

import (
	"fmt"

	"github.com/kdriggs/binpack2d/internal/model"
)

// CheckFeasible fails fast when an item can never be placed in any bin of
// size (binWidth, binHeight) in any orientation it is allowed to take: the
// rotated orientation is only considered when rotationEnabled is true.
func CheckFeasible(items []model.Item, binWidth, binHeight int32, rotationEnabled bool) error {
	for _, it := range items {
		fitsNormal := it.Width <= binWidth && it.Height <= binHeight
		fitsRotated := rotationEnabled && it.Height <= binWidth && it.Width <= binHeight
		if !fitsNormal && !fitsRotated {
			return fmt.Errorf("item %d cannot fit in any bin (size %dx%d, rotation=%v)", it.ID, binWidth, binHeight, rotationEnabled)
		}
	}
	return nil
}

// LGFI (Level Guillotine Fit Insertion) packs items, in the order given,
// into as few bins of size (binWidth, binHeight) as possible. items are
// assumed to already carry the orientation requested by the caller (see
// model.Decode); with rotation enabled, LGFI rotates an item when the fit
// chosen by checkFitAndRotation is the rotated orientation, which can happen
// even when the unrotated orientation also fits.
func LGFI(items []model.Item, binWidth, binHeight int32, guillotineCut, rotationEnabled bool) []*model.Bin {
	unpacked := make([]model.Item, len(items))
	copy(unpacked, items)

	var bins []*model.Bin
	for len(unpacked) > 0 {
		placed := false
		for _, bin := range bins {
			id, ok := insertLGFI(bin, unpacked, guillotineCut, rotationEnabled)
			if ok {
				unpacked = removeItemByID(unpacked, id)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		spaceAvailable := false
		for _, bin := range bins {
			if len(bin.FreeRects) > 0 {
				spaceAvailable = true
				break
			}
		}
		if !spaceAvailable {
			bins = append(bins, model.NewBin(int32(len(bins)), binWidth, binHeight))
		}
	}
	return bins
}

func removeItemByID(items []model.Item, id int32) []model.Item {
	for i, it := range items {
		if it.ID == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// insertLGFI attempts a single placement into bin's anchor free rectangle.
// It returns the id of the placed item and true on success. On failure it
// still mutates bin (shrinking or removing the anchor via wastage handling
// or outright removal) — this side effect is what guarantees the outer
// loop in LGFI terminates.
func insertLGFI(bin *model.Bin, unpacked []model.Item, guillotineCut, rotationEnabled bool) (placedID int32, ok bool) {
	anchorIdx := findAnchor(bin)
	if anchorIdx < 0 {
		return 0, false
	}
	anchor := bin.FreeRects[anchorIdx]

	item, rotated, found := checkFitAndRotation(unpacked, anchor.Width, anchor.Height, rotationEnabled)
	if !found {
		if guillotineCut {
			bin.RemoveFreeRectByIndex(anchorIdx)
		} else {
			handleWastage(bin, anchorIdx, anchor)
		}
		return 0, false
	}

	if rotated {
		item.Rotate()
	}
	bin.AddItem(item, anchor.CornerX, anchor.CornerY)

	deltaH := anchor.Width - item.Width
	deltaV := anchor.Height - item.Height
	horizontal := guillotineCut && deltaH < deltaV

	splitGuillotine(bin, anchorIdx, anchor, item, horizontal)
	if deltaH > 0 && deltaV > 0 && !guillotineCut {
		mergeGuillotine(bin)
	}

	return item.ID, true
}

// findAnchor returns the index of the bottom-leftmost free rectangle:
// smallest CornerY, ties broken by smallest CornerX. Returns -1 if bin has
// no free rectangles.
func findAnchor(bin *model.Bin) int {
	best := -1
	for i, r := range bin.FreeRects {
		if best == -1 {
			best = i
			continue
		}
		b := bin.FreeRects[best]
		if r.CornerY < b.CornerY || (r.CornerY == b.CornerY && r.CornerX < b.CornerX) {
			best = i
		}
	}
	return best
}

// checkFitAndRotation scans items in order for the first one that fits the
// given gap, trying the unrotated orientation and (if rotationEnabled) the
// rotated orientation. Scanning stops early on the first perfect fit: the
// item's dimension matching whichever of hGap/vGap is the smaller gap
// exactly consumes it.
func checkFitAndRotation(items []model.Item, hGap, vGap int32, rotationEnabled bool) (best model.Item, bestRotated bool, found bool) {
	currentGap := hGap
	if vGap < currentGap {
		currentGap = vGap
	}

	for _, it := range items {
		orientations := [2]bool{false, true}
		n := 1
		if rotationEnabled {
			n = 2
		}
		for _, rotated := range orientations[:n] {
			w, h := it.Width, it.Height
			if rotated {
				w, h = h, w
			}
			if w > hGap || h > vGap {
				continue
			}
			if !found {
				best, bestRotated, found = it, rotated, true
			}
			perfect := (currentGap == hGap && hGap-w == 0) || (currentGap == vGap && vGap-h == 0)
			if perfect {
				return it, rotated, true
			}
		}
	}
	return best, bestRotated, found
}

// handleWastage runs when no item fits the anchor in non-guillotine mode:
// it computes how much of the anchor's vertical gap is unreachable because
// an already-placed item overhangs it, shrinks the anchor to the
// unreachable-free band above that overhang (or removes it entirely if
// nothing is reclaimable), and merges afterward.
func handleWastage(bin *model.Bin, anchorIdx int, anchor model.FreeRectangle) {
	wastageHeight := anchor.Height
	for _, it := range bin.Items {
		if it.CornerY+it.Height > anchor.CornerY {
			if h := it.CornerY + it.Height - anchor.CornerY; h < wastageHeight {
				wastageHeight = h
			}
		}
	}

	if wastageHeight < anchor.Height {
		bin.FreeRects[anchorIdx] = model.FreeRectangle{
			CornerX: anchor.CornerX,
			CornerY: anchor.CornerY + wastageHeight,
			Width:   anchor.Width,
			Height:  anchor.Height - wastageHeight,
		}
		mergeGuillotine(bin)
	} else {
		bin.RemoveFreeRectByIndex(anchorIdx)
	}
}

// splitGuillotine replaces the anchor with the "right" and "top"
// rectangles left over after placing item into it, per the
// Shorter-Leftover rule. Degenerate rectangles are dropped; if both
// survive the anchor slot holds "right" and "top" is appended; if one
// survives it takes the anchor slot; if neither survives the anchor is
// removed.
func splitGuillotine(bin *model.Bin, anchorIdx int, anchor model.FreeRectangle, item model.Item, horizontal bool) {
	rightWidth := anchor.Width - item.Width
	topHeight := anchor.Height - item.Height

	var rightHeight, topWidth int32
	if horizontal {
		rightHeight = item.Height
		topWidth = anchor.Width
	} else {
		rightHeight = anchor.Height
		topWidth = item.Width
	}

	right := model.FreeRectangle{CornerX: anchor.CornerX + item.Width, CornerY: anchor.CornerY, Width: rightWidth, Height: rightHeight}
	top := model.FreeRectangle{CornerX: anchor.CornerX, CornerY: anchor.CornerY + item.Height, Width: topWidth, Height: topHeight}

	changes := 0
	if !right.Empty() {
		bin.FreeRects[anchorIdx] = right
		changes++
	}
	if !top.Empty() {
		if changes == 0 {
			bin.FreeRects[anchorIdx] = top
		} else {
			bin.AddFreeRect(top)
		}
		changes++
	}
	if changes == 0 {
		bin.RemoveFreeRectByIndex(anchorIdx)
	}
}

// mergeGuillotine repeatedly scans pairs of free rectangles and merges any
// two that share an x-extent and are vertically adjacent, restarting the
// scan on every merge. Horizontal merges are intentionally not performed:
// they can produce shapes unreachable by any single guillotine cut
// sequence. The merged rectangle is the geometric union of the pair
// (lowest corner, summed height) rather than the coordinate-preserving
// sum used upstream, so the free list stays geometrically consistent.
func mergeGuillotine(bin *model.Bin) {
	i := 0
	for i < len(bin.FreeRects) {
		first := bin.FreeRects[i]
		merged := false
		for j := i + 1; j < len(bin.FreeRects); j++ {
			second := bin.FreeRects[j]
			if first.Width != second.Width || first.CornerX != second.CornerX {
				continue
			}
			adjacentAbove := first.CornerY+first.Height == second.CornerY
			adjacentBelow := second.CornerY+second.Height == first.CornerY
			if !adjacentAbove && !adjacentBelow {
				continue
			}
			corner := first.CornerY
			if second.CornerY < corner {
				corner = second.CornerY
			}
			first.CornerY = corner
			first.Height += second.Height
			bin.FreeRects[i] = first
			bin.RemoveFreeRectByIndex(j)
			merged = true
			break
		}
		if merged {
			i = 0
			continue
		}
		i++
	}
}
