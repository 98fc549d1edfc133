package model

// Bin is a single fixed-size container holding the items placed into it so
// far and the free rectangles still available for placement. Both Items and
// FreeRects are growable slices; there is no packed-left / tombstone layout
// since Go slices already track their own length.
type Bin struct {
	ID        int32
	Width     int32
	Height    int32
	Items     []Item
	FreeRects []FreeRectangle
}

// NewBin returns a bin with one free rectangle covering its whole area.
func NewBin(id, width, height int32) *Bin {
	return &Bin{
		ID:     id,
		Width:  width,
		Height: height,
		FreeRects: []FreeRectangle{
			{CornerX: 0, CornerY: 0, Width: width, Height: height},
		},
	}
}

// AddItem appends item to the bin, stamping its corner coordinates.
func (b *Bin) AddItem(item Item, x, y int32) {
	item.CornerX = x
	item.CornerY = y
	b.Items = append(b.Items, item)
}

// AddFreeRect appends a free rectangle, skipping degenerate (empty) ones.
func (b *Bin) AddFreeRect(r FreeRectangle) {
	if r.Empty() {
		return
	}
	b.FreeRects = append(b.FreeRects, r)
}

// RemoveFreeRectByIndex deletes the free rectangle at idx, preserving the
// relative order of the remaining entries.
func (b *Bin) RemoveFreeRectByIndex(idx int) {
	b.FreeRects = append(b.FreeRects[:idx], b.FreeRects[idx+1:]...)
}

// RemoveFreeRectByValue deletes the first free rectangle equal to r, if any.
func (b *Bin) RemoveFreeRectByValue(r FreeRectangle) {
	for i, f := range b.FreeRects {
		if f == r {
			b.RemoveFreeRectByIndex(i)
			return
		}
	}
}

// UsedArea returns the total area occupied by placed items.
func (b *Bin) UsedArea() int64 {
	var used int64
	for _, it := range b.Items {
		used += it.Area()
	}
	return used
}

// FillRatio returns UsedArea / (Width*Height).
func (b *Bin) FillRatio() float64 {
	total := int64(b.Width) * int64(b.Height)
	if total == 0 {
		return 0
	}
	return float64(b.UsedArea()) / float64(total)
}

// Clone returns a deep copy, used when a worker needs private scratch state.
func (b *Bin) Clone() *Bin {
	c := &Bin{ID: b.ID, Width: b.Width, Height: b.Height}
	c.Items = append([]Item(nil), b.Items...)
	c.FreeRects = append([]FreeRectangle(nil), b.FreeRects...)
	return c
}
