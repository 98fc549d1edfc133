package model

import "testing"

func TestNewBinHasSingleFullFreeRect(t *testing.T) {
	b := NewBin(0, 100, 50)
	if len(b.FreeRects) != 1 {
		t.Fatalf("expected 1 free rect, got %d", len(b.FreeRects))
	}
	r := b.FreeRects[0]
	if r.CornerX != 0 || r.CornerY != 0 || r.Width != 100 || r.Height != 50 {
		t.Errorf("unexpected initial free rect: %+v", r)
	}
}

func TestAddItemStampsCorner(t *testing.T) {
	b := NewBin(0, 100, 100)
	b.AddItem(NewItem(1, 10, 10), 5, 7)
	if len(b.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(b.Items))
	}
	it := b.Items[0]
	if it.CornerX != 5 || it.CornerY != 7 {
		t.Errorf("expected corner (5,7), got (%d,%d)", it.CornerX, it.CornerY)
	}
}

func TestAddFreeRectSkipsDegenerate(t *testing.T) {
	b := &Bin{Width: 10, Height: 10}
	b.AddFreeRect(FreeRectangle{Width: 0, Height: 5})
	b.AddFreeRect(FreeRectangle{Width: 5, Height: 0})
	if len(b.FreeRects) != 0 {
		t.Errorf("expected degenerate rects to be skipped, got %d", len(b.FreeRects))
	}
	b.AddFreeRect(FreeRectangle{Width: 5, Height: 5})
	if len(b.FreeRects) != 1 {
		t.Errorf("expected 1 real rect, got %d", len(b.FreeRects))
	}
}

func TestRemoveFreeRectByIndex(t *testing.T) {
	b := &Bin{}
	b.FreeRects = []FreeRectangle{{Width: 1, Height: 1}, {Width: 2, Height: 2}, {Width: 3, Height: 3}}
	b.RemoveFreeRectByIndex(1)
	if len(b.FreeRects) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(b.FreeRects))
	}
	if b.FreeRects[0].Width != 1 || b.FreeRects[1].Width != 3 {
		t.Errorf("unexpected remaining rects: %+v", b.FreeRects)
	}
}

func TestFillRatio(t *testing.T) {
	b := NewBin(0, 10, 10)
	b.AddItem(NewItem(1, 5, 5), 0, 0)
	if got, want := b.FillRatio(), 0.25; got != want {
		t.Errorf("FillRatio() = %v, want %v", got, want)
	}
}

func TestBinClone(t *testing.T) {
	b := NewBin(0, 10, 10)
	b.AddItem(NewItem(1, 5, 5), 0, 0)
	c := b.Clone()
	c.Items[0].ID = 99
	if b.Items[0].ID == 99 {
		t.Errorf("Clone did not deep copy items")
	}
}
