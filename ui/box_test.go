package ui

import (
	"testing"
)

func TestBoxPreferredSize(t *testing.T) {
	tests := []struct {
		name        string
		orientation Orientation
		wantW       int
		wantH       int
	}{
		{name: "horizontal", orientation: Horizontal, wantW: 37, wantH: 12},
		{name: "vertical", orientation: Vertical, wantW: 24, wantH: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(tt.orientation)
			box.SetSpacing(3)
			box.SetPadding(2, 2, 2, 2)
			box.PushBack(&stubElement{prefW: 10, prefH: 5}, AlignStart, false)
			box.PushBack(&stubElement{prefW: 20, prefH: 8}, AlignStart, false)

			if got := box.PreferredWidth(); got != tt.wantW {
				t.Errorf("PreferredWidth = %d, want %d", got, tt.wantW)
			}
			if got := box.PreferredHeight(); got != tt.wantH {
				t.Errorf("PreferredHeight = %d, want %d", got, tt.wantH)
			}

			// Pure function of the children: asking again changes nothing.
			if got := box.PreferredWidth(); got != tt.wantW {
				t.Errorf("second PreferredWidth = %d, want %d", got, tt.wantW)
			}
			if got := box.PreferredHeight(); got != tt.wantH {
				t.Errorf("second PreferredHeight = %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestBoxExpandDistribution(t *testing.T) {
	box := NewBox(Horizontal)
	box.SetSpacing(3)
	box.SetPadding(2, 2, 2, 2)

	a := &stubElement{prefW: 10, prefH: 5}
	b := &stubElement{prefW: 20, prefH: 8}
	box.PushBack(a, AlignStart, true)
	box.PushBack(b, AlignStart, false)

	box.SetWidth(57)
	box.SetHeight(12)
	box.Draw(0, 0, newFakeFrame(200, 200))

	// Preferred run is 37, so the 20 extra pixels all go to a.
	if got := a.Width(); got != 30 {
		t.Errorf("expanding item width = %d, want 30", got)
	}
	if got := b.Width(); got != 20 {
		t.Errorf("fixed item width = %d, want 20", got)
	}

	if x, y := a.lastDraw(); x != 2 || y != 2 {
		t.Errorf("a drawn at %d,%d, want 2,2", x, y)
	}
	if x, y := b.lastDraw(); x != 35 || y != 2 {
		t.Errorf("b drawn at %d,%d, want 35,2", x, y)
	}
}

func TestBoxCrossAxisAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		wantY     int
		wantH     int
	}{
		{name: "start", alignment: AlignStart, wantY: 2, wantH: 5},
		{name: "middle", alignment: AlignMiddle, wantY: 4, wantH: 5},
		{name: "end", alignment: AlignEnd, wantY: 5, wantH: 5},
		{name: "fill", alignment: AlignFill, wantY: 2, wantH: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(Horizontal)
			box.SetPadding(2, 2, 2, 2)

			a := &stubElement{prefW: 10, prefH: 5}
			box.PushBack(a, tt.alignment, false)

			box.SetWidth(40)
			box.SetHeight(12)
			box.Draw(0, 0, newFakeFrame(200, 200))

			if _, y := a.lastDraw(); y != tt.wantY {
				t.Errorf("drawn at y=%d, want %d", y, tt.wantY)
			}
			if got := a.Height(); got != tt.wantH {
				t.Errorf("assigned height = %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestBoxMainAxisAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		wantX     int
	}{
		{name: "start", alignment: AlignStart, wantX: 2},
		{name: "middle", alignment: AlignMiddle, wantX: 12},
		{name: "end", alignment: AlignEnd, wantX: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewBox(Horizontal)
			box.SetSpacing(3)
			box.SetPadding(2, 2, 2, 2)
			box.SetAlignment(tt.alignment)

			a := &stubElement{prefW: 10, prefH: 5}
			b := &stubElement{prefW: 20, prefH: 8}
			box.PushBack(a, AlignStart, false)
			box.PushBack(b, AlignStart, false)

			box.SetWidth(57)
			box.SetHeight(12)
			box.Draw(0, 0, newFakeFrame(200, 200))

			if x, _ := a.lastDraw(); x != tt.wantX {
				t.Errorf("first item drawn at x=%d, want %d", x, tt.wantX)
			}
		})
	}
}

func TestBoxSilentClip(t *testing.T) {
	box := NewBox(Horizontal)
	a := &stubElement{prefW: 100, prefH: 100}
	box.PushBack(a, AlignStart, false)

	// The child wants far more than the assigned size. The box still draws
	// at the clipped size without complaint.
	box.SetWidth(20)
	box.SetHeight(10)
	box.Draw(0, 0, newFakeFrame(200, 200))

	if len(a.drawOffsets) != 1 {
		t.Fatalf("child drawn %d times, want 1", len(a.drawOffsets))
	}

	// A box scissored down to nothing skips its children entirely.
	empty := NewBox(Horizontal)
	b := &stubElement{prefW: 10, prefH: 10}
	empty.PushBack(b, AlignStart, false)
	empty.SetWidth(0)
	empty.SetHeight(0)
	empty.Draw(0, 0, newFakeFrame(200, 200))

	if len(b.drawOffsets) != 0 {
		t.Errorf("child of zero-size box drawn %d times, want 0", len(b.drawOffsets))
	}
}

func TestBoxItemOperations(t *testing.T) {
	box := NewBox(Vertical)

	a := &stubElement{name: "a"}
	b := &stubElement{name: "b"}
	c := &stubElement{name: "c"}
	d := &stubElement{name: "d"}

	box.PushBack(b, AlignStart, false)
	box.PushFront(a, AlignStart, false)
	if !box.InsertAfter(b, d, AlignStart, false) {
		t.Fatal("InsertAfter did not find b")
	}
	if !box.InsertBefore(d, c, AlignStart, false) {
		t.Fatal("InsertBefore did not find d")
	}

	names := func() []string {
		var out []string
		for _, item := range box.items {
			out = append(out, item.element.(*stubElement).name)
		}
		return out
	}

	want := []string{"a", "b", "c", "d"}
	got := names()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}

	if box.InsertBefore(&stubElement{}, c, AlignStart, false) {
		t.Error("InsertBefore found an element that is not in the box")
	}

	box.RemoveItem(b)
	box.PopFront()
	box.PopBack()
	got = names()
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("items after removals = %v, want [c]", got)
	}

	box.Clear()
	if len(box.items) != 0 {
		t.Errorf("items after Clear = %d, want 0", len(box.items))
	}
}
