package ui

import (
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "inside", x: 20, y: 30, want: true},
		{name: "top left corner", x: 10, y: 20, want: true},
		{name: "right edge inclusive", x: 40, y: 30, want: true},
		{name: "bottom edge inclusive", x: 20, y: 60, want: true},
		{name: "left of", x: 9, y: 30, want: false},
		{name: "below", x: 20, y: 61, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: Rect{X: 5, Y: 5, Width: 5, Height: 5},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 10, Width: 20, Height: 20},
			want: Rect{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 50, Y: 50, Width: 10, Height: 10},
			want: Rect{},
		},
		{
			name: "edge touch is empty",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("reverse Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if (Rect{Width: 10, Height: 10}).Empty() {
		t.Error("sized rect reported empty")
	}
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Error("zero-width rect reported non-empty")
	}
	if !(Rect{}).Empty() {
		t.Error("zero rect reported non-empty")
	}
}

func TestColorChannels(t *testing.T) {
	c := Color(0x3D4478FF)

	if c.R() != 0x3D || c.G() != 0x44 || c.B() != 0x78 || c.A() != 0xFF {
		t.Errorf("channels = %#x %#x %#x %#x, want 3d 44 78 ff", c.R(), c.G(), c.B(), c.A())
	}

	r, g, b, a := Color(0xFF000080).Floats()
	if r != 1.0 || g != 0 || b != 0 {
		t.Errorf("Floats rgb = %v %v %v, want 1 0 0", r, g, b)
	}
	if a < 0.5 || a > 0.51 {
		t.Errorf("Floats alpha = %v, want about 0.5", a)
	}
}

// countingFont counts backend measurement calls through the cache.
type countingFont struct {
	fakeFont
	measured int
}

func (f *countingFont) TextWidth(text string) int {
	f.measured++
	return f.fakeFont.TextWidth(text)
}

func TestCachingFontAvoidsRemeasurement(t *testing.T) {
	backend := &countingFont{fakeFont: fakeFont{charWidth: 10, spacing: 10}}
	font := NewCachingFont(backend, 8)

	for i := 0; i < 3; i++ {
		if got := font.TextWidth("hello"); got != 50 {
			t.Fatalf("TextWidth = %d, want 50", got)
		}
	}
	if backend.measured != 1 {
		t.Errorf("backend measured %d times, want 1", backend.measured)
	}
}

func TestCachingFontEvictsOldest(t *testing.T) {
	backend := &countingFont{fakeFont: fakeFont{charWidth: 10, spacing: 10}}
	font := NewCachingFont(backend, 2)

	font.TextWidth("a")
	font.TextWidth("b")
	font.TextWidth("c") // evicts "a"
	backend.measured = 0

	font.TextWidth("b")
	font.TextWidth("c")
	if backend.measured != 0 {
		t.Errorf("cached entries remeasured %d times", backend.measured)
	}

	font.TextWidth("a")
	if backend.measured != 1 {
		t.Errorf("evicted entry measured %d times, want 1", backend.measured)
	}
}

func TestAlignmentFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
	}{
		{in: "start", want: AlignStart},
		{in: "middle", want: AlignMiddle},
		{in: "end", want: AlignEnd},
		{in: "fill", want: AlignFill},
		{in: "bogus", want: AlignStart},
	}
	for _, tt := range tests {
		if got := AlignmentFromString(tt.in); got != tt.want {
			t.Errorf("AlignmentFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOrientationFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Orientation
	}{
		{in: "horizontal", want: Horizontal},
		{in: "vertical", want: Vertical},
		{in: "sideways", want: Horizontal},
	}
	for _, tt := range tests {
		if got := OrientationFromString(tt.in); got != tt.want {
			t.Errorf("OrientationFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
