package ui

import (
	"testing"

	"github.com/agiangrant/overlay/input"
)

// testScrollView is a 100x100 view over a 200x270 child, so both axes
// overflow: max displacement 110 horizontally and 180 vertically.
func testScrollView(t *testing.T) (*Ui, *ScrollView, *stubElement) {
	t.Helper()
	u := newTestUI(t, &recordQueue{}, nil)

	child := &stubElement{prefW: 200, prefH: 270}
	sv := NewScrollView(u)
	sv.SetChild(child)
	sv.SetWidth(100)
	sv.SetHeight(100)
	return u, sv, child
}

func TestScrollViewClampsOffset(t *testing.T) {
	_, sv, _ := testScrollView(t)

	sv.SetScrollOffset(1000, 1000)
	sv.Draw(0, 0, newFakeFrame(500, 500))

	x, y := sv.ScrollOffset()
	if x != 110 || y != 180 {
		t.Errorf("clamped offset = %d,%d, want 110,180", x, y)
	}

	sv.SetScrollOffset(-50, -50)
	sv.Draw(0, 0, newFakeFrame(500, 500))

	x, y = sv.ScrollOffset()
	if x != 0 || y != 0 {
		t.Errorf("clamped offset = %d,%d, want 0,0", x, y)
	}
}

func TestScrollViewNoOverflowNoScroll(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)

	child := &stubElement{prefW: 50, prefH: 50}
	sv := NewScrollView(u)
	sv.SetChild(child)
	sv.SetWidth(100)
	sv.SetHeight(100)

	sv.SetScrollOffset(30, 30)
	sv.Draw(0, 0, newFakeFrame(500, 500))

	x, y := sv.ScrollOffset()
	if x != 0 || y != 0 {
		t.Errorf("offset with fitting child = %d,%d, want 0,0", x, y)
	}
}

func TestScrollViewChildDrawnDisplaced(t *testing.T) {
	_, sv, child := testScrollView(t)

	sv.SetScrollOffset(30, 40)
	sv.Draw(0, 0, newFakeFrame(500, 500))

	if x, y := child.lastDraw(); x != -30 || y != -40 {
		t.Errorf("child drawn at %d,%d, want -30,-40", x, y)
	}
	if child.Width() != 200 || child.Height() != 270 {
		t.Errorf("child sized %dx%d, want its preferred 200x270", child.Width(), child.Height())
	}
}

func TestScrollViewWheel(t *testing.T) {
	_, sv, _ := testScrollView(t)

	sv.SetScrollOffset(0, 40)
	sv.Draw(0, 0, newFakeFrame(500, 500))

	wheel := input.NewMouseWheel(50, 50, 1, false)
	if !sv.ProcessMouseEvent(0, 0, wheel) {
		t.Fatal("wheel event not consumed")
	}
	wheel.Release()

	if _, y := sv.ScrollOffset(); y != 20 {
		t.Errorf("offset after wheel up = %d, want 20", y)
	}

	wheel = input.NewMouseWheel(50, 50, -1, false)
	sv.ProcessMouseEvent(0, 0, wheel)
	wheel.Release()

	if _, y := sv.ScrollOffset(); y != 40 {
		t.Errorf("offset after wheel down = %d, want 40", y)
	}

	wheel = input.NewMouseWheel(50, 50, 1, true)
	sv.ProcessMouseEvent(0, 0, wheel)
	wheel.Release()

	if x, _ := sv.ScrollOffset(); x != 20 {
		t.Errorf("offset after horizontal wheel = %d, want 20", x)
	}
}

func TestScrollViewThumbGeometry(t *testing.T) {
	_, sv, _ := testScrollView(t)

	sv.Draw(0, 0, newFakeFrame(500, 500))

	// Vertical: 90px track over 270px of content, one third visible.
	if sv.vertThumbSize != 30 {
		t.Errorf("vertical thumb size = %d, want 30", sv.vertThumbSize)
	}
	if sv.vertThumbPos != 0 {
		t.Errorf("vertical thumb position = %d, want 0", sv.vertThumbPos)
	}
	if sv.vertMoveFactor != 3.0 {
		t.Errorf("vertical move factor = %v, want 3.0", sv.vertMoveFactor)
	}

	// Horizontal: 90px track over 200px of content.
	if sv.horizThumbSize != 40 {
		t.Errorf("horizontal thumb size = %d, want 40", sv.horizThumbSize)
	}

	sv.SetScrollOffset(0, 90)
	sv.Draw(0, 0, newFakeFrame(500, 500))
	if sv.vertThumbPos != 30 {
		t.Errorf("vertical thumb position at half scroll = %d, want 30", sv.vertThumbPos)
	}
}

func TestScrollViewThumbDrag(t *testing.T) {
	u, sv, _ := testScrollView(t)

	sv.Draw(0, 0, newFakeFrame(500, 500))

	move := input.NewMouseMove(95, 10)
	sv.ProcessMouseEvent(0, 0, move)
	move.Release()
	if !sv.vertHover {
		t.Fatal("pointer over the vertical thumb did not set hover")
	}

	down := input.NewMouseButton(95, 10, input.MouseButtonLeft, true)
	if !sv.ProcessMouseEvent(0, 0, down) {
		t.Fatal("thumb press not consumed")
	}
	down.Release()

	u.captureMu.Lock()
	captured := u.capture != nil
	u.captureMu.Unlock()
	if !captured {
		t.Fatal("thumb press did not acquire capture")
	}

	// 20px of thumb travel maps to 60px of content displacement.
	move = input.NewMouseMove(95, 30)
	sv.ProcessMouseEvent(0, 0, move)
	move.Release()

	if _, y := sv.ScrollOffset(); y != 60 {
		t.Errorf("offset after drag = %d, want 60", y)
	}

	up := input.NewMouseButton(95, 30, input.MouseButtonLeft, false)
	sv.ProcessMouseEvent(0, 0, up)
	up.Release()

	u.captureMu.Lock()
	captured = u.capture != nil
	u.captureMu.Unlock()
	if captured {
		t.Error("drag release did not clear capture")
	}
	if sv.dragVert {
		t.Error("drag release left the drag flag set")
	}
}

func TestScrollViewPressOffThumbNotConsumed(t *testing.T) {
	_, sv, _ := testScrollView(t)

	sv.Draw(0, 0, newFakeFrame(500, 500))

	// A press in the content area is not the scroll view's to take.
	down := input.NewMouseButton(40, 40, input.MouseButtonLeft, true)
	if sv.ProcessMouseEvent(0, 0, down) {
		t.Error("press outside the thumbs was consumed")
	}
	down.Release()
}

func TestScrollViewPreferredSizeIsZero(t *testing.T) {
	_, sv, _ := testScrollView(t)

	if sv.PreferredWidth() != 0 || sv.PreferredHeight() != 0 {
		t.Error("scroll view reported a non-zero preferred size")
	}
}
