package ui

import (
	"testing"

	"github.com/agiangrant/overlay/input"
)

func menuItem(u *Ui, label string) *MenuItem {
	mi := NewMenuItem(u)
	mi.SetElement(NewText(label, Color(0xFFFFFFFF), u.Font()))
	return mi
}

// openTestMenu builds a two-item menu, shows it at 5,5 and draws one frame
// so it has real bounds.
func openTestMenu(t *testing.T, u *Ui) (*Menu, *MenuItem, *MenuItem) {
	t.Helper()

	m := NewMenu(u)
	first := menuItem(u, "Open")
	second := menuItem(u, "Quit")
	m.PushBack(first)
	m.PushBack(second)

	m.Show(5, 5)
	m.Draw(0, 0, newFakeFrame(640, 480))
	return m, first, second
}

func isTopLevel(u *Ui, el Element) bool {
	u.topMu.Lock()
	defer u.topMu.Unlock()
	for _, existing := range u.topLevel {
		if existing == el {
			return true
		}
	}
	return false
}

func captureHeld(u *Ui) bool {
	u.captureMu.Lock()
	defer u.captureMu.Unlock()
	return u.capture != nil
}

func TestMenuShowTakesCaptureAndTopLevel(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, _, _ := openTestMenu(t, u)

	if !isTopLevel(u, m) {
		t.Error("shown menu is not a top-level element")
	}
	if !captureHeld(u) {
		t.Error("shown menu does not hold mouse capture")
	}
	if m.Width() <= 2 || m.Height() <= 2 {
		t.Errorf("menu sized %dx%d after draw, want its items' size", m.Width(), m.Height())
	}
}

func TestMenuOutsideClickCloses(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, _, _ := openTestMenu(t, u)

	down := input.NewMouseButton(400, 400, input.MouseButtonLeft, true)
	m.ProcessMouseEvent(0, 0, down)
	down.Release()

	if isTopLevel(u, m) {
		t.Error("outside click left the menu open")
	}
	if captureHeld(u) {
		t.Error("outside click left capture held")
	}
}

func TestMenuInsideClickStaysOpen(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, _, _ := openTestMenu(t, u)

	down := input.NewMouseButton(10, 10, input.MouseButtonLeft, true)
	m.ProcessMouseEvent(0, 0, down)
	down.Release()

	if !isTopLevel(u, m) {
		t.Error("inside click closed the menu")
	}
	if !captureHeld(u) {
		t.Error("inside click released capture")
	}
}

func TestMenuIgnoresNonPressEvents(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, _, _ := openTestMenu(t, u)

	move := input.NewMouseMove(400, 400)
	if m.ProcessMouseEvent(0, 0, move) {
		t.Error("menu consumed a move event")
	}
	move.Release()

	up := input.NewMouseButton(400, 400, input.MouseButtonLeft, false)
	m.ProcessMouseEvent(0, 0, up)
	up.Release()

	if !isTopLevel(u, m) {
		t.Error("a button release closed the menu")
	}
}

func TestMenuItemHoverOpensSubmenu(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, first, second := openTestMenu(t, u)

	sub := NewMenu(u)
	sub.PushBack(menuItem(u, "Child"))
	first.SetSubmenu(sub)

	enter := input.NewMouseMove(10, 10).AsEnter()
	first.ProcessMouseEvent(0, 0, enter)
	enter.Release()

	m.mu.Lock()
	open := m.child
	m.mu.Unlock()
	if open != sub {
		t.Fatal("hovering the item did not open its submenu")
	}

	sub.mu.Lock()
	parent := sub.parent
	sub.mu.Unlock()
	if parent != m {
		t.Error("submenu does not point back at its parent")
	}

	// Hovering an item with no submenu closes whatever was open.
	enter = input.NewMouseMove(10, 30).AsEnter()
	second.ProcessMouseEvent(0, 0, enter)
	enter.Release()

	m.mu.Lock()
	open = m.child
	m.mu.Unlock()
	if open != nil {
		t.Error("hovering a plain item did not close the open submenu")
	}
}

func TestMenuClickInsideSubmenuStaysOpen(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	m, first, _ := openTestMenu(t, u)

	sub := NewMenu(u)
	sub.PushBack(menuItem(u, "Child"))
	first.SetSubmenu(sub)

	// The enter arrives at the offset the item registered with; 100 puts
	// the submenu fully clear of the root menu's bounds.
	enter := input.NewMouseMove(10, 10).AsEnter()
	first.ProcessMouseEvent(100, 0, enter)
	enter.Release()

	// Draw again so the submenu has bounds at its installed position.
	m.Draw(0, 0, newFakeFrame(640, 480))

	sx := sub.X()
	sy := sub.Y()
	down := input.NewMouseButton(sx+3, sy+3, input.MouseButtonLeft, true)
	m.ProcessMouseEvent(0, 0, down)
	down.Release()

	if !isTopLevel(u, m) {
		t.Error("a click inside the open submenu closed the menu")
	}

	// Outside both the menu and its submenu chain, it closes.
	down = input.NewMouseButton(500, 400, input.MouseButtonLeft, true)
	m.ProcessMouseEvent(0, 0, down)
	down.Release()

	if isTopLevel(u, m) {
		t.Error("a click outside the whole chain left the menu open")
	}
}

func TestDisabledMenuItemConsumesSilently(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)

	mi := menuItem(u, "Disabled")
	mi.AddEventHandler(1)
	mi.SetEnabled(false)

	up := input.NewMouseButton(5, 5, input.MouseButtonLeft, false)
	if !mi.ProcessMouseEvent(0, 0, up) {
		t.Error("disabled item did not consume the event")
	}
	up.Release()

	if names := queue.targetedNames(); len(names) != 0 {
		t.Errorf("disabled item queued %v, want nothing", names)
	}
}

func TestMenuItemClickEvent(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)

	mi := menuItem(u, "Open")
	mi.AddEventHandler(4, "click-left")

	up := input.NewMouseButton(5, 5, input.MouseButtonLeft, false)
	mi.ProcessMouseEvent(0, 0, up)
	up.Release()

	names := queue.targetedNames()
	if len(names) != 1 || names[0] != "click-left" {
		t.Errorf("targeted events = %v, want [click-left]", names)
	}
}

func TestMenuItemPreferredSize(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)

	// Icon slot is the icon font's line spacing (10 in tests), the submenu
	// indicator slot 20, plus 10 around the content.
	mi := menuItem(u, "Open")
	if got := mi.PreferredWidth(); got != 80 {
		t.Errorf("PreferredWidth = %d, want 80", got)
	}

	// Content shorter than the icon slot floors at iconSize+4.
	if got := mi.PreferredHeight(); got != 14 {
		t.Errorf("PreferredHeight = %d, want 14", got)
	}

	// A separator row ignores the icon floor.
	sep := NewMenuItem(u)
	sep.SetElement(NewSeparator(u, Horizontal))
	if got := sep.PreferredHeight(); got != 7 {
		t.Errorf("separator row PreferredHeight = %d, want 7", got)
	}
}
