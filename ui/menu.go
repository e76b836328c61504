package ui

import (
	"github.com/agiangrant/overlay/input"
)

// submenuChevron is the icon font glyph marking items that open a submenu.
const submenuChevron = ""

// Menu is a popup list of MenuItems. Show adds the menu as a top-level
// element and captures the mouse over the whole screen, so a click outside
// the menu and its open submenus closes it. Submenus are plain Menus opened
// by hovering an item; they draw as children of the root menu rather than
// registering for input themselves.
//
// A menu sizes itself from its items during draw, ignoring assigned size.
type Menu struct {
	base

	ui *Ui

	bg     Color
	border Color

	itembox *Box

	parent *Menu
	child  *Menu
}

// NewMenu builds an empty menu styled from the ui's settings.
func NewMenu(u *Ui) *Menu {
	st := u.Settings()
	return &Menu{
		ui:      u,
		bg:      Color(st.MustColor("overlay.ui.colors.menuBG")),
		border:  Color(st.MustColor("overlay.ui.colors.menuBorder")),
		itembox: NewBox(Vertical),
	}
}

// PushFront adds an item at the top of the menu.
func (m *Menu) PushFront(item *MenuItem) {
	m.itembox.PushFront(item, AlignFill, false)
	item.setParentMenu(m)
}

// PushBack adds an item at the bottom of the menu.
func (m *Menu) PushBack(item *MenuItem) {
	m.itembox.PushBack(item, AlignFill, false)
	item.setParentMenu(m)
}

// PopFront removes the first item.
func (m *Menu) PopFront() { m.itembox.PopFront() }

// PopBack removes the last item.
func (m *Menu) PopBack() { m.itembox.PopBack() }

// InsertBefore adds an item before an existing one, reporting whether the
// existing item was found.
func (m *Menu) InsertBefore(before, item *MenuItem) bool {
	if !m.itembox.InsertBefore(before, item, AlignFill, false) {
		return false
	}
	item.setParentMenu(m)
	return true
}

// InsertAfter adds an item after an existing one, reporting whether the
// existing item was found.
func (m *Menu) InsertAfter(after, item *MenuItem) bool {
	if !m.itembox.InsertAfter(after, item, AlignFill, false) {
		return false
	}
	item.setParentMenu(m)
	return true
}

// RemoveItem removes an item from the menu.
func (m *Menu) RemoveItem(item *MenuItem) {
	m.itembox.RemoveItem(item)
	item.setParentMenu(nil)
}

// Show opens the menu at the given position, on top of everything else,
// and captures the mouse so any outside click can close it.
func (m *Menu) Show(x, y int) {
	m.mu.Lock()
	m.x = x
	m.y = y
	m.child = nil
	m.mu.Unlock()

	m.ui.AddTopLevelElement(m)

	w, h := m.ui.Size()
	m.ui.SetMouseCapture(m, 0, 0, Rect{Width: w, Height: h})
}

// Hide closes the menu.
func (m *Menu) Hide() {
	m.ui.ClearMouseCapture()
	m.ui.RemoveTopLevelElement(m)
}

// BackgroundColor returns the menu background color.
func (m *Menu) BackgroundColor() Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bg
}

// SetBackgroundColor sets the menu background color.
func (m *Menu) SetBackgroundColor(color Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bg = color
}

func (m *Menu) PreferredWidth() int { return m.itembox.PreferredWidth() + 2 }

func (m *Menu) PreferredHeight() int { return m.itembox.PreferredHeight() + 2 }

func (m *Menu) Draw(offsetX, offsetY int, frame Frame) {
	boxw := m.itembox.PreferredWidth()
	boxh := m.itembox.PreferredHeight()
	m.itembox.SetWidth(boxw)
	m.itembox.SetHeight(boxh)
	m.itembox.SetX(1)
	m.itembox.SetY(1)

	m.mu.Lock()
	m.width = boxw + 2
	m.height = boxh + 2
	x := offsetX + m.x
	y := offsetY + m.y
	w := m.width
	h := m.height
	bg := m.bg
	border := m.border
	parent := m.parent
	child := m.child
	m.mu.Unlock()

	frame.DrawRect(x, y, w, h, bg)

	frame.DrawRect(x, y, 1, h, border)
	frame.DrawRect(x+w-1, y, 1, h, border)
	frame.DrawRect(x, y, w, 1, border)
	frame.DrawRect(x, y+h-1, w, 1, border)

	if parent == nil {
		m.ui.AddInputElement(m, offsetX, offsetY, frame.Scissor())
	}

	m.itembox.Draw(x, y, frame)

	// Submenus position themselves absolutely when opened.
	if child != nil {
		child.Draw(0, 0, frame)
	}
}

// ProcessMouseEvent only reacts to button presses, and only to close the
// menu when one lands outside it. The root menu holds mouse capture, so it
// sees every press first; returning false lets the press continue to the
// items. Whether a press was inside is resolved by recursing through the
// open submenu chain.
func (m *Menu) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	if ev.Kind != input.EventMouseButton || !ev.Down {
		return false
	}

	m.mu.Lock()
	left := offsetX + m.x
	top := offsetY + m.y
	w := m.width
	h := m.height
	parent := m.parent
	child := m.child
	m.mu.Unlock()

	over := ev.X >= left && ev.X <= left+w && ev.Y >= top && ev.Y <= top+h

	// A submenu reports a hit on itself up to the root.
	if parent != nil && over {
		return true
	}
	if parent != nil && child != nil {
		return child.ProcessMouseEvent(offsetX, offsetY, ev)
	}

	// At the root a hit anywhere down the chain means the press belongs to
	// an item, not the outside.
	if parent == nil && child != nil {
		if child.ProcessMouseEvent(offsetX, offsetY, ev) {
			return false
		}
	}

	if !over && parent == nil {
		m.ui.ClearMouseCapture()
		m.ui.RemoveTopLevelElement(m)
	}

	return false
}

func (m *Menu) setOpenChild(child *Menu) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.child = child
}

func (m *Menu) setParent(parent *Menu) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parent = parent
}

// MenuItem is one row of a Menu: an optional icon, a content element, and a
// chevron when the item opens a submenu. Items consume every event they
// receive; disabled items stay inert but still swallow events so clicks
// cannot fall through a menu.
type MenuItem struct {
	base

	ui *Ui

	hoverColor Color

	enabled bool
	hover   bool

	iconSize int
	postSize int

	iconText  string
	iconColor Color

	parentMenu *Menu
	childMenu  *Menu

	element Element

	handlers handlerSet
}

// NewMenuItem builds an empty, enabled menu item.
func NewMenuItem(u *Ui) *MenuItem {
	return &MenuItem{
		ui:         u,
		hoverColor: Color(u.Settings().MustColor("overlay.ui.colors.menuItemHover")),
		enabled:    true,
		iconSize:   u.IconFont().LineSpacing(),
		postSize:   20,
		iconColor:  Color(0xFFFFFFFF),
	}
}

// SetElement sets the item's content.
func (mi *MenuItem) SetElement(el Element) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.element = el
}

// Element returns the item's content.
func (mi *MenuItem) Element() Element {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	return mi.element
}

// SetIcon sets the glyph drawn in the item's icon column, usually resolved
// through Ui.IconCodepoint.
func (mi *MenuItem) SetIcon(text string) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.iconText = text
}

// SetIconColor sets the icon glyph color.
func (mi *MenuItem) SetIconColor(color Color) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.iconColor = color
}

// Enabled reports whether the item reacts to the mouse.
func (mi *MenuItem) Enabled() bool {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	return mi.enabled
}

// SetEnabled controls whether the item reacts to the mouse.
func (mi *MenuItem) SetEnabled(enabled bool) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.enabled = enabled
}

// SetSubmenu attaches the menu opened by hovering this item.
func (mi *MenuItem) SetSubmenu(menu *Menu) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.childMenu = menu
}

// Submenu returns the menu opened by hovering this item.
func (mi *MenuItem) Submenu() *Menu {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	return mi.childMenu
}

// AddEventHandler subscribes a script target to the named events. With no
// names the target receives every event.
func (mi *MenuItem) AddEventHandler(target int64, names ...string) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.handlers.add(target, names...)
}

// RemoveEventHandler drops every subscription the target holds.
func (mi *MenuItem) RemoveEventHandler(target int64) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.handlers.remove(target)
}

func (mi *MenuItem) setParentMenu(menu *Menu) {
	mi.mu.Lock()
	defer mi.mu.Unlock()
	mi.parentMenu = menu
}

func (mi *MenuItem) PreferredWidth() int {
	mi.mu.Lock()
	el := mi.element
	iconSize := mi.iconSize
	postSize := mi.postSize
	mi.mu.Unlock()

	var elw int
	if el != nil {
		elw = el.PreferredWidth()
	}
	return elw + 10 + iconSize + postSize
}

func (mi *MenuItem) PreferredHeight() int {
	mi.mu.Lock()
	el := mi.element
	iconSize := mi.iconSize
	mi.mu.Unlock()

	if el == nil {
		return iconSize + 4
	}

	eh := el.PreferredHeight() + 4
	_, isSeparator := el.(*Separator)
	if eh > iconSize || isSeparator {
		return eh
	}
	return iconSize + 4
}

func (mi *MenuItem) Draw(offsetX, offsetY int, frame Frame) {
	mi.mu.Lock()
	el := mi.element
	mi.mu.Unlock()

	if el == nil {
		return
	}

	eleh := el.PreferredHeight()
	el.SetHeight(eleh)

	mi.mu.Lock()
	x := offsetX + mi.x
	y := offsetY + mi.y
	w := mi.width
	h := mi.height
	hover := mi.hover
	hoverColor := mi.hoverColor
	iconSize := mi.iconSize
	postSize := mi.postSize
	iconText := mi.iconText
	iconColor := mi.iconColor
	hasSubmenu := mi.childMenu != nil
	mi.mu.Unlock()

	el.SetWidth(w - 10 - iconSize - postSize)

	if !frame.PushScissor(x, y, x+w, y+h) {
		return
	}

	if hover {
		frame.DrawRect(x, y, w, h, hoverColor)
	}

	mi.ui.AddInputElement(mi, offsetX, offsetY, frame.Scissor())

	if iconText != "" {
		mi.ui.IconFont().RenderText(frame, x+5, y+2, iconText, iconColor)
	}

	eleY := y + int(float64(h)/2.0) - int(float64(eleh)/2.0)
	el.Draw(x+5+iconSize, eleY, frame)

	if hasSubmenu {
		mi.ui.IconFont().RenderText(frame, x+w-postSize, y+2, submenuChevron, Color(0xFFFFFFFF))
	}

	frame.PopScissor()
}

func (mi *MenuItem) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	mi.mu.Lock()
	enabled := mi.enabled
	mi.mu.Unlock()

	if !enabled {
		return true
	}

	switch ev.Kind {
	case input.EventMouseEnter:
		mi.mu.Lock()
		mi.hover = true
		x := mi.x
		y := mi.y
		w := mi.width
		parent := mi.parentMenu
		child := mi.childMenu
		mi.mu.Unlock()

		mi.queueEvent("enter")

		// Hovering an item with a submenu opens it beside the item;
		// hovering any other item closes whatever submenu was open.
		if parent != nil {
			if child != nil {
				parent.setOpenChild(child)
				child.SetX(offsetX + x + w - 10)
				child.SetY(offsetY + y)
				child.setParent(parent)
				child.setOpenChild(nil)
			} else {
				parent.setOpenChild(nil)
			}
		}

	case input.EventMouseLeave:
		mi.mu.Lock()
		mi.hover = false
		mi.mu.Unlock()
		mi.queueEvent("leave")

	case input.EventMouseButton:
		if !ev.Down {
			mi.queueEvent("click-" + ev.Button.String())
		}
	}

	return true
}

func (mi *MenuItem) queueEvent(name string) {
	mi.mu.Lock()
	targets := mi.handlers.snapshot(name)
	mi.mu.Unlock()
	emit(mi.ui.Queue(), mi, targets, name)
}
