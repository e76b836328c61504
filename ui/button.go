package ui

import (
	"github.com/agiangrant/overlay/input"
)

// Button is a clickable widget drawing a border and state-dependent
// background around an optional child. In checkbox mode a click inside the
// button flips a persistent toggle state, shown with the border color.
//
// Script targets subscribe through AddEventHandler and receive "enter",
// "leave", "click-<button>", "toggle-on" and "toggle-off" events.
type Button struct {
	base

	ui *Ui

	child     Element
	minWidth  int
	minHeight int

	isCheckbox bool
	toggle     bool

	bg          Color
	bgHover     Color
	bgHighlight Color
	border      Color
	borderWidth int

	highlight bool
	hover     bool

	lastScissor Rect

	handlers handlerSet
}

// NewButton builds a button styled from the ui's settings.
func NewButton(u *Ui) *Button {
	st := u.Settings()
	return &Button{
		ui:          u,
		bg:          Color(st.MustColor("overlay.ui.colors.buttonBG")),
		bgHover:     Color(st.MustColor("overlay.ui.colors.buttonBGHover")),
		bgHighlight: Color(st.MustColor("overlay.ui.colors.buttonBGHighlight")),
		border:      Color(st.MustColor("overlay.ui.colors.buttonBorder")),
		borderWidth: 1,
	}
}

// SetChild sets the element drawn inside the border.
func (b *Button) SetChild(child Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.child = child
}

// SetCheckbox turns checkbox behavior on or off.
func (b *Button) SetCheckbox(checkbox bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isCheckbox = checkbox
}

// ToggleState reports the checkbox toggle state.
func (b *Button) ToggleState() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.toggle
}

// SetToggleState sets the checkbox toggle state without queuing events.
func (b *Button) SetToggleState(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.toggle = on
}

// SetMinWidth sets the preferred width used when the button has no child.
func (b *Button) SetMinWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.minWidth = width
}

// SetMinHeight sets the preferred height used when the button has no child.
func (b *Button) SetMinHeight(height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.minHeight = height
}

// AddEventHandler subscribes a script target to the named events. With no
// names the target receives every event.
func (b *Button) AddEventHandler(target int64, names ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers.add(target, names...)
}

// RemoveEventHandler drops every subscription the target holds.
func (b *Button) RemoveEventHandler(target int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers.remove(target)
}

// BackgroundColor returns the idle face color.
func (b *Button) BackgroundColor() Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bg
}

// SetBackgroundColor sets the idle face color.
func (b *Button) SetBackgroundColor(color Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bg = color
}

func (b *Button) PreferredWidth() int {
	b.mu.Lock()
	child := b.child
	bw := b.borderWidth
	min := b.minWidth
	b.mu.Unlock()

	if child != nil {
		return child.PreferredWidth() + bw*2
	}
	return min
}

func (b *Button) PreferredHeight() int {
	b.mu.Lock()
	child := b.child
	bw := b.borderWidth
	min := b.minHeight
	b.mu.Unlock()

	if child != nil {
		return child.PreferredHeight() + bw*2
	}
	return min
}

func (b *Button) Draw(offsetX, offsetY int, frame Frame) {
	b.mu.Lock()
	x := offsetX + b.x
	y := offsetY + b.y
	w := b.width
	h := b.height
	bw := b.borderWidth
	child := b.child
	border := b.border

	var bg Color
	switch {
	case b.highlight:
		bg = b.bgHighlight
	case b.hover:
		bg = b.bgHover
	case b.toggle:
		bg = b.border
	default:
		bg = b.bg
	}
	b.mu.Unlock()

	if child != nil {
		child.SetWidth(w - bw*2)
		child.SetHeight(h - bw*2)
	}

	if bw > 0 {
		frame.DrawRect(x, y, w, bw, border)
		frame.DrawRect(x, y+h-bw, w, bw, border)
		frame.DrawRect(x, y, bw, h, border)
		frame.DrawRect(x+w-bw, y, bw, h, border)
	}

	frame.DrawRect(x+bw, y+bw, w-bw*2, h-bw*2, bg)

	scissor := frame.Scissor()
	b.mu.Lock()
	b.lastScissor = scissor
	b.mu.Unlock()

	b.ui.AddInputElement(b, offsetX, offsetY, scissor)

	if child != nil {
		child.Draw(x+bw, y+bw, frame)
	}
}

func (b *Button) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	switch ev.Kind {
	case input.EventMouseEnter:
		b.mu.Lock()
		b.hover = true
		b.mu.Unlock()
		b.queueEvent("enter")
		return true

	case input.EventMouseLeave:
		b.mu.Lock()
		b.hover = false
		b.mu.Unlock()
		b.queueEvent("leave")
		return true

	case input.EventMouseButton:
		if ev.Down {
			b.mu.Lock()
			b.highlight = true
			scissor := b.lastScissor
			b.mu.Unlock()
			b.ui.SetMouseCapture(b, offsetX, offsetY, scissor)
			return true
		}

		// Capture routed this release here even if the pointer moved off
		// the button, so only an in-bounds release counts as a click.
		b.mu.Lock()
		left := b.x + offsetX
		top := b.y + offsetY
		w := b.width
		h := b.height
		checkbox := b.isCheckbox
		b.highlight = false
		b.mu.Unlock()

		b.ui.ClearMouseCapture()

		if ev.X >= left && ev.X <= left+w && ev.Y >= top && ev.Y <= top+h {
			b.queueEvent("click-" + ev.Button.String())

			if checkbox {
				b.mu.Lock()
				b.toggle = !b.toggle
				on := b.toggle
				b.mu.Unlock()
				if on {
					b.queueEvent("toggle-on")
				} else {
					b.queueEvent("toggle-off")
				}
			}
		}
		return true
	}

	return false
}

func (b *Button) queueEvent(name string) {
	b.mu.Lock()
	targets := b.handlers.snapshot(name)
	b.mu.Unlock()
	emit(b.ui.Queue(), b, targets, name)
}
