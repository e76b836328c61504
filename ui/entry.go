package ui

import (
	"github.com/agiangrant/overlay/input"
)

// Entry is a single-line text input. A left click focuses it, keystrokes
// edit at a caret, and an optional hint shows while the text is empty.
// The caret position counts characters, not bytes.
//
// Subscribed script targets receive "focus", "unfocus", "enter", "leave",
// "click-<button>", "wheel-<direction>" and the canonical name of every
// keystroke delivered while focused.
type Entry struct {
	base

	ui   *Ui
	font Font

	text string
	hint string

	prefWidth  int
	prefHeight int

	readonly bool

	caretPos int
	caretX   int

	fg          Color
	hintColor   Color
	bg          Color
	border      Color
	borderFocus Color

	handlers handlerSet
}

// NewEntry builds an entry rendered with the given font and styled from
// the ui's settings.
func NewEntry(u *Ui, font Font) *Entry {
	st := u.Settings()
	return &Entry{
		ui:          u,
		font:        font,
		prefWidth:   50,
		prefHeight:  font.LineSpacing() + 6,
		fg:          Color(st.MustColor("overlay.ui.colors.text")),
		hintColor:   Color(st.MustColor("overlay.ui.colors.entryHint")),
		bg:          Color(st.MustColor("overlay.ui.colors.entryBG")),
		border:      Color(st.MustColor("overlay.ui.colors.windowBorder")),
		borderFocus: Color(st.MustColor("overlay.ui.colors.windowBorderHighlight")),
	}
}

// Text returns the entry's current text.
func (e *Entry) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// SetText replaces the entry's text. The caret clamps to the new length.
func (e *Entry) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
	e.updateCaretX()
}

// Hint returns the placeholder text shown while the entry is empty.
func (e *Entry) Hint() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hint
}

// SetHint sets the placeholder text shown while the entry is empty.
func (e *Entry) SetHint(hint string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hint = hint
}

// ReadOnly reports whether the entry rejects focus and editing.
func (e *Entry) ReadOnly() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readonly
}

// SetReadOnly controls whether the entry rejects focus and editing.
func (e *Entry) SetReadOnly(readonly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readonly = readonly
}

// CaretPos returns the caret's character position.
func (e *Entry) CaretPos() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caretPos
}

// AddEventHandler subscribes a script target to the named events. With no
// names the target receives every event.
func (e *Entry) AddEventHandler(target int64, names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.add(target, names...)
}

// RemoveEventHandler drops every subscription the target holds.
func (e *Entry) RemoveEventHandler(target int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.remove(target)
}

// BackgroundColor returns the field background color.
func (e *Entry) BackgroundColor() Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bg
}

// SetBackgroundColor sets the field background color.
func (e *Entry) SetBackgroundColor(color Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bg = color
}

func (e *Entry) PreferredWidth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prefWidth
}

func (e *Entry) PreferredHeight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prefHeight
}

func (e *Entry) Draw(offsetX, offsetY int, frame Frame) {
	isFocus := e.ui.ElementIsFocus(e)

	e.mu.Lock()
	x := offsetX + e.x
	y := offsetY + e.y
	w := e.width
	h := e.height
	text := e.text
	hint := e.hint
	font := e.font
	fg := e.fg
	hintColor := e.hintColor
	bg := e.bg
	readonly := e.readonly
	caretX := e.caretX

	border := e.border
	if isFocus {
		border = e.borderFocus
	}
	e.mu.Unlock()

	tx := x + 2
	ty := y + 3
	tw := w - 4
	th := h - 6

	frame.DrawRect(x, y, w, 1, border)
	frame.DrawRect(x, y+h-1, w, 1, border)
	frame.DrawRect(x, y, 1, h, border)
	frame.DrawRect(x+w-1, y, 1, h, border)

	frame.DrawRect(x+1, y+1, w-2, h-2, bg)

	if frame.PushScissor(tx, ty, tx+tw+1, ty+th+1) {
		if len(text) > 0 {
			font.RenderText(frame, tx, ty, text, fg)
		} else if hint != "" {
			font.RenderText(frame, tx, ty, hint, hintColor)
		}
		frame.PopScissor()
	}

	if !readonly && isFocus {
		frame.DrawRect(tx+caretX, ty, 2, th, fg)
	}

	e.ui.AddInputElement(e, offsetX, offsetY, frame.Scissor())
}

func (e *Entry) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	if ev.Kind == input.EventMouseButton && ev.Button == input.MouseButtonLeft && ev.Down {
		e.mu.Lock()
		readonly := e.readonly
		e.mu.Unlock()

		if !readonly && !e.ui.ElementIsFocus(e) {
			e.ui.SetFocusElement(e)
			e.queueEvent("focus")
		}
	}

	switch ev.Kind {
	case input.EventMouseEnter:
		e.queueEvent("enter")
	case input.EventMouseLeave:
		e.queueEvent("leave")
	case input.EventMouseButton:
		if !ev.Down {
			e.queueEvent("click-" + ev.Button.String())
		}
	case input.EventMouseWheel:
		var name string
		switch {
		case ev.Horizontal && ev.Value > 0:
			name = "wheel-right"
		case ev.Horizontal:
			name = "wheel-left"
		case ev.Value > 0:
			name = "wheel-up"
		default:
			name = "wheel-down"
		}
		n := ev.Value
		if n < 0 {
			n = -n
		}
		for i := 0; i < n; i++ {
			e.queueEvent(name)
		}
	default:
		return false
	}

	return true
}

// ProcessKeyboardEvent edits the text and always consumes the event, so
// keystrokes cannot leak past a focused entry. Every event is also
// forwarded to subscribed targets under its canonical name.
func (e *Entry) ProcessKeyboardEvent(ev *input.KeyboardEvent) bool {
	e.mu.Lock()

	if ev.Chars != "" {
		runes := []rune(e.text)
		if e.caretPos >= len(runes) {
			e.text += ev.Chars
		} else {
			e.text = string(runes[:e.caretPos]) + ev.Chars + string(runes[e.caretPos:])
		}
		e.caretPos++
		e.updateCaretX()
	}

	if ev.Down && ev.VKey == input.VKeyBack && !ev.Alt {
		runes := []rune(e.text)
		if len(runes) > 0 && e.caretPos > 0 {
			e.text = string(runes[:e.caretPos-1]) + string(runes[e.caretPos:])
			e.caretPos--
			e.updateCaretX()
		}
	}

	if ev.Down && ev.VKey == input.VKeyDelete && !ev.Alt {
		runes := []rune(e.text)
		if e.caretPos < len(runes) {
			e.text = string(runes[:e.caretPos]) + string(runes[e.caretPos+1:])
		}
	}

	if ev.Down && ev.VKey == input.VKeyLeft {
		if e.caretPos > 0 {
			e.caretPos--
			e.updateCaretX()
		}
	}

	if ev.Down && ev.VKey == input.VKeyRight {
		e.caretPos++
		e.updateCaretX()
	}

	targets := e.handlers.snapshot(ev.String())
	e.mu.Unlock()

	emit(e.ui.Queue(), e, targets, ev.String())

	return true
}

func (e *Entry) OnLostFocus() {
	e.queueEvent("unfocus")
}

// updateCaretX clamps the caret and recomputes its pixel position. Callers
// hold e.mu.
func (e *Entry) updateCaretX() {
	runes := []rune(e.text)
	if e.caretPos > len(runes) {
		e.caretPos = len(runes)
	}
	e.caretX = e.font.TextWidth(string(runes[:e.caretPos]))
}

func (e *Entry) queueEvent(name string) {
	e.mu.Lock()
	targets := e.handlers.snapshot(name)
	e.mu.Unlock()
	emit(e.ui.Queue(), e, targets, name)
}
