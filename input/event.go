// Package input normalizes raw OS input into the event model consumed by the
// UI dispatcher and applies the capture bridge's drag suppression policy.
package input

import (
	"sync"
)

// MouseEventKind identifies the variant carried by a MouseEvent.
type MouseEventKind uint8

const (
	EventMouseMove MouseEventKind = iota + 1
	EventMouseButton
	EventMouseEnter
	EventMouseLeave
	EventMouseWheel
)

// MouseButton identifies which physical button a button event refers to.
type MouseButton uint8

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonX1:
		return "x1"
	case MouseButtonX2:
		return "x2"
	}
	return "unknown"
}

// MouseEvent is a normalized mouse message in client coordinates.
//
// Move, Enter and Leave events carry only a position. Button events add
// Button and Down. Wheel events add Value, the signed notch count with
// positive values meaning up or away from the user, and Horizontal.
type MouseEvent struct {
	Kind MouseEventKind

	X, Y int

	Button MouseButton
	Down   bool

	Value      int
	Horizontal bool
}

// mouseEventPool recycles MouseEvent allocations. Enter/leave synthesis
// creates two extra events per hover transition at input-callback rate.
var mouseEventPool = sync.Pool{
	New: func() any { return &MouseEvent{} },
}

func acquireMouseEvent() *MouseEvent {
	ev := mouseEventPool.Get().(*MouseEvent)
	*ev = MouseEvent{}
	return ev
}

// NewMouseMove returns a pooled move event. Call Release when done.
func NewMouseMove(x, y int) *MouseEvent {
	ev := acquireMouseEvent()
	ev.Kind = EventMouseMove
	ev.X, ev.Y = x, y
	return ev
}

// NewMouseButton returns a pooled button event. Call Release when done.
func NewMouseButton(x, y int, button MouseButton, down bool) *MouseEvent {
	ev := acquireMouseEvent()
	ev.Kind = EventMouseButton
	ev.X, ev.Y = x, y
	ev.Button = button
	ev.Down = down
	return ev
}

// NewMouseWheel returns a pooled wheel event. Call Release when done.
func NewMouseWheel(x, y, value int, horizontal bool) *MouseEvent {
	ev := acquireMouseEvent()
	ev.Kind = EventMouseWheel
	ev.X, ev.Y = x, y
	ev.Value = value
	ev.Horizontal = horizontal
	return ev
}

// AsEnter returns a pooled copy of the event with the kind replaced by
// EventMouseEnter. The position is preserved.
func (e *MouseEvent) AsEnter() *MouseEvent {
	ev := acquireMouseEvent()
	*ev = *e
	ev.Kind = EventMouseEnter
	return ev
}

// AsLeave returns a pooled copy of the event with the kind replaced by
// EventMouseLeave. The position is preserved.
func (e *MouseEvent) AsLeave() *MouseEvent {
	ev := acquireMouseEvent()
	*ev = *e
	ev.Kind = EventMouseLeave
	return ev
}

// Release returns the event to the pool. The event must not be used after.
func (e *MouseEvent) Release() {
	mouseEventPool.Put(e)
}

// KeyboardEvent is a normalized keyboard message.
//
// Chars holds the printable text the keystroke resolves to, or "" when the
// key produces none. Resolution is only correct for the US layout.
// KeyboardEvents are not pooled: the scripting queue retains them as event
// payloads beyond the hook callback's lifetime.
type KeyboardEvent struct {
	VKey VirtualKey
	Down bool

	Alt   bool
	Shift bool
	Ctrl  bool
	Caps  bool

	Chars string
}

// Name returns the canonical modifier-prefixed key name, for example
// "ctrl-shift-l". Keybind registrations match against this form.
func (e *KeyboardEvent) Name() string {
	n := ""
	if e.Ctrl {
		n += "ctrl-"
	}
	if e.Alt {
		n += "alt-"
	}
	if e.Shift {
		n += "shift-"
	}
	return n + e.VKey.Name()
}

// String returns the canonical event form queued to the scripting layer,
// Name suffixed with "-down" or "-up".
func (e *KeyboardEvent) String() string {
	if e.Down {
		return e.Name() + "-down"
	}
	return e.Name() + "-up"
}

// wheelDelta is the raw wheel unit reported per notch by the OS.
const wheelDelta = 120

// WheelNotches converts a raw wheel delta into signed notch counts.
func WheelNotches(raw int16) int {
	return int(raw) / wheelDelta
}
