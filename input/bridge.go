package input

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrUnsupported is returned by Hooks.Run on platforms without low-level
// input hook support.
var ErrUnsupported = errors.New("input: OS input hooks are not supported on this platform")

// SupportedLayout is the keyboard layout identifier character resolution is
// built for, US English.
const SupportedLayout = "00000409"

// Dispatcher routes normalized input events into the UI. It reports whether
// the event was consumed.
type Dispatcher interface {
	ProcessMouseEvent(ev *MouseEvent) bool
	ProcessKeyboardEvent(ev *KeyboardEvent) bool
}

// EventQueue receives the canonical string form of every keystroke for
// script-level keybind handling.
type EventQueue interface {
	QueueEvent(name string, data any)
}

// Decision is the bridge's verdict on a raw OS message.
type Decision uint8

const (
	// Forward passes the message to the next OS hook untouched.
	Forward Decision = iota
	// Swallow consumes the message, hiding it from the rest of the system.
	Swallow
)

// RawMouse carries the parts of a raw mouse message that are cheap to
// extract without OS calls: the variant, button identity and edge. The
// suppression policy decides on these alone; full normalization may need
// OS calls and stays behind the normalize callback so suppressed messages
// never pay for it.
type RawMouse struct {
	Kind   MouseEventKind
	Button MouseButton
	Down   bool
}

// Bridge applies the drag suppression policy between the OS hook layer and
// the UI dispatcher. It is constructed with explicit collaborators; there is
// no package-level input state.
type Bridge struct {
	mu            sync.Mutex
	suppressLeft  bool
	suppressRight bool

	dispatcher Dispatcher
	queue      EventQueue
}

// NewBridge returns a bridge that feeds the dispatcher and queues canonical
// keystroke strings to queue. queue may be nil.
func NewBridge(dispatcher Dispatcher, queue EventQueue) *Bridge {
	return &Bridge{dispatcher: dispatcher, queue: queue}
}

// HandleMouse decides a raw mouse message.
//
// While a button's suppression flag is set, everything up to and including
// that button's release is forwarded untouched, so a press the UI declined
// hides the whole drag sequence from it. Otherwise the message is
// normalized and dispatched; consumed messages are swallowed except moves,
// which always reach the OS so the cursor keeps tracking. A left or right
// button-down the UI did not consume sets that button's suppression flag.
func (b *Bridge) HandleMouse(raw RawMouse, normalize func() *MouseEvent) Decision {
	b.mu.Lock()
	if raw.Kind == EventMouseButton && !raw.Down {
		switch {
		case raw.Button == MouseButtonLeft && b.suppressLeft:
			b.suppressLeft = false
			b.mu.Unlock()
			return Forward
		case raw.Button == MouseButtonRight && b.suppressRight:
			b.suppressRight = false
			b.mu.Unlock()
			return Forward
		}
	}
	if b.suppressLeft || b.suppressRight {
		b.mu.Unlock()
		return Forward
	}
	// The OS can invoke the hook twice for one logical message. The lock
	// must not be held across dispatch or the forward path.
	b.mu.Unlock()

	ev := normalize()
	consumed := b.dispatcher.ProcessMouseEvent(ev)
	ev.Release()

	if consumed {
		if raw.Kind == EventMouseMove {
			return Forward
		}
		return Swallow
	}

	if raw.Kind == EventMouseButton && raw.Down {
		b.mu.Lock()
		switch raw.Button {
		case MouseButtonLeft:
			b.suppressLeft = true
		case MouseButtonRight:
			b.suppressRight = true
		}
		b.mu.Unlock()
	}
	return Forward
}

// HandleKeyboard dispatches a normalized keyboard event and queues its
// canonical string form to the script event queue, consumed or not. A
// consumed keystroke is swallowed unless it is a modifier or lock key;
// those always pass through so the OS keeps correct modifier state.
func (b *Bridge) HandleKeyboard(ev *KeyboardEvent) Decision {
	consumed := b.dispatcher.ProcessKeyboardEvent(ev)

	if b.queue != nil {
		b.queue.QueueEvent(ev.String(), ev)
	}

	if consumed && !ev.VKey.IsModifierOrLock() {
		return Swallow
	}
	return Forward
}

// Suppressed reports whether the button's drag suppression flag is set.
// Only the left and right buttons participate in suppression.
func (b *Bridge) Suppressed(button MouseButton) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch button {
	case MouseButtonLeft:
		return b.suppressLeft
	case MouseButtonRight:
		return b.suppressRight
	}
	return false
}

// CheckLayout logs a warning when the active keyboard layout is not the one
// character resolution supports. The bridge still runs; resolved characters
// will not match the user's layout.
func (b *Bridge) CheckLayout(layout string) {
	if layout != SupportedLayout {
		slog.Warn("input: unsupported keyboard layout, character resolution will not match",
			"layout", layout, "supported", SupportedLayout)
	}
}
