package ui

import (
	"testing"

	"github.com/agiangrant/overlay/input"
)

func typeString(e *Entry, text string) {
	for _, r := range text {
		e.ProcessKeyboardEvent(&input.KeyboardEvent{
			VKey:  input.VirtualKey(r),
			Down:  true,
			Chars: string(r),
		})
	}
}

func pressKey(e *Entry, vkey input.VirtualKey) {
	e.ProcessKeyboardEvent(&input.KeyboardEvent{VKey: vkey, Down: true})
}

func TestEntryCaretMath(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})

	typeString(e, "hello")

	if got := e.Text(); got != "hello" {
		t.Fatalf("text = %q, want %q", got, "hello")
	}
	if got := e.CaretPos(); got != 5 {
		t.Errorf("caret position = %d, want 5", got)
	}
	if e.caretX != 50 {
		t.Errorf("caret pixel offset = %d, want 50", e.caretX)
	}

	pressKey(e, input.VKeyBack)

	if got := e.Text(); got != "hell" {
		t.Errorf("text after backspace = %q, want %q", got, "hell")
	}
	if got := e.CaretPos(); got != 4 {
		t.Errorf("caret position after backspace = %d, want 4", got)
	}
	if e.caretX != 40 {
		t.Errorf("caret pixel offset after backspace = %d, want 40", e.caretX)
	}
}

func TestEntryEditing(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(e *Entry)
		wantText  string
		wantCaret int
	}{
		{
			name:      "insert mid text",
			setup:     func(e *Entry) { typeString(e, "ab"); pressKey(e, input.VKeyLeft); typeString(e, "X") },
			wantText:  "aXb",
			wantCaret: 2,
		},
		{
			name:      "backspace at start is a no-op",
			setup:     func(e *Entry) { typeString(e, "ab"); pressKey(e, input.VKeyLeft); pressKey(e, input.VKeyLeft); pressKey(e, input.VKeyBack) },
			wantText:  "ab",
			wantCaret: 0,
		},
		{
			name:      "delete removes at caret",
			setup:     func(e *Entry) { typeString(e, "abc"); pressKey(e, input.VKeyLeft); pressKey(e, input.VKeyLeft); pressKey(e, input.VKeyDelete) },
			wantText:  "ac",
			wantCaret: 1,
		},
		{
			name:      "delete at end is a no-op",
			setup:     func(e *Entry) { typeString(e, "ab"); pressKey(e, input.VKeyDelete) },
			wantText:  "ab",
			wantCaret: 2,
		},
		{
			name:      "left stops at zero",
			setup:     func(e *Entry) { typeString(e, "a"); pressKey(e, input.VKeyLeft); pressKey(e, input.VKeyLeft) },
			wantText:  "a",
			wantCaret: 0,
		},
		{
			name:      "right clamps to length",
			setup:     func(e *Entry) { typeString(e, "ab"); pressKey(e, input.VKeyRight); pressKey(e, input.VKeyRight) },
			wantText:  "ab",
			wantCaret: 2,
		},
		{
			name:      "alt modified keys do not erase",
			setup:     func(e *Entry) { typeString(e, "ab"); e.ProcessKeyboardEvent(&input.KeyboardEvent{VKey: input.VKeyBack, Down: true, Alt: true}) },
			wantText:  "ab",
			wantCaret: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUI(t, &recordQueue{}, nil)
			e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})

			tt.setup(e)

			if got := e.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if got := e.CaretPos(); got != tt.wantCaret {
				t.Errorf("caret = %d, want %d", got, tt.wantCaret)
			}
		})
	}
}

func TestEntryAlwaysConsumesKeys(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})

	// Even a keystroke the entry has no handling for is consumed, so
	// nothing leaks past a focused entry to the keybind layer.
	if !e.ProcessKeyboardEvent(&input.KeyboardEvent{VKey: input.VKeyF5, Down: true}) {
		t.Error("entry did not consume an unhandled keystroke")
	}
}

func TestEntryKeystrokesReachSubscribers(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})
	e.AddEventHandler(3)

	e.ProcessKeyboardEvent(&input.KeyboardEvent{VKey: input.VirtualKey('A'), Down: true, Chars: "a"})

	names := queue.targetedNames()
	if len(names) != 1 || names[0] != "a-down" {
		t.Errorf("targeted events = %v, want [a-down]", names)
	}
}

func TestEntryFocusOnClick(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})
	e.AddEventHandler(1)
	e.SetWidth(50)
	e.SetHeight(16)

	down := input.NewMouseButton(5, 5, input.MouseButtonLeft, true)
	e.ProcessMouseEvent(0, 0, down)
	down.Release()

	if !u.ElementIsFocus(e) {
		t.Fatal("left click did not focus the entry")
	}

	up := input.NewMouseButton(5, 5, input.MouseButtonLeft, false)
	e.ProcessMouseEvent(0, 0, up)
	up.Release()

	u.SetFocusElement(nil)

	want := []string{"focus", "click-left", "unfocus"}
	names := queue.targetedNames()
	if len(names) != len(want) {
		t.Fatalf("targeted events = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("targeted events = %v, want %v", names, want)
		}
	}
}

func TestEntryReadOnlyRejectsFocus(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})
	e.SetReadOnly(true)

	down := input.NewMouseButton(5, 5, input.MouseButtonLeft, true)
	e.ProcessMouseEvent(0, 0, down)
	down.Release()

	if u.ElementIsFocus(e) {
		t.Error("read-only entry took focus")
	}
}

func TestEntrySetTextClampsCaret(t *testing.T) {
	u := newTestUI(t, &recordQueue{}, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})

	typeString(e, "hello")
	e.SetText("hi")

	if got := e.CaretPos(); got != 2 {
		t.Errorf("caret after SetText = %d, want 2", got)
	}
	if e.caretX != 20 {
		t.Errorf("caret pixel offset after SetText = %d, want 20", e.caretX)
	}
}

func TestEntryWheelEvents(t *testing.T) {
	queue := &recordQueue{}
	u := newTestUI(t, queue, nil)
	e := NewEntry(u, &fakeFont{charWidth: 10, spacing: 10})
	e.AddEventHandler(1, "wheel-up", "wheel-down")

	wheel := input.NewMouseWheel(5, 5, 2, false)
	e.ProcessMouseEvent(0, 0, wheel)
	wheel.Release()

	names := queue.targetedNames()
	if len(names) != 2 || names[0] != "wheel-up" || names[1] != "wheel-up" {
		t.Errorf("targeted events = %v, want [wheel-up wheel-up]", names)
	}
}
