// Package ui is a retained-mode widget toolkit drawn over a host
// application's frame. Widgets form a tree of Elements rooted in top-level
// windows and menus owned by a Ui, which routes normalized OS input to them
// through a one-frame-lagged hit-test registry.
package ui

import (
	"log/slog"
	"sync"

	"github.com/agiangrant/overlay/input"
)

// Element is a drawable, hit-testable widget node.
//
// Draw receives the absolute position of the parent's coordinate frame and
// adds the element's own X/Y; layout containers position children by passing
// computed offsets rather than mutating child coordinates. ProcessMouseEvent
// receives the same offsets the element's draw registered with.
//
// Position and size are the element's assigned geometry, set top-down by its
// parent before draw. Preferred sizes are computed bottom-up from content
// and must not depend on assigned geometry.
type Element interface {
	Draw(offsetX, offsetY int, frame Frame)

	ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool
	ProcessKeyboardEvent(ev *input.KeyboardEvent) bool
	OnLostFocus()

	PreferredWidth() int
	PreferredHeight() int

	X() int
	SetX(x int)
	Y() int
	SetY(y int)
	Width() int
	SetWidth(width int)
	Height() int
	SetHeight(height int)

	BackgroundColor() Color
	SetBackgroundColor(color Color)
}

// Orientation selects a layout direction.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// OrientationFromString parses "horizontal" or "vertical". Unknown values
// log a warning and fall back to horizontal.
func OrientationFromString(s string) Orientation {
	switch s {
	case "horizontal":
		return Horizontal
	case "vertical":
		return Vertical
	}
	slog.Warn("ui: unknown orientation, using horizontal", "orientation", s)
	return Horizontal
}

// Alignment positions an element within the space a container gives it.
// Fill additionally stretches the element to that space.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
	AlignFill
)

// AlignmentFromString parses "start", "middle", "end" or "fill". Unknown
// values log a warning and fall back to start.
func AlignmentFromString(s string) Alignment {
	switch s {
	case "start":
		return AlignStart
	case "middle":
		return AlignMiddle
	case "end":
		return AlignEnd
	case "fill":
		return AlignFill
	}
	slog.Warn("ui: unknown alignment, using start", "alignment", s)
	return AlignStart
}

// ScriptQueue receives widget events for script-side handlers.
type ScriptQueue interface {
	QueueEvent(name string, data any)
	QueueTargetedEvent(target int64, data any)
}

// KeybindResolver is the fallback keyboard handler consulted when no
// element has focus or the focused element declines an event.
type KeybindResolver interface {
	ProcessKeybinds(ev *input.KeyboardEvent) bool
}

// WidgetEvent is the payload delivered with targeted widget events.
type WidgetEvent struct {
	Name   string
	Source Element
}

// base carries the state and behavior every widget shares: one mutex
// guarding assigned geometry and background color, plus inert input
// handling. Widgets embed it and hold its mutex only around their own
// state, never across a call into another element or the Ui.
type base struct {
	mu sync.Mutex

	x, y          int
	width, height int
	background    Color
}

func (b *base) X() int { b.mu.Lock(); defer b.mu.Unlock(); return b.x }

func (b *base) SetX(x int) { b.mu.Lock(); defer b.mu.Unlock(); b.x = x }

func (b *base) Y() int { b.mu.Lock(); defer b.mu.Unlock(); return b.y }

func (b *base) SetY(y int) { b.mu.Lock(); defer b.mu.Unlock(); b.y = y }

func (b *base) Width() int { b.mu.Lock(); defer b.mu.Unlock(); return b.width }

func (b *base) SetWidth(width int) { b.mu.Lock(); defer b.mu.Unlock(); b.width = width }

func (b *base) Height() int { b.mu.Lock(); defer b.mu.Unlock(); return b.height }

func (b *base) SetHeight(height int) { b.mu.Lock(); defer b.mu.Unlock(); b.height = height }

func (b *base) BackgroundColor() Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.background
}

func (b *base) SetBackgroundColor(color Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.background = color
}

func (b *base) ProcessMouseEvent(offsetX, offsetY int, ev *input.MouseEvent) bool {
	return false
}

func (b *base) ProcessKeyboardEvent(ev *input.KeyboardEvent) bool {
	return false
}

func (b *base) OnLostFocus() {}

// geometry returns the assigned position and size in one lock acquisition.
func (b *base) geometry() (x, y, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.x, b.y, b.width, b.height
}

// handlerSet tracks script targets registered for a widget's events.
// A target registered with no names receives every event.
type handlerSet struct {
	targets []eventTarget
}

type eventTarget struct {
	id    int64
	names map[string]bool
}

func (h *handlerSet) add(id int64, names ...string) {
	var set map[string]bool
	if len(names) > 0 {
		set = make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
	}
	h.targets = append(h.targets, eventTarget{id: id, names: set})
}

func (h *handlerSet) remove(id int64) {
	kept := h.targets[:0]
	for _, t := range h.targets {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	h.targets = kept
}

// snapshot returns the target ids subscribed to name.
func (h *handlerSet) snapshot(name string) []int64 {
	var ids []int64
	for _, t := range h.targets {
		if t.names == nil || t.names[name] {
			ids = append(ids, t.id)
		}
	}
	return ids
}

// emit queues a targeted event to every subscribed target.
func emit(q ScriptQueue, src Element, targets []int64, name string) {
	if q == nil {
		return
	}
	for _, id := range targets {
		q.QueueTargetedEvent(id, WidgetEvent{Name: name, Source: src})
	}
}
