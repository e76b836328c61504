package ui

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/agiangrant/overlay/input"
	"github.com/agiangrant/overlay/settings"
)

// registryEntry records one element's participation in hit-testing: the
// element, the absolute offset it drew at, and the scissor in effect when
// it registered, so clipped-away regions do not take events.
type registryEntry struct {
	element Element
	offsetX int
	offsetY int
	clip    Rect
}

// hit reports whether the point falls on the entry. The registered offset
// is the parent-frame origin the element drew at, so bounds add the
// element's own position, right and bottom edges inclusive, further
// restricted to the registered clip.
func (e *registryEntry) hit(x, y int) bool {
	bounds := Rect{
		X:      e.element.X() + e.offsetX,
		Y:      e.element.Y() + e.offsetY,
		Width:  e.element.Width(),
		Height: e.element.Height(),
	}
	return bounds.Contains(x, y) && e.clip.Contains(x, y)
}

// Config carries the collaborators a Ui is built from.
type Config struct {
	Queue    ScriptQueue
	Keybinds KeybindResolver
	Settings *settings.Store

	RegularFont Font
	MonoFont    Font
	IconFont    Font
}

// Ui owns the top-level element stack and routes draw and input. Drawing
// runs on the render thread; ProcessMouseEvent and ProcessKeyboardEvent run
// on the OS hook thread whenever input arrives. Each shared slot has its own
// lock, and no lock is ever held across a call into an element.
type Ui struct {
	topMu    sync.Mutex
	topLevel []Element

	// Events are routed against the elements registered during the prior
	// frame's draw. An element may hold its own lock while drawing and
	// registering at the same moment an input event arrives on the hook
	// thread; dispatching against the completed previous snapshot means a
	// draw-time lock and an input-time lock are never wanted at once.
	regMu     sync.Mutex
	inputCur  []registryEntry
	inputLast []registryEntry

	hoverMu sync.Mutex
	hover   *registryEntry

	captureMu sync.Mutex
	capture   *registryEntry

	focusMu sync.Mutex
	focus   Element

	lastMouseX atomic.Int64
	lastMouseY atomic.Int64
	lastWidth  atomic.Int64
	lastHeight atomic.Int64

	queue    ScriptQueue
	keybinds KeybindResolver
	settings *settings.Store

	regularFont Font
	monoFont    Font
	iconFont    Font

	iconMu    sync.Mutex
	iconCache map[string]rune
}

// New builds a Ui from its collaborators.
func New(cfg Config) *Ui {
	return &Ui{
		queue:       cfg.Queue,
		keybinds:    cfg.Keybinds,
		settings:    cfg.Settings,
		regularFont: cfg.RegularFont,
		monoFont:    cfg.MonoFont,
		iconFont:    cfg.IconFont,
		iconCache:   make(map[string]rune),
	}
}

// RegisterStyleDefaults registers the default style and font values widgets
// read at construction. The engine calls this once before building fonts.
func RegisterStyleDefaults(st *settings.Store) {
	st.SetDefault("overlay.ui.colors.windowBG", int64(0x000000BB))
	st.SetDefault("overlay.ui.colors.windowBorder", int64(0x3D4478FF))
	st.SetDefault("overlay.ui.colors.windowBorderHighlight", int64(0x3D5A78FF))

	st.SetDefault("overlay.ui.colors.text", int64(0xFFFFFFFF))
	st.SetDefault("overlay.ui.colors.accentText", int64(0xFCBA03FF))

	st.SetDefault("overlay.ui.colors.entryBG", int64(0x262626FF))
	st.SetDefault("overlay.ui.colors.entryHint", int64(0x707070FF))
	st.SetDefault("overlay.ui.entryFocusCaret", "█")
	st.SetDefault("overlay.ui.entryInactiveCaret", "░")

	st.SetDefault("overlay.ui.colors.buttonBG", int64(0x1F253BDD))
	st.SetDefault("overlay.ui.colors.buttonBGHover", int64(0x2E3859FF))
	st.SetDefault("overlay.ui.colors.buttonBGHighlight", int64(0x3A4670FF))
	st.SetDefault("overlay.ui.colors.buttonBorder", int64(0x3D4478FF))

	st.SetDefault("overlay.ui.colors.scrollThumb", int64(0x3D4478FF))
	st.SetDefault("overlay.ui.colors.scrollThumbHighlight", int64(0x3D5A78FF))
	st.SetDefault("overlay.ui.colors.scrollBG", int64(0x1E202ECC))

	st.SetDefault("overlay.ui.colors.menuBG", int64(0x161A26DD))
	st.SetDefault("overlay.ui.colors.menuBorder", int64(0x3D4478FF))
	st.SetDefault("overlay.ui.colors.menuItemHover", int64(0x2E3859FF))
	st.SetDefault("overlay.ui.colors.menuItemHighlight", int64(0x3A4670FF))

	st.SetDefault("overlay.ui.font.regular.path", "fonts/Inter.ttf")
	st.SetDefault("overlay.ui.font.regular.size", int64(12))
	st.SetDefault("overlay.ui.font.mono.path", "fonts/CascadiaCode.ttf")
	st.SetDefault("overlay.ui.font.mono.size", int64(12))
	st.SetDefault("overlay.ui.font.icon.path", "fonts/MaterialSymbolsOutlined.ttf")
	st.SetDefault("overlay.ui.font.icon.size", int64(12))
	st.SetDefault("overlay.ui.font.icon.codepoints", "fonts/MaterialSymbolsOutlined.codepoints")
}

// Settings returns the settings store widgets style themselves from.
func (u *Ui) Settings() *settings.Store { return u.settings }

// Queue returns the script event queue.
func (u *Ui) Queue() ScriptQueue { return u.queue }

// Font returns the regular UI font.
func (u *Ui) Font() Font { return u.regularFont }

// MonoFont returns the monospace font.
func (u *Ui) MonoFont() Font { return u.monoFont }

// IconFont returns the icon font.
func (u *Ui) IconFont() Font { return u.iconFont }

// AddTopLevelElement appends an element to the top-level stack, where the
// last entry draws topmost. Adding an element already present is ignored.
func (u *Ui) AddTopLevelElement(el Element) {
	u.topMu.Lock()
	defer u.topMu.Unlock()
	for _, existing := range u.topLevel {
		if existing == el {
			slog.Warn("ui: element is already top level")
			return
		}
	}
	u.topLevel = append(u.topLevel, el)
}

// RemoveTopLevelElement removes the element from the top-level stack.
func (u *Ui) RemoveTopLevelElement(el Element) {
	u.topMu.Lock()
	defer u.topMu.Unlock()
	for i, existing := range u.topLevel {
		if existing == el {
			u.topLevel = append(u.topLevel[:i], u.topLevel[i+1:]...)
			return
		}
	}
}

// MoveElementToTop moves the element to the end of the top-level stack so
// it draws above everything else.
func (u *Ui) MoveElementToTop(el Element) {
	u.topMu.Lock()
	defer u.topMu.Unlock()
	for i, existing := range u.topLevel {
		if existing == el {
			u.topLevel = append(u.topLevel[:i], u.topLevel[i+1:]...)
			break
		}
	}
	u.topLevel = append(u.topLevel, el)
}

// AddInputElement registers an element for next frame's hit-testing.
// Elements call this from their own Draw with the offset they drew at and
// the scissor in effect. Entries go to the front of the list: later-drawn
// elements render on top, so they must be hit-tested first.
func (u *Ui) AddInputElement(el Element, offsetX, offsetY int, clip Rect) {
	u.regMu.Lock()
	defer u.regMu.Unlock()
	u.inputCur = append(u.inputCur, registryEntry{})
	copy(u.inputCur[1:], u.inputCur)
	u.inputCur[0] = registryEntry{element: el, offsetX: offsetX, offsetY: offsetY, clip: clip}
}

// SetMouseCapture routes every mouse event to the element first, at the
// pinned offset and clip, until ClearMouseCapture. If capture is already
// held the call does nothing.
func (u *Ui) SetMouseCapture(el Element, offsetX, offsetY int, clip Rect) {
	u.captureMu.Lock()
	defer u.captureMu.Unlock()
	if u.capture != nil {
		return
	}
	u.capture = &registryEntry{element: el, offsetX: offsetX, offsetY: offsetY, clip: clip}
}

// ClearMouseCapture releases mouse capture.
func (u *Ui) ClearMouseCapture() {
	u.captureMu.Lock()
	defer u.captureMu.Unlock()
	u.capture = nil
}

// SetFocusElement gives keyboard focus to el, which may be nil. A previous
// holder is notified through OnLostFocus after the slot is updated.
func (u *Ui) SetFocusElement(el Element) {
	u.focusMu.Lock()
	prev := u.focus
	u.focus = el
	u.focusMu.Unlock()

	if prev != nil && prev != el {
		prev.OnLostFocus()
	}
}

// ElementIsFocus reports whether el currently holds keyboard focus.
func (u *Ui) ElementIsFocus(el Element) bool {
	u.focusMu.Lock()
	defer u.focusMu.Unlock()
	return u.focus != nil && u.focus == el
}

// MousePosition returns the pointer position recorded by the most recent
// mouse event.
func (u *Ui) MousePosition() (x, y int) {
	return int(u.lastMouseX.Load()), int(u.lastMouseY.Load())
}

// Size returns the render target size recorded by the most recent draw.
func (u *Ui) Size() (width, height int) {
	return int(u.lastWidth.Load()), int(u.lastHeight.Load())
}

// Draw renders all top-level elements back to front. The registry built
// during the previous Draw becomes the one input dispatch reads, and this
// frame's registrations start empty; the swap allocates a fresh slice
// because dispatch may still hold a snapshot of the retiring one.
func (u *Ui) Draw(frame Frame) {
	u.lastWidth.Store(int64(frame.Width()))
	u.lastHeight.Store(int64(frame.Height()))

	u.regMu.Lock()
	u.inputLast = u.inputCur
	u.inputCur = nil
	u.regMu.Unlock()

	u.topMu.Lock()
	tops := make([]Element, len(u.topLevel))
	copy(tops, u.topLevel)
	u.topMu.Unlock()

	for _, el := range tops {
		el.Draw(0, 0, frame)
	}
}

// ProcessMouseEvent routes a mouse event through hover synthesis, capture,
// and positional dispatch against the prior frame's registry. It reports
// whether any element consumed the event.
func (u *Ui) ProcessMouseEvent(ev *input.MouseEvent) bool {
	u.lastMouseX.Store(int64(ev.X))
	u.lastMouseY.Store(int64(ev.Y))

	if ev.Kind == input.EventMouseButton && ev.Down {
		u.SetFocusElement(nil)
	}

	u.regMu.Lock()
	entries := make([]registryEntry, len(u.inputLast))
	copy(entries, u.inputLast)
	u.regMu.Unlock()

	var under *registryEntry
	for i := range entries {
		if entries[i].hit(ev.X, ev.Y) {
			under = &entries[i]
			break
		}
	}

	// Hover transitions fire before anything else sees the event. The old
	// element leaves at the offset it was hovered at, the new one enters at
	// its own; an unchanged target gets no synthetic events but its pinned
	// offsets are refreshed.
	u.hoverMu.Lock()
	prev := u.hover
	if under != nil {
		cp := *under
		u.hover = &cp
	} else {
		u.hover = nil
	}
	u.hoverMu.Unlock()

	switch {
	case under != nil && prev != nil && prev.element != under.element:
		leave := ev.AsLeave()
		prev.element.ProcessMouseEvent(prev.offsetX, prev.offsetY, leave)
		leave.Release()
		enter := ev.AsEnter()
		under.element.ProcessMouseEvent(under.offsetX, under.offsetY, enter)
		enter.Release()
	case under != nil && prev == nil:
		enter := ev.AsEnter()
		under.element.ProcessMouseEvent(under.offsetX, under.offsetY, enter)
		enter.Release()
	case under == nil && prev != nil:
		leave := ev.AsLeave()
		prev.element.ProcessMouseEvent(prev.offsetX, prev.offsetY, leave)
		leave.Release()
	}

	// The capture element gets first refusal. The slot is read and released
	// before the call because the handler may clear capture.
	u.captureMu.Lock()
	var capture registryEntry
	captured := u.capture != nil
	if captured {
		capture = *u.capture
	}
	u.captureMu.Unlock()

	if captured {
		if capture.element.ProcessMouseEvent(capture.offsetX, capture.offsetY, ev) {
			return true
		}
	}

	for i := range entries {
		if entries[i].hit(ev.X, ev.Y) {
			if entries[i].element.ProcessMouseEvent(entries[i].offsetX, entries[i].offsetY, ev) {
				return true
			}
		}
	}

	return false
}

// ProcessKeyboardEvent offers the event to the focus element, then falls
// through to the script keybind resolver.
func (u *Ui) ProcessKeyboardEvent(ev *input.KeyboardEvent) bool {
	u.focusMu.Lock()
	focus := u.focus
	u.focusMu.Unlock()

	if focus != nil && focus.ProcessKeyboardEvent(ev) {
		return true
	}
	if u.keybinds != nil {
		return u.keybinds.ProcessKeybinds(ev)
	}
	return false
}

// IconCodepoint resolves an icon name to its rune through the icon font's
// codepoints file, a line-oriented "name hexvalue" listing. Results are
// cached; the file is scanned on each miss.
func (u *Ui) IconCodepoint(name string) (rune, error) {
	u.iconMu.Lock()
	defer u.iconMu.Unlock()

	if cp, ok := u.iconCache[name]; ok {
		return cp, nil
	}

	path, err := u.settings.GetString("overlay.ui.font.icon.codepoints")
	if err != nil {
		return 0, fmt.Errorf("ui: icon codepoints path: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ui: opening icon codepoints: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != name {
			continue
		}
		if len(fields) < 2 {
			return 0, fmt.Errorf("ui: malformed codepoint line for %q", name)
		}
		cp, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("ui: bad codepoint value for %q: %w", name, err)
		}
		u.iconCache[name] = rune(cp)
		return rune(cp), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("ui: reading icon codepoints: %w", err)
	}

	return 0, fmt.Errorf("ui: no icon codepoint named %q", name)
}
