//go:build windows

package input

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW     = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx   = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx        = user32.NewProc("CallNextHookEx")
	procGetMessageW           = user32.NewProc("GetMessageW")
	procPostThreadMessageW    = user32.NewProc("PostThreadMessageW")
	procGetKeyState           = user32.NewProc("GetKeyState")
	procGetKeyboardLayoutName = user32.NewProc("GetKeyboardLayoutNameW")
	procScreenToClient        = user32.NewProc("ScreenToClient")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmQuit = 0x0012

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
	wmMouseHWheel = 0x020E
)

type point struct {
	X, Y int32
}

type msllHookStruct struct {
	Pt        point
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type kbdllHookStruct struct {
	VKCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Hooks owns the low-level mouse and keyboard hooks and the message pump
// that keeps them alive. Events flow through the bridge's suppression
// policy before reaching the dispatcher.
type Hooks struct {
	bridge *Bridge
	window uintptr

	mouseProc    uintptr
	keyboardProc uintptr

	mouseHook    uintptr
	keyboardHook uintptr
	threadID     uint32
}

// NewHooks prepares hooks feeding the bridge. window is the overlay window
// handle; mouse coordinates are converted into its client space. A zero
// handle leaves coordinates screen-absolute.
func NewHooks(bridge *Bridge, window uintptr) *Hooks {
	h := &Hooks{bridge: bridge, window: window}
	h.mouseProc = windows.NewCallback(h.onMouse)
	h.keyboardProc = windows.NewCallback(h.onKeyboard)
	return h
}

// Run installs both hooks and pumps messages until ctx is cancelled. The
// hooks only fire on the installing thread, so Run pins itself to one OS
// thread and blocks there; call it from a dedicated goroutine.
func (h *Hooks) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h.threadID = windows.GetCurrentThreadId()
	h.bridge.CheckLayout(keyboardLayoutName())

	mh, _, err := procSetWindowsHookExW.Call(whMouseLL, h.mouseProc, 0, 0)
	if mh == 0 {
		return fmt.Errorf("input: installing mouse hook: %w", err)
	}
	h.mouseHook = mh
	defer procUnhookWindowsHookEx.Call(h.mouseHook)

	kh, _, err := procSetWindowsHookExW.Call(whKeyboardLL, h.keyboardProc, 0, 0)
	if kh == 0 {
		return fmt.Errorf("input: installing keyboard hook: %w", err)
	}
	h.keyboardHook = kh
	defer procUnhookWindowsHookEx.Call(h.keyboardHook)

	stop := context.AfterFunc(ctx, func() {
		procPostThreadMessageW.Call(uintptr(h.threadID), wmQuit, 0, 0)
	})
	defer stop()

	var msg [12]uintptr
	for {
		r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg[0])), 0, 0, 0)
		switch int32(r) {
		case 0:
			return ctx.Err()
		case -1:
			return fmt.Errorf("input: message pump failed: %w", windows.GetLastError())
		}
	}
}

func (h *Hooks) onMouse(code int32, wParam, lParam uintptr) uintptr {
	if code < 0 {
		return h.next(code, wParam, lParam)
	}
	info := (*msllHookStruct)(unsafe.Pointer(lParam))

	var raw RawMouse
	switch wParam {
	case wmMouseMove:
		raw = RawMouse{Kind: EventMouseMove}
	case wmLButtonDown:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonLeft, Down: true}
	case wmLButtonUp:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonLeft}
	case wmRButtonDown:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonRight, Down: true}
	case wmRButtonUp:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonRight}
	case wmMButtonDown:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonMiddle, Down: true}
	case wmMButtonUp:
		raw = RawMouse{Kind: EventMouseButton, Button: MouseButtonMiddle}
	case wmXButtonDown, wmXButtonUp:
		raw = RawMouse{Kind: EventMouseButton, Button: xButton(info.MouseData), Down: wParam == wmXButtonDown}
	case wmMouseWheel:
		raw = RawMouse{Kind: EventMouseWheel}
	case wmMouseHWheel:
		raw = RawMouse{Kind: EventMouseWheel}
	default:
		return h.next(code, wParam, lParam)
	}

	decision := h.bridge.HandleMouse(raw, func() *MouseEvent {
		x, y := h.toClient(info.Pt)
		switch raw.Kind {
		case EventMouseMove:
			return NewMouseMove(x, y)
		case EventMouseWheel:
			return NewMouseWheel(x, y, WheelNotches(int16(info.MouseData>>16)), wParam == wmMouseHWheel)
		default:
			return NewMouseButton(x, y, raw.Button, raw.Down)
		}
	})
	if decision == Swallow {
		return 1
	}
	return h.next(code, wParam, lParam)
}

func (h *Hooks) onKeyboard(code int32, wParam, lParam uintptr) uintptr {
	if code < 0 {
		return h.next(code, wParam, lParam)
	}
	info := (*kbdllHookStruct)(unsafe.Pointer(lParam))

	var down bool
	switch wParam {
	case wmKeyDown, wmSysKeyDown:
		down = true
	case wmKeyUp, wmSysKeyUp:
	default:
		return h.next(code, wParam, lParam)
	}

	shift := keyDown(VKeyShift)
	caps := keyToggled(VKeyCapital)
	vk := VirtualKey(info.VKCode)
	ev := &KeyboardEvent{
		VKey:  vk,
		Down:  down,
		Alt:   keyDown(VKeyMenu),
		Shift: shift,
		Ctrl:  keyDown(VKeyControl),
		Caps:  caps,
	}
	// Text input only comes from plain key presses. Releases and chorded
	// keys still dispatch, but carry no characters.
	if down && !ev.Alt && !ev.Ctrl {
		ev.Chars = vk.Chars(shift, caps)
	}
	if h.bridge.HandleKeyboard(ev) == Swallow {
		return 1
	}
	return h.next(code, wParam, lParam)
}

func (h *Hooks) next(code int32, wParam, lParam uintptr) uintptr {
	r, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return r
}

func (h *Hooks) toClient(pt point) (int, int) {
	if h.window != 0 {
		procScreenToClient.Call(h.window, uintptr(unsafe.Pointer(&pt)))
	}
	return int(pt.X), int(pt.Y)
}

func xButton(mouseData uint32) MouseButton {
	if mouseData>>16 == 2 {
		return MouseButtonX2
	}
	return MouseButtonX1
}

func keyDown(vk VirtualKey) bool {
	state, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(state) < 0
}

func keyToggled(vk VirtualKey) bool {
	state, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(state)&0x01 == 1
}

func keyboardLayoutName() string {
	var buf [9]uint16
	procGetKeyboardLayoutName.Call(uintptr(unsafe.Pointer(&buf[0])))
	return windows.UTF16ToString(buf[:])
}
