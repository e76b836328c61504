package input

import "fmt"

// VirtualKey is a Windows virtual-key code.
type VirtualKey uint32

const (
	VKeyBack     VirtualKey = 0x08
	VKeyTab      VirtualKey = 0x09
	VKeyClear    VirtualKey = 0x0C
	VKeyReturn   VirtualKey = 0x0D
	VKeyShift    VirtualKey = 0x10
	VKeyControl  VirtualKey = 0x11
	VKeyMenu     VirtualKey = 0x12
	VKeyPause    VirtualKey = 0x13
	VKeyCapital  VirtualKey = 0x14
	VKeyEscape   VirtualKey = 0x1B
	VKeySpace    VirtualKey = 0x20
	VKeyPrior    VirtualKey = 0x21
	VKeyNext     VirtualKey = 0x22
	VKeyEnd      VirtualKey = 0x23
	VKeyHome     VirtualKey = 0x24
	VKeyLeft     VirtualKey = 0x25
	VKeyUp       VirtualKey = 0x26
	VKeyRight    VirtualKey = 0x27
	VKeyDown     VirtualKey = 0x28
	VKeySelect   VirtualKey = 0x29
	VKeyPrint    VirtualKey = 0x2A
	VKeyExecute  VirtualKey = 0x2B
	VKeySnapshot VirtualKey = 0x2C
	VKeyInsert   VirtualKey = 0x2D
	VKeyDelete   VirtualKey = 0x2E
	VKeyHelp     VirtualKey = 0x2F

	VKey0 VirtualKey = 0x30
	VKey1 VirtualKey = 0x31
	VKey2 VirtualKey = 0x32
	VKey3 VirtualKey = 0x33
	VKey4 VirtualKey = 0x34
	VKey5 VirtualKey = 0x35
	VKey6 VirtualKey = 0x36
	VKey7 VirtualKey = 0x37
	VKey8 VirtualKey = 0x38
	VKey9 VirtualKey = 0x39

	VKeyA VirtualKey = 0x41
	VKeyB VirtualKey = 0x42
	VKeyC VirtualKey = 0x43
	VKeyD VirtualKey = 0x44
	VKeyE VirtualKey = 0x45
	VKeyF VirtualKey = 0x46
	VKeyG VirtualKey = 0x47
	VKeyH VirtualKey = 0x48
	VKeyI VirtualKey = 0x49
	VKeyJ VirtualKey = 0x4A
	VKeyK VirtualKey = 0x4B
	VKeyL VirtualKey = 0x4C
	VKeyM VirtualKey = 0x4D
	VKeyN VirtualKey = 0x4E
	VKeyO VirtualKey = 0x4F
	VKeyP VirtualKey = 0x50
	VKeyQ VirtualKey = 0x51
	VKeyR VirtualKey = 0x52
	VKeyS VirtualKey = 0x53
	VKeyT VirtualKey = 0x54
	VKeyU VirtualKey = 0x55
	VKeyV VirtualKey = 0x56
	VKeyW VirtualKey = 0x57
	VKeyX VirtualKey = 0x58
	VKeyY VirtualKey = 0x59
	VKeyZ VirtualKey = 0x5A

	VKeyLWin VirtualKey = 0x5B
	VKeyRWin VirtualKey = 0x5C
	VKeyApps VirtualKey = 0x5D

	VKeyNumpad0   VirtualKey = 0x60
	VKeyNumpad1   VirtualKey = 0x61
	VKeyNumpad2   VirtualKey = 0x62
	VKeyNumpad3   VirtualKey = 0x63
	VKeyNumpad4   VirtualKey = 0x64
	VKeyNumpad5   VirtualKey = 0x65
	VKeyNumpad6   VirtualKey = 0x66
	VKeyNumpad7   VirtualKey = 0x67
	VKeyNumpad8   VirtualKey = 0x68
	VKeyNumpad9   VirtualKey = 0x69
	VKeyMultiply  VirtualKey = 0x6A
	VKeyAdd       VirtualKey = 0x6B
	VKeySeparator VirtualKey = 0x6C
	VKeySubtract  VirtualKey = 0x6D
	VKeyDecimal   VirtualKey = 0x6E
	VKeyDivide    VirtualKey = 0x6F

	VKeyF1  VirtualKey = 0x70
	VKeyF2  VirtualKey = 0x71
	VKeyF3  VirtualKey = 0x72
	VKeyF4  VirtualKey = 0x73
	VKeyF5  VirtualKey = 0x74
	VKeyF6  VirtualKey = 0x75
	VKeyF7  VirtualKey = 0x76
	VKeyF8  VirtualKey = 0x77
	VKeyF9  VirtualKey = 0x78
	VKeyF10 VirtualKey = 0x79
	VKeyF11 VirtualKey = 0x7A
	VKeyF12 VirtualKey = 0x7B
	VKeyF13 VirtualKey = 0x7C
	VKeyF14 VirtualKey = 0x7D
	VKeyF15 VirtualKey = 0x7E
	VKeyF16 VirtualKey = 0x7F
	VKeyF17 VirtualKey = 0x80
	VKeyF18 VirtualKey = 0x81
	VKeyF19 VirtualKey = 0x82
	VKeyF20 VirtualKey = 0x83
	VKeyF21 VirtualKey = 0x84
	VKeyF22 VirtualKey = 0x85
	VKeyF23 VirtualKey = 0x86
	VKeyF24 VirtualKey = 0x87

	VKeyNumLock  VirtualKey = 0x90
	VKeyScroll   VirtualKey = 0x91
	VKeyLShift   VirtualKey = 0xA0
	VKeyRShift   VirtualKey = 0xA1
	VKeyLControl VirtualKey = 0xA2
	VKeyRControl VirtualKey = 0xA3
	VKeyLMenu    VirtualKey = 0xA4
	VKeyRMenu    VirtualKey = 0xA5

	VKeyOEM1      VirtualKey = 0xBA
	VKeyOEMPlus   VirtualKey = 0xBB
	VKeyOEMComma  VirtualKey = 0xBC
	VKeyOEMMinus  VirtualKey = 0xBD
	VKeyOEMPeriod VirtualKey = 0xBE
	VKeyOEM2      VirtualKey = 0xBF
	VKeyOEM3      VirtualKey = 0xC0
	VKeyOEM4      VirtualKey = 0xDB
	VKeyOEM5      VirtualKey = 0xDC
	VKeyOEM6      VirtualKey = 0xDD
	VKeyOEM7      VirtualKey = 0xDE
)

var vkeyNames = map[VirtualKey]string{
	VKeyBack:      "backspace",
	VKeyTab:       "tab",
	VKeyClear:     "clear",
	VKeyReturn:    "return",
	VKeyShift:     "shift",
	VKeyControl:   "ctrl",
	VKeyMenu:      "alt",
	VKeyPause:     "pause",
	VKeyCapital:   "capslock",
	VKeyEscape:    "escape",
	VKeySpace:     "space",
	VKeyPrior:     "pageup",
	VKeyNext:      "pagedown",
	VKeyEnd:       "end",
	VKeyHome:      "home",
	VKeyLeft:      "left",
	VKeyUp:        "up",
	VKeyRight:     "right",
	VKeyDown:      "down",
	VKeySelect:    "select",
	VKeyPrint:     "print",
	VKeyExecute:   "execute",
	VKeySnapshot:  "printscreen",
	VKeyInsert:    "insert",
	VKeyDelete:    "delete",
	VKeyHelp:      "help",
	VKeyLWin:      "lwindows",
	VKeyRWin:      "rwindows",
	VKeyApps:      "applications",
	VKeyAdd:       "plus",
	VKeySeparator: "separator",
	VKeyNumpad0:   "numpad0",
	VKeyNumpad1:   "numpad1",
	VKeyNumpad2:   "numpad2",
	VKeyNumpad3:   "numpad3",
	VKeyNumpad4:   "numpad4",
	VKeyNumpad5:   "numpad5",
	VKeyNumpad6:   "numpad6",
	VKeyNumpad7:   "numpad7",
	VKeyNumpad8:   "numpad8",
	VKeyNumpad9:   "numpad9",
	VKeyMultiply:  "multiply",
	VKeySubtract:  "subtract",
	VKeyDecimal:   "decimal",
	VKeyDivide:    "divide",
	VKeyNumLock:   "numlock",
	VKeyScroll:    "scrolllock",
	VKeyLShift:    "lshift",
	VKeyRShift:    "rshift",
	VKeyLControl:  "lctrl",
	VKeyRControl:  "rctrl",
	VKeyLMenu:     "lalt",
	VKeyRMenu:     "ralt",
	VKeyOEM1:      "semicolon",
	VKeyOEMPlus:   "equals",
	VKeyOEMComma:  "comma",
	VKeyOEMMinus:  "minus",
	VKeyOEMPeriod: "period",
	VKeyOEM2:      "forwardslash",
	VKeyOEM3:      "backtick",
	VKeyOEM4:      "leftbracket",
	VKeyOEM5:      "backslash",
	VKeyOEM6:      "rightbracket",
	VKeyOEM7:      "apostrophe",
}

// Name returns the key's canonical lower-case name used in keybind strings.
// Digits and letters name themselves, function keys are "f1".."f24" and
// unknown codes format as hex.
func (k VirtualKey) Name() string {
	if k >= VKey0 && k <= VKey9 {
		return string(rune('0' + (k - VKey0)))
	}
	if k >= VKeyA && k <= VKeyZ {
		return string(rune('a' + (k - VKeyA)))
	}
	if k >= VKeyF1 && k <= VKeyF24 {
		return fmt.Sprintf("f%d", k-VKeyF1+1)
	}
	if n, ok := vkeyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("0x%X", uint32(k))
}

// IsModifierOrLock reports whether the key is a modifier or lock key. The
// capture bridge never swallows these even when the UI consumed them, so the
// OS keeps correct modifier and lock state.
func (k VirtualKey) IsModifierOrLock() bool {
	switch k {
	case VKeyLMenu, VKeyRMenu, VKeyLControl, VKeyRControl,
		VKeyLShift, VKeyRShift, VKeyCapital, VKeyNumLock, VKeyScroll:
		return true
	}
	return false
}

// shifted digit row characters, indexed by digit.
var shiftedDigits = [...]string{")", "!", "@", "#", "$", "%", "^", "&", "*", "("}

// oemChars maps US punctuation keys to their unshifted and shifted text.
var oemChars = map[VirtualKey][2]string{
	VKeyOEM1:      {";", ":"},
	VKeyOEMPlus:   {"=", "+"},
	VKeyOEMComma:  {",", "<"},
	VKeyOEMMinus:  {"-", "_"},
	VKeyOEMPeriod: {".", ">"},
	VKeyOEM2:      {"/", "?"},
	VKeyOEM3:      {"`", "~"},
	VKeyOEM4:      {"[", "{"},
	VKeyOEM5:      {"\\", "|"},
	VKeyOEM6:      {"]", "}"},
	VKeyOEM7:      {"'", "\""},
}

// Chars resolves the printable text a key-down produces on the US layout,
// or "" when the keystroke produces none. Alt- or ctrl-modified keystrokes
// and key-up events never produce text; the caller enforces the down check
// by construction.
func (k VirtualKey) Chars(shift, caps bool) string {
	switch {
	case k >= VKeyNumpad0 && k <= VKeyNumpad9:
		if shift {
			return ""
		}
		return string(rune('0' + (k - VKeyNumpad0)))
	case k >= VKey0 && k <= VKey9:
		if shift {
			return shiftedDigits[k-VKey0]
		}
		return string(rune('0' + (k - VKey0)))
	case k >= VKeyA && k <= VKeyZ:
		if shift || caps {
			return string(rune('A' + (k - VKeyA)))
		}
		return string(rune('a' + (k - VKeyA)))
	}

	switch k {
	case VKeyAdd:
		return "+"
	case VKeyMultiply:
		return "*"
	case VKeySubtract:
		return "-"
	case VKeyDecimal:
		if shift {
			return ""
		}
		return "."
	case VKeyDivide:
		return "/"
	case VKeySpace:
		return " "
	}

	if c, ok := oemChars[k]; ok {
		if shift {
			return c[1]
		}
		return c[0]
	}

	return ""
}
