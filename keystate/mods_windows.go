//go:build windows

package keystate

import "golang.design/x/hotkey"

// modFor maps modifier keycodes to Windows hotkey modifiers. RegisterHotKey
// has no left/right distinction, so both sides map to the same modifier.
var modFor = map[Keycode]hotkey.Modifier{
	KeyLeftCtrl:   hotkey.ModCtrl,
	KeyRightCtrl:  hotkey.ModCtrl,
	KeyLeftShift:  hotkey.ModShift,
	KeyRightShift: hotkey.ModShift,
	KeyLeftAlt:    hotkey.ModAlt,
	KeyRightAlt:   hotkey.ModAlt,
	KeyLeftMeta:   hotkey.ModWin,
	KeyRightMeta:  hotkey.ModWin,
}
