//go:build darwin

package keystate

import "golang.design/x/hotkey"

// modFor maps modifier keycodes to macOS hotkey modifiers. The platform
// registers modifiers without a left/right distinction, so both sides map
// to the same modifier.
var modFor = map[Keycode]hotkey.Modifier{
	KeyLeftCtrl:   hotkey.ModCtrl,
	KeyRightCtrl:  hotkey.ModCtrl,
	KeyLeftShift:  hotkey.ModShift,
	KeyRightShift: hotkey.ModShift,
	KeyLeftAlt:    hotkey.ModOption,
	KeyRightAlt:   hotkey.ModOption,
	KeyLeftMeta:   hotkey.ModCmd,
	KeyRightMeta:  hotkey.ModCmd,
}
