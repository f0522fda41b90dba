// Package keymap converts between human-readable chord strings like
// "ctrl+shift+g" and keycode sequences.
package keymap

import (
	"fmt"
	"strings"

	"keybind/keystate"
)

// keyFor maps normalized key names to keycodes. Modifier names resolve to
// the left-hand variant; use "rctrl" etc. to bind the right-hand key.
var keyFor = map[string]keystate.Keycode{
	"a": keystate.KeyA,
	"b": keystate.KeyB,
	"c": keystate.KeyC,
	"d": keystate.KeyD,
	"e": keystate.KeyE,
	"f": keystate.KeyF,
	"g": keystate.KeyG,
	"h": keystate.KeyH,
	"i": keystate.KeyI,
	"j": keystate.KeyJ,
	"k": keystate.KeyK,
	"l": keystate.KeyL,
	"m": keystate.KeyM,
	"n": keystate.KeyN,
	"o": keystate.KeyO,
	"p": keystate.KeyP,
	"q": keystate.KeyQ,
	"r": keystate.KeyR,
	"s": keystate.KeyS,
	"t": keystate.KeyT,
	"u": keystate.KeyU,
	"v": keystate.KeyV,
	"w": keystate.KeyW,
	"x": keystate.KeyX,
	"y": keystate.KeyY,
	"z": keystate.KeyZ,

	"0": keystate.Key0,
	"1": keystate.Key1,
	"2": keystate.Key2,
	"3": keystate.Key3,
	"4": keystate.Key4,
	"5": keystate.Key5,
	"6": keystate.Key6,
	"7": keystate.Key7,
	"8": keystate.Key8,
	"9": keystate.Key9,

	"f1":  keystate.KeyF1,
	"f2":  keystate.KeyF2,
	"f3":  keystate.KeyF3,
	"f4":  keystate.KeyF4,
	"f5":  keystate.KeyF5,
	"f6":  keystate.KeyF6,
	"f7":  keystate.KeyF7,
	"f8":  keystate.KeyF8,
	"f9":  keystate.KeyF9,
	"f10": keystate.KeyF10,
	"f11": keystate.KeyF11,
	"f12": keystate.KeyF12,

	"ctrl":    keystate.KeyLeftCtrl,
	"control": keystate.KeyLeftCtrl,
	"lctrl":   keystate.KeyLeftCtrl,
	"rctrl":   keystate.KeyRightCtrl,
	"shift":   keystate.KeyLeftShift,
	"lshift":  keystate.KeyLeftShift,
	"rshift":  keystate.KeyRightShift,
	"alt":     keystate.KeyLeftAlt,
	"option":  keystate.KeyLeftAlt,
	"lalt":    keystate.KeyLeftAlt,
	"ralt":    keystate.KeyRightAlt,
	"meta":    keystate.KeyLeftMeta,
	"super":   keystate.KeyLeftMeta,
	"win":     keystate.KeyLeftMeta,
	"cmd":     keystate.KeyLeftMeta,

	"space":     keystate.KeySpace,
	"tab":       keystate.KeyTab,
	"enter":     keystate.KeyEnter,
	"return":    keystate.KeyEnter,
	"esc":       keystate.KeyEsc,
	"escape":    keystate.KeyEsc,
	"backspace": keystate.KeyBackspace,
	"delete":    keystate.KeyDelete,
	"insert":    keystate.KeyInsert,
	"home":      keystate.KeyHome,
	"end":       keystate.KeyEnd,
	"pageup":    keystate.KeyPageUp,
	"pagedown":  keystate.KeyPageDown,
	"up":        keystate.KeyUp,
	"down":      keystate.KeyDown,
	"left":      keystate.KeyLeft,
	"right":     keystate.KeyRight,
}

// nameFor is the reverse of keyFor, preferring the canonical name per key.
var nameFor = map[keystate.Keycode]string{}

func init() {
	canonical := []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
		"ctrl", "rctrl", "shift", "rshift", "alt", "ralt", "meta",
		"space", "tab", "enter", "esc", "backspace", "delete", "insert",
		"home", "end", "pageup", "pagedown", "up", "down", "left", "right",
	}
	for _, name := range canonical {
		nameFor[keyFor[name]] = name
	}
	nameFor[keystate.KeyRightMeta] = "rmeta"
}

// Parse converts a '+'-separated chord string into keycodes. Names are
// case-insensitive and surrounding whitespace is ignored.
func Parse(s string) ([]keystate.Keycode, error) {
	var keys []keystate.Keycode
	for part := range strings.SplitSeq(s, "+") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			return nil, fmt.Errorf("empty key name in chord %q", s)
		}
		key, ok := keyFor[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q in chord %q", name, s)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Name returns the canonical display name of a keycode, or "key<N>" for
// codes without one.
func Name(k keystate.Keycode) string {
	if name, ok := nameFor[k]; ok {
		return name
	}
	return fmt.Sprintf("key%d", k)
}

// Format renders a chord as a '+'-separated string of key names.
func Format(keys []keystate.Keycode) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = Name(k)
	}
	return strings.Join(names, "+")
}
