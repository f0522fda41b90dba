package keymap

import (
	"testing"

	"keybind/keystate"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    []keystate.Keycode
		wantErr bool
	}{
		{"ctrl+g", []keystate.Keycode{keystate.KeyLeftCtrl, keystate.KeyG}, false},
		{"Ctrl + Shift + G", []keystate.Keycode{keystate.KeyLeftCtrl, keystate.KeyLeftShift, keystate.KeyG}, false},
		{"rctrl+f12", []keystate.Keycode{keystate.KeyRightCtrl, keystate.KeyF12}, false},
		{"super+space", []keystate.Keycode{keystate.KeyLeftMeta, keystate.KeySpace}, false},
		{"a", []keystate.Keycode{keystate.KeyA}, false},
		{"escape", []keystate.Keycode{keystate.KeyEsc}, false},
		{"", nil, true},
		{"ctrl+", nil, true},
		{"ctrl+bogus", nil, true},
		{"++", nil, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Parse(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		keys []keystate.Keycode
		want string
	}{
		{[]keystate.Keycode{keystate.KeyLeftCtrl, keystate.KeyG}, "ctrl+g"},
		{[]keystate.Keycode{keystate.KeyRightShift, keystate.KeyF5}, "rshift+f5"},
		{[]keystate.Keycode{keystate.KeySpace}, "space"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Format(tt.keys); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, chord := range []string{"ctrl+shift+g", "alt+tab", "rctrl+rshift+m", "f11"} {
		keys, err := Parse(chord)
		if err != nil {
			t.Fatalf("Parse(%q): %v", chord, err)
		}
		if got := Format(keys); got != chord {
			t.Errorf("Format(Parse(%q)) = %q", chord, got)
		}
	}
}

func TestNameUnknownCode(t *testing.T) {
	if got := Name(keystate.Keycode(499)); got != "key499" {
		t.Errorf("Name(499) = %q, want key499", got)
	}
}
