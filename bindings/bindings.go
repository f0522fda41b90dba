// Package bindings loads the TOML file mapping chords to actions.
//
//	[[binding]]
//	chord = "ctrl+shift+g"
//	run = "notify-send triggered"
//
//	[[binding]]
//	chord = "ctrl+alt+v"
//	copy = "boilerplate text"
package bindings

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"keybind/keymap"
	"keybind/keystate"
)

// Binding pairs a chord with exactly one action: a shell command to run or
// a text to place on the clipboard.
type Binding struct {
	Chord string `toml:"chord"`
	Run   string `toml:"run"`
	Copy  string `toml:"copy"`
}

type Config struct {
	Binding []Binding `toml:"binding"`
}

// Keys parses the binding's chord string.
func (b Binding) Keys() ([]keystate.Keycode, error) {
	return keymap.Parse(b.Chord)
}

// Load reads and validates a bindings file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading bindings file: %w", err)
	}
	if len(cfg.Binding) == 0 {
		return nil, fmt.Errorf("no bindings defined in %s", path)
	}
	for i, b := range cfg.Binding {
		if b.Chord == "" {
			return nil, fmt.Errorf("binding %d: missing chord", i+1)
		}
		if _, err := keymap.Parse(b.Chord); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i+1, err)
		}
		if (b.Run == "") == (b.Copy == "") {
			return nil, fmt.Errorf("binding %d (%s): set exactly one of run or copy", i+1, b.Chord)
		}
	}
	return &cfg, nil
}
