//go:build linux

package keystate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/holoplot/go-evdev"

	"keybind/log"
)

type evdevSource struct {
	devs []*evdev.InputDevice
}

// newPlatformSource opens every keyboard-class device under /dev/input and
// samples held keys with EVIOCGKEY state reads. The chord argument is
// unused on Linux; the source reports the complete held set.
func newPlatformSource(_ []Keycode) (Source, error) {
	paths, err := findKeyboards()
	if err != nil {
		return nil, fmt.Errorf("%w: scanning input devices: %v", ErrUnavailable, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no keyboard devices found (is user in 'input' group?)", ErrUnavailable)
	}

	s := &evdevSource{}
	for _, path := range paths {
		d, err := evdev.Open(path)
		if err != nil {
			log.Warnf("cannot open %s: %v", path, err)
			continue
		}
		s.devs = append(s.devs, d)
		log.Info("keyboard opened: " + path)
	}

	if len(s.devs) == 0 {
		return nil, fmt.Errorf("%w: could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)", ErrUnavailable)
	}

	return s, nil
}

func (s *evdevSource) Sample() []Keycode {
	var held []Keycode
	for _, d := range s.devs {
		state, err := d.State(evdev.EV_KEY)
		if err != nil {
			// Absorbed: a failed read counts as nothing held on that device.
			continue
		}
		for code, pressed := range state {
			if pressed {
				held = append(held, Keycode(code))
			}
		}
	}
	return held
}

func (s *evdevSource) Close() {
	for _, d := range s.devs {
		d.Close()
	}
	s.devs = nil
}

func findKeyboards() ([]string, error) {
	devicePaths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, p := range devicePaths {
		if isKeyboard(filepath.Base(p.Path)) {
			keyboards = append(keyboards, p.Path)
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// Diagnose checks evdev access and returns a status message.
func Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		d, err := evdev.Open(path)
		if err == nil {
			d.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}
