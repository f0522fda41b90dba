//go:build !linux

package keystate

import (
	"fmt"
	"sync/atomic"

	"golang.design/x/hotkey"

	"keybind/log"
)

// hotkeySource registers the chord itself with the OS hotkey facility and
// synthesizes samples from its press state: the full chord while held,
// nothing otherwise. The chord must consist of zero or more modifier keys
// plus exactly one regular key, which is what the platform can register.
type hotkeySource struct {
	hk    *hotkey.Hotkey
	chord []Keycode
	held  atomic.Bool
	stop  chan struct{}
}

func newPlatformSource(chord []Keycode) (Source, error) {
	var mods []hotkey.Modifier
	var key hotkey.Key
	haveKey := false

	for _, kc := range chord {
		if m, ok := modFor[kc]; ok {
			mods = append(mods, m)
			continue
		}
		k, ok := keyFor[kc]
		if !ok {
			return nil, fmt.Errorf("%w: keycode %d cannot be registered on this platform", ErrUnavailable, kc)
		}
		if haveKey {
			return nil, fmt.Errorf("%w: chord needs exactly one non-modifier key on this platform", ErrUnavailable)
		}
		key = k
		haveKey = true
	}
	if !haveKey {
		return nil, fmt.Errorf("%w: chord needs exactly one non-modifier key on this platform", ErrUnavailable)
	}

	s := &hotkeySource{
		hk:    hotkey.New(mods, key),
		chord: append([]Keycode(nil), chord...),
		stop:  make(chan struct{}),
	}
	if err := s.hk.Register(); err != nil {
		return nil, fmt.Errorf("%w: registering hotkey: %v", ErrUnavailable, err)
	}
	log.Info("hotkey registered")

	go func() {
		for {
			select {
			case <-s.hk.Keydown():
				s.held.Store(true)
			case <-s.hk.Keyup():
				s.held.Store(false)
			case <-s.stop:
				return
			}
		}
	}()

	return s, nil
}

func (s *hotkeySource) Sample() []Keycode {
	if !s.held.Load() {
		return nil
	}
	return append([]Keycode(nil), s.chord...)
}

func (s *hotkeySource) Close() {
	close(s.stop)
	s.hk.Unregister()
}

// Diagnose reports whether chord registration is available.
func Diagnose() (string, error) {
	return "hotkey registration available", nil
}
