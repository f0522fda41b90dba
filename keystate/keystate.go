// Package keystate provides snapshots of the keys currently held on the
// system keyboard. The core detector in the root package consumes the
// Source interface; platform backends and a scripted fake implement it.
package keystate

import "errors"

// Keycode identifies a physical key. Values follow the Linux input event
// codes (KEY_A = 30, ...) on every platform; non-Linux backends translate.
type Keycode uint16

// Source samples the set of keys currently held.
//
// Sample must be cheap enough to call in a tight loop (hundreds of Hz).
// Element order is unspecified and may differ between calls even when the
// underlying set is unchanged. Transient read failures are absorbed and
// reported as an empty sample.
type Source interface {
	Sample() []Keycode
	Close()
}

// ErrUnavailable is returned (wrapped) when no platform source can be
// initialized, e.g. no readable keyboard devices or an unregistrable chord.
var ErrUnavailable = errors.New("key state source unavailable")

// New creates the default platform source for the given chord.
//
// On Linux the chord argument is ignored and the source reports the full
// held-key set read from evdev. On other platforms the chord itself is
// registered with the OS and samples are synthesized from its press state.
func New(chord []Keycode) (Source, error) {
	return newPlatformSource(chord)
}
