// Package keybind triggers a callback when a chord of keyboard keys is
// held simultaneously, system-wide. It polls a key-state source and turns
// the stream of held-key snapshots into one trigger per chord activation:
// holding the chord does not re-fire, releasing and pressing again does.
//
//	kb, err := keybind.New(keystate.KeyLeftCtrl, keystate.KeyG)
//	if err != nil {
//		...
//	}
//	kb.OnTrigger(func() {
//		fmt.Println("This will be printed when you press CTRL+G")
//	})
//	kb.Wait()
package keybind

import (
	"errors"
	"time"

	"keybind/keystate"
)

// Keycode identifies a physical key, re-exported from the key-state
// provider. Two keycodes are equal iff the provider reports them as equal;
// in particular left and right control are distinct keys.
type Keycode = keystate.Keycode

// ErrEmptyChord is returned when a Keybind is constructed with no keys.
var ErrEmptyChord = errors.New("keybind: empty chord")

const defaultPollInterval = 5 * time.Millisecond

// Keybind watches one chord. Not safe for concurrent use; tick it from a
// single goroutine.
type Keybind struct {
	src      keystate.Source
	chord    []Keycode
	chordSet map[Keycode]struct{}
	prev     map[Keycode]struct{}
	action   func()
	interval time.Duration
}

// New creates a Keybind for the given chord using the default platform
// key-state source. Duplicate keys collapse. Fails with ErrEmptyChord on an
// empty chord and with a keystate.ErrUnavailable-wrapped error when the
// platform source cannot be initialized.
func New(keys ...Keycode) (*Keybind, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyChord
	}
	src, err := keystate.New(keys)
	if err != nil {
		return nil, err
	}
	return NewWithSource(src, keys...)
}

// NewWithSource is New with an injected key-state source.
func NewWithSource(src keystate.Source, keys ...Keycode) (*Keybind, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyChord
	}
	k := &Keybind{
		src:      src,
		chordSet: make(map[Keycode]struct{}, len(keys)),
		prev:     map[Keycode]struct{}{},
		interval: defaultPollInterval,
	}
	for _, key := range keys {
		if _, dup := k.chordSet[key]; dup {
			continue
		}
		k.chordSet[key] = struct{}{}
		k.chord = append(k.chord, key)
	}
	return k, nil
}

// OnTrigger replaces the action invoked on each chord activation. The
// previous action is dropped. A nil fn restores the initial no-op.
func (k *Keybind) OnTrigger(fn func()) {
	k.action = fn
}

// SetPollInterval adjusts the delay between ticks in Wait and WaitUntil.
// Non-positive values are ignored.
func (k *Keybind) SetPollInterval(d time.Duration) {
	if d > 0 {
		k.interval = d
	}
}

// Close releases the underlying key-state source. The Keybind must not be
// ticked afterwards.
func (k *Keybind) Close() {
	k.src.Close()
}

// Keys returns the target chord with duplicates removed, in the order the
// keys were given.
func (k *Keybind) Keys() []Keycode {
	return append([]Keycode(nil), k.chord...)
}

// Triggered performs one sample-and-decide tick. It reports true iff this
// tick is a rising edge of the chord: every chord key is held, no other
// key is held, and the held set changed since the previous tick. Samples
// are compared as sets, so provider ordering does not matter. The previous
// sample is replaced unconditionally.
func (k *Keybind) Triggered() bool {
	now := toSet(k.src.Sample())
	prev := k.prev
	k.prev = now

	return len(now) == len(k.chordSet) &&
		setsEqual(now, k.chordSet) &&
		!setsEqual(now, prev)
}

// Wait polls forever, invoking the installed action once per chord
// activation. It does not return; the action runs synchronously on the
// calling goroutine, so chord state does not advance while it runs.
func (k *Keybind) Wait() {
	for {
		if k.Triggered() && k.action != nil {
			k.action()
		}
		time.Sleep(k.interval)
	}
}

// WaitUntil is Wait with cancellation: once stop is observed between
// ticks, it returns without invoking any further actions.
func (k *Keybind) WaitUntil(stop <-chan struct{}) {
	for {
		if k.Triggered() && k.action != nil {
			k.action()
		}
		select {
		case <-stop:
			return
		case <-time.After(k.interval):
		}
	}
}

func toSet(keys []Keycode) map[Keycode]struct{} {
	set := make(map[Keycode]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func setsEqual(a, b map[Keycode]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
