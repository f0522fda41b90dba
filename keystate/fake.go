package keystate

import "sync"

// Fake is a scripted Source for tests. Each Sample call pops the next
// entry from the script; once the script is exhausted Sample returns nil
// and Done is closed.
type Fake struct {
	mu      sync.Mutex
	samples [][]Keycode
	done    chan struct{}
	closed  bool
}

func NewFake(samples ...[]Keycode) *Fake {
	f := &Fake{
		samples: samples,
		done:    make(chan struct{}),
	}
	if len(samples) == 0 {
		f.finish()
	}
	return f
}

// Done is closed once the last scripted sample has been consumed.
func (f *Fake) Done() <-chan struct{} { return f.done }

func (f *Fake) Sample() []Keycode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.samples) == 0 {
		return nil
	}
	next := f.samples[0]
	f.samples = f.samples[1:]
	if len(f.samples) == 0 {
		f.finish()
	}
	return next
}

func (f *Fake) Close() {}

func (f *Fake) finish() {
	if !f.closed {
		f.closed = true
		close(f.done)
	}
}
