package keybind

import (
	"testing"
	"time"

	"keybind/keystate"
)

const (
	ctrl  = keystate.KeyLeftCtrl
	shift = keystate.KeyLeftShift
	keyA  = keystate.KeyA
	keyG  = keystate.KeyG
)

func runScript(t *testing.T, chord []Keycode, samples ...[]Keycode) []bool {
	t.Helper()
	kb, err := NewWithSource(keystate.NewFake(samples...), chord...)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]bool, len(samples))
	for i := range samples {
		got[i] = kb.Triggered()
	}
	return got
}

func boolsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScriptedScenarios(t *testing.T) {
	tests := []struct {
		name    string
		chord   []Keycode
		samples [][]Keycode
		want    []bool
	}{
		{
			name:    "press and release",
			chord:   []Keycode{ctrl, keyG},
			samples: [][]Keycode{{}, {ctrl}, {ctrl, keyG}, {ctrl, keyG}, {ctrl}, {}},
			want:    []bool{false, false, true, false, false, false},
		},
		{
			name:    "superset then exact match",
			chord:   []Keycode{ctrl, keyG},
			samples: [][]Keycode{{ctrl, keyG, shift}, {ctrl, keyG}},
			want:    []bool{false, true},
		},
		{
			name:    "reorder is not a new press",
			chord:   []Keycode{ctrl, keyG},
			samples: [][]Keycode{{keyG, ctrl}, {ctrl, keyG}},
			want:    []bool{true, false},
		},
		{
			name:    "re-press fires every time",
			chord:   []Keycode{ctrl, keyG},
			samples: [][]Keycode{{ctrl, keyG}, {}, {ctrl, keyG}, {}, {ctrl, keyG}},
			want:    []bool{true, false, true, false, true},
		},
		{
			name:    "single-key chord",
			chord:   []Keycode{keyA},
			samples: [][]Keycode{{keyA}, {keyA}, {}, {keyA}},
			want:    []bool{true, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runScript(t, tt.chord, tt.samples...)
			if !boolsEqual(got, tt.want) {
				t.Errorf("tick results = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRisingEdgePerMatchingRun(t *testing.T) {
	// Three maximal runs of the target set, each preceded by a
	// non-matching sample (the initial empty prior counts as one).
	samples := [][]Keycode{
		{},
		{ctrl},
		{ctrl, keyG},
		{ctrl, keyG},
		{keyG, ctrl},
		{ctrl},
		{ctrl, keyG},
		{ctrl, keyG, shift},
		{ctrl, keyG},
		{},
	}
	got := runScript(t, []Keycode{ctrl, keyG}, samples...)

	fires := 0
	for _, fired := range got {
		if fired {
			fires++
		}
	}
	if fires != 3 {
		t.Errorf("got %d rising edges, want 3 (results %v)", fires, got)
	}
	for _, i := range []int{2, 6, 8} {
		if !got[i] {
			t.Errorf("expected rising edge at tick %d (results %v)", i, got)
		}
	}
}

func TestSupersetNeverFires(t *testing.T) {
	samples := [][]Keycode{
		{ctrl, keyG, shift},
		{shift, ctrl, keyG},
		{ctrl, keyG, keyA},
		{ctrl, keyG, shift, keyA},
	}
	for i, fired := range runScript(t, []Keycode{ctrl, keyG}, samples...) {
		if fired {
			t.Errorf("tick %d fired on a strict superset", i)
		}
	}
}

func TestSubsetNeverFires(t *testing.T) {
	samples := [][]Keycode{
		{},
		{ctrl},
		{keyG},
		{ctrl},
		{shift},
		{},
	}
	for i, fired := range runScript(t, []Keycode{ctrl, keyG}, samples...) {
		if fired {
			t.Errorf("tick %d fired without the full chord held", i)
		}
	}
}

func TestOrderInsensitivity(t *testing.T) {
	chord := []Keycode{ctrl, shift, keyG}
	straight := [][]Keycode{
		{},
		{ctrl, shift, keyG},
		{ctrl, shift, keyG},
		{shift, ctrl},
		{ctrl, shift, keyG},
	}
	permuted := [][]Keycode{
		{},
		{keyG, ctrl, shift},
		{shift, keyG, ctrl},
		{ctrl, shift},
		{shift, ctrl, keyG},
	}

	a := runScript(t, chord, straight...)
	b := runScript(t, chord, permuted...)
	if !boolsEqual(a, b) {
		t.Errorf("permuted samples changed results: %v vs %v", a, b)
	}
}

func TestHoldFiresOnce(t *testing.T) {
	samples := make([][]Keycode, 50)
	for i := range samples {
		samples[i] = []Keycode{ctrl, keyG}
	}
	got := runScript(t, []Keycode{ctrl, keyG}, samples...)

	if !got[0] {
		t.Error("expected rising edge on first matching tick")
	}
	for i := 1; i < len(got); i++ {
		if got[i] {
			t.Errorf("tick %d re-fired while chord was held", i)
		}
	}
}

func TestRearmAfterRelease(t *testing.T) {
	got := runScript(t, []Keycode{ctrl, keyG},
		[]Keycode{ctrl, keyG},
		[]Keycode{ctrl},
		[]Keycode{ctrl, keyG},
	)
	want := []bool{true, false, true}
	if !boolsEqual(got, want) {
		t.Errorf("tick results = %v, want %v", got, want)
	}
}

func TestEmptyChordRejected(t *testing.T) {
	if _, err := New(); err != ErrEmptyChord {
		t.Errorf("New() error = %v, want ErrEmptyChord", err)
	}
	if _, err := NewWithSource(keystate.NewFake()); err != ErrEmptyChord {
		t.Errorf("NewWithSource() error = %v, want ErrEmptyChord", err)
	}

	kb, err := NewWithSource(keystate.NewFake(), ctrl, keyG)
	if err != nil {
		t.Fatalf("non-empty chord rejected: %v", err)
	}
	if kb == nil {
		t.Fatal("expected a detector")
	}
}

func TestDuplicateChordKeysCollapse(t *testing.T) {
	kb, err := NewWithSource(
		keystate.NewFake([]Keycode{ctrl, keyG}),
		ctrl, ctrl, keyG, keyG,
	)
	if err != nil {
		t.Fatal(err)
	}
	if keys := kb.Keys(); len(keys) != 2 {
		t.Errorf("Keys() = %v, want 2 deduplicated keys", keys)
	}
	if !kb.Triggered() {
		t.Error("expected exact match to fire against deduplicated chord")
	}
}

func TestFailedSampleTreatedAsEmpty(t *testing.T) {
	// A provider absorbing a read failure returns nil; that must re-arm
	// the detector exactly like an observed release.
	got := runScript(t, []Keycode{ctrl, keyG},
		[]Keycode{ctrl, keyG},
		nil,
		[]Keycode{ctrl, keyG},
	)
	want := []bool{true, false, true}
	if !boolsEqual(got, want) {
		t.Errorf("tick results = %v, want %v", got, want)
	}
}

func TestWaitUntilInvokesActionPerEdge(t *testing.T) {
	fake := keystate.NewFake(
		[]Keycode{},
		[]Keycode{ctrl, keyG},
		[]Keycode{ctrl, keyG},
		[]Keycode{},
		[]Keycode{ctrl, keyG},
		[]Keycode{},
	)
	kb, err := NewWithSource(fake, ctrl, keyG)
	if err != nil {
		t.Fatal(err)
	}
	kb.SetPollInterval(time.Microsecond)

	invoked := 0
	kb.OnTrigger(func() { invoked++ })

	done := make(chan struct{})
	go func() {
		kb.WaitUntil(fake.Done())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitUntil did not return after the script was exhausted")
	}
	if invoked != 2 {
		t.Errorf("action invoked %d times, want 2", invoked)
	}
}

func TestOnTriggerReplacesAction(t *testing.T) {
	kb, err := NewWithSource(
		keystate.NewFake([]Keycode{keyA}, []Keycode{}, []Keycode{keyA}),
		keyA,
	)
	if err != nil {
		t.Fatal(err)
	}

	var first, second int
	kb.OnTrigger(func() { first++ })
	if kb.Triggered() {
		kb.action()
	}

	kb.OnTrigger(func() { second++ })
	kb.Triggered() // release tick
	if kb.Triggered() {
		kb.action()
	}

	if first != 1 || second != 1 {
		t.Errorf("first action ran %d times, second %d; want 1 and 1", first, second)
	}
}
