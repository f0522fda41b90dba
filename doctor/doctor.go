// Package doctor runs interactive system diagnostics for keybind.
package doctor

import (
	"fmt"
	"time"

	"keybind"
	"keybind/keymap"
	"keybind/keystate"
)

const chordTimeout = 10 * time.Second

// Run executes interactive diagnostic checks for the given chord and
// returns an exit code (0=all pass, 1=any fail).
func Run(keys []keystate.Keycode) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("keybind doctor - interactive system diagnostics")
	fmt.Println("================================================")

	allPass := true

	if !checkSource() {
		allPass = false
	}
	if allPass && !checkChord(keys) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func checkSource() bool {
	fmt.Println()
	fmt.Println("[1/2] Key state source")

	msg, err := keystate.Diagnose()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkChord(keys []keystate.Keycode) bool {
	fmt.Println()
	fmt.Println("[2/2] Chord detection")
	fmt.Printf("Press %s...\n", keymap.Format(keys))

	kb, err := keybind.New(keys...)
	if err != nil {
		fmt.Printf("  FAIL: could not create detector: %v\n", err)
		return false
	}
	defer kb.Close()

	fired := make(chan struct{}, 1)
	stop := make(chan struct{})
	kb.OnTrigger(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	go kb.WaitUntil(stop)
	defer close(stop)

	select {
	case <-fired:
		fmt.Println("  PASS: chord detected")
		// The chord may leave the terminal in a strange state
		resetTerminal()
		return true
	case <-time.After(chordTimeout):
		fmt.Println("  FAIL: timeout waiting for chord")
		return false
	}
}
