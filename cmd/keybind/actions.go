package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"keybind/log"
)

// defaultAction runs command when given, otherwise announces the trigger.
func defaultAction(chord, command string) func() {
	if command != "" {
		return runAction(command)
	}
	return func() { announce(chord) }
}

func runAction(command string) func() {
	return func() {
		out, err := shellCommand(command).CombinedOutput()
		if err != nil {
			log.Errorf("command failed: %v: %s", err, out)
		}
	}
}

func copyAction(text string) func() {
	return func() {
		if err := clipboard.WriteAll(text); err != nil {
			log.Errorf("clipboard write failed: %v", err)
		}
	}
}

func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", command)
	}
	return exec.Command("/bin/sh", "-c", command)
}

// announce prints to stdout unless the TUI owns the terminal; the TUI
// shows the fire through FiredMsg instead.
func announce(chord string) {
	if tuiActive() {
		return
	}
	fmt.Printf("%s triggered\n", chord)
}
