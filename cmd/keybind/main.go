package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"keybind"
	"keybind/bindings"
	"keybind/doctor"
	"keybind/keymap"
	"keybind/log"
	"keybind/shutdown"
)

var version = "dev"

// watch pairs one detector with its display name and action.
type watch struct {
	chord  string
	kb     *keybind.Keybind
	action func()
}

func run() {
	chordFlag := flag.String("chord", "ctrl+g", "chord to watch, e.g. ctrl+shift+g")
	runFlag := flag.String("run", "", "shell command to execute on trigger (default: print a line)")
	configFlag := flag.String("config", "", "TOML bindings file (overrides -chord and -run)")
	intervalFlag := flag.Duration("interval", 5*time.Millisecond, "delay between key state polls")
	tuiFlag := flag.Bool("tui", false, "run with terminal UI")
	doctorFlag := flag.Bool("doctor", false, "run system diagnostics and exit")
	versionFlag := flag.Bool("version", false, "print version and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("keybind %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	if *doctorFlag {
		keys, err := keymap.Parse(*chordFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(doctor.Run(keys))
	}

	watches, err := assembleWatches(*configFlag, *chordFlag, *runFlag)
	if err != nil {
		log.Errorf("setup error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		for _, w := range watches {
			w.kb.Close()
		}
	}()

	log.SessionStart(len(watches), *intervalFlag)

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)

	stop := make(chan struct{})
	var stopOnce sync.Once
	requestStop := func() { stopOnce.Do(func() { close(stop) }) }
	go func() {
		<-sigChan
		requestStop()
	}()

	if *tuiFlag && term.IsTerminal(int(os.Stdout.Fd())) {
		startTUI(watches, version)
		go func() {
			// Returns when the user quits the TUI (ctrl+c).
			runTUI()
			requestStop()
		}()
	} else {
		for _, w := range watches {
			fmt.Printf("watching %s\n", w.chord)
		}
	}

	fires := pollLoop(watches, *intervalFlag, stop)

	quitTUI()
	log.SessionEnd(fires)
}

// pollLoop ticks every detector in turn on a single goroutine, which
// serializes access to the key state sources. Actions run synchronously;
// chord state does not advance while one executes.
func pollLoop(watches []*watch, interval time.Duration, stop <-chan struct{}) int {
	total := 0
	for {
		for _, w := range watches {
			if !w.kb.Triggered() {
				continue
			}
			total++
			log.Trigger(w.chord)
			tuiSend(FiredMsg{Chord: w.chord})
			w.action()
		}
		select {
		case <-stop:
			return total
		case <-time.After(interval):
		}
	}
}

func assembleWatches(configPath, chord, command string) ([]*watch, error) {
	if configPath == "" {
		w, err := newWatch(chord, defaultAction(chord, command))
		if err != nil {
			return nil, err
		}
		return []*watch{w}, nil
	}

	cfg, err := bindings.Load(configPath)
	if err != nil {
		return nil, err
	}
	var watches []*watch
	for _, b := range cfg.Binding {
		var action func()
		if b.Run != "" {
			action = runAction(b.Run)
		} else {
			action = copyAction(b.Copy)
		}
		w, err := newWatch(b.Chord, action)
		if err != nil {
			for _, prev := range watches {
				prev.kb.Close()
			}
			return nil, err
		}
		watches = append(watches, w)
	}
	return watches, nil
}

func newWatch(chord string, action func()) (*watch, error) {
	keys, err := keymap.Parse(chord)
	if err != nil {
		return nil, err
	}
	kb, err := keybind.New(keys...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", chord, err)
	}
	w := &watch{chord: chord, kb: kb, action: action}
	return w, nil
}
