package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI message types
type FiredMsg struct{ Chord string }
type tickMsg time.Time

// flashFor keeps a fired chord highlighted long enough to be seen.
const flashFor = 600 * time.Millisecond

var (
	tuiProgram *tea.Program
	tuiMu      sync.Mutex
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	armedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	firedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
)

type chordRow struct {
	chord string
	fires int
	last  time.Time
}

type tuiModel struct {
	rows          []chordRow
	width, height int
	version       string
	total         int
}

func startTUI(watches []*watch, version string) {
	rows := make([]chordRow, len(watches))
	for i, w := range watches {
		rows[i] = chordRow{chord: w.chord}
	}
	m := tuiModel{rows: rows, version: version}

	tuiMu.Lock()
	tuiProgram = tea.NewProgram(m, tea.WithAltScreen())
	tuiMu.Unlock()
}

func runTUI() {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Run()
	}
}

func quitTUI() {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func tuiActive() bool {
	tuiMu.Lock()
	defer tuiMu.Unlock()
	return tuiProgram != nil
}

func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func tuiTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		// Redraw so fired highlights decay.
		return m, tuiTick()

	case FiredMsg:
		m.total++
		for i := range m.rows {
			if m.rows[i].chord == msg.Chord {
				m.rows[i].fires++
				m.rows[i].last = time.Now()
			}
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("keybind "+m.version) + "\n\n")

	chordWidth := 0
	for _, r := range m.rows {
		if len(r.chord) > chordWidth {
			chordWidth = len(r.chord)
		}
	}

	for _, r := range m.rows {
		hot := !r.last.IsZero() && time.Since(r.last) < flashFor
		marker := "○"
		style := armedStyle
		if hot {
			marker = "●"
			style = firedStyle
		}
		line := fmt.Sprintf("%s %-*s", marker, chordWidth, r.chord)
		b.WriteString(style.Render(line))
		b.WriteString(countStyle.Render(fmt.Sprintf("  %d", r.fires)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d total", m.total)) + "\n")
	b.WriteString(helpStyle.Render("q or ctrl+c to quit") + "\n")
	return b.String()
}
