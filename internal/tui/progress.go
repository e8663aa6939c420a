// Package tui renders a live bubbletea view of a running solve, polling a
// solver.Progress handle on a fixed tick while the search itself runs on a
// background goroutine.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/solver"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const pollInterval = 100 * time.Millisecond

type tickMsg time.Time

type doneMsg struct {
	moves []cube.Move
	err   error
}

// Watch runs the solver against c under an interactive progress display and
// returns the solution, mirroring solver.Solve's contract.
func Watch(c *cube.Cube, scramble []cube.Move) ([]cube.Move, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := &model{ctx: ctx, cancel: cancel, cube: c, scramble: scramble}
	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: run program: %w", err)
	}
	fm := final.(*model)
	return fm.result, fm.err
}

type model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cube     *cube.Cube
	scramble []cube.Move
	progress solver.Progress

	started  bool
	finished bool
	result   []cube.Move
	err      error
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.startSolve(), tick())
}

func (m *model) startSolve() tea.Cmd {
	return func() tea.Msg {
		moves, err := solver.Solve(m.ctx, m.cube, &m.progress)
		return doneMsg{moves: moves, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}

	case tickMsg:
		if m.finished {
			return m, nil
		}
		return m, tick()

	case doneMsg:
		m.finished = true
		m.result = msg.moves
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) View() string {
	var s string
	s += titleStyle.Render("cubesolve") + "\n\n"
	s += statusStyle.Render("scramble: "+cube.FormatMoves(m.scramble)) + "\n\n"

	if m.finished {
		if m.err != nil {
			s += errorStyle.Render("error: "+m.err.Error()) + "\n"
		} else {
			s += resultStyle.Render(fmt.Sprintf("solved in %d moves: %s", len(m.result), cube.FormatMoves(m.result))) + "\n"
		}
	} else {
		depth := m.progress.Depth.Load()
		nodes := m.progress.Nodes.Load()
		if depth < 0 {
			s += statusStyle.Render("building tables...") + "\n"
		} else {
			s += statusStyle.Render(fmt.Sprintf("phase 1 depth %d, %d nodes explored", depth, nodes)) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("q/esc to cancel")
	return s
}
