// Package tui provides the Bubble Tea front end for the flappy engine.
// It owns the terminal loop, drives the fixed-rate tick, maps keys to engine
// input and draws snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Gen identifies the session timer that produced it; stale ticks are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd schedules one tick after interval. The timer is re-armed by the
// model after each tick it accepts, so ticks never pile up.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
