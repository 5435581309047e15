// Package tui provides the Bubble Tea integration for lanedash.
// It handles the terminal UI loop, input mapping, and rendering; all game
// logic lives in the sim package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the
// scheduler timestamp the simulation clock is driven by.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// timestampMs converts a wall-clock instant to the millisecond timestamps
// the simulation consumes.
func timestampMs(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}
