// Package tui provides the Bubble Tea display driver. It owns the terminal
// through a tea.Program and drives a snake.Session from poll ticks and key
// messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg is sent once per poll interval to advance the session cadence.
type PollMsg time.Time

// pollCmd schedules the next poll after interval.
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
