// Package tui provides the Bubble Tea integration for the lane runner.
// It handles the terminal UI loop, input mapping, score saving and the
// SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a stale loop left behind by a previous game
// in the same program is dropped.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopCounter atomic.Uint64

func nextLoop() uint64 {
	return loopCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
