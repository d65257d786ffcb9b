// Package tui provides the Bubble Tea front-end for the display driver.
// It plays the monitor's role: themes map hardware color codes to terminal
// colors, the renderer turns captured frames into styled text, and the
// viewer polls a memory region and draws it live.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame capture.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// refresh rate in frames per second.
func tickCmd(refreshRate int) tea.Cmd {
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
