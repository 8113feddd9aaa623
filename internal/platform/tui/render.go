package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raymarch/internal/core"
	"github.com/vovakirdan/tui-raymarch/internal/render"
)

// CursorHome moves the cursor to the top-left cell so each frame
// overwrites the previous one in place.
const CursorHome = "\x1b[0;0H"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// appendFrame appends the cursor-home sequence and the frame buffer to dst.
func appendFrame(dst []byte, f *core.Frame) []byte {
	dst = append(dst, CursorHome...)
	return append(dst, f.Bytes()...)
}

// statusLine summarizes the viewer state under the frame.
func statusLine(title string, seconds float32, frames int, stats render.FrameStats, paused bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  t=%.3fs  frame %d  hits %d  exhausted %d  %s",
		seconds, frames, stats.Hits, stats.Exhausted, stats.RenderTime.Round(10*time.Microsecond))))
	if paused {
		b.WriteString("  ")
		b.WriteString(pausedStyle.Render("PAUSED"))
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
