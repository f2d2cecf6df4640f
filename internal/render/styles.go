package render

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#4682B4")
	freeColor    = lipgloss.Color("#90EE90")
	usedColor    = lipgloss.Color("#FF6347")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")
	inkColor     = lipgloss.Color("#1A1A1A")
)

// styles holds the lipgloss styles for one Renderer. With color disabled
// every style only pads and aligns.
type styles struct {
	header  lipgloss.Style
	cell    lipgloss.Style
	free    lipgloss.Style
	used    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	s := styles{
		header:  r.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center),
		cell:    r.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		success: r.NewStyle(),
		failure: r.NewStyle(),
		muted:   r.NewStyle(),
	}
	s.free = s.cell
	s.used = s.cell

	if !color {
		return s
	}

	s.header = s.header.Foreground(primaryColor)
	s.free = s.cell.Background(freeColor).Foreground(inkColor)
	s.used = s.cell.Background(usedColor).Foreground(inkColor)
	s.success = s.success.Foreground(successColor)
	s.failure = s.failure.Foreground(errorColor).Bold(true)
	s.muted = s.muted.Foreground(mutedColor)
	return s
}
