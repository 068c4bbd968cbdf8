package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/theme"
)

// Split-ratio bounds for the editor pane, mirroring the clamped
// divider of the original two-column layout.
const (
	MinSplitRatio  = 0.20
	MaxSplitRatio  = 0.80
	SplitRatioStep = 0.02
)

// Layout manages the two-pane terminal layout: editor on the left,
// preview on the right, divided at an adjustable ratio.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	SplitRatio      float64
}

// NewLayout creates a Layout with the given terminal dimensions and
// starting split ratio. HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int, ratio float64) Layout {
	l := Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		SplitRatio:      ratio,
	}
	l.SplitRatio = clampRatio(l.SplitRatio)
	return l
}

func clampRatio(r float64) float64 {
	if r < MinSplitRatio {
		return MinSplitRatio
	}
	if r > MaxSplitRatio {
		return MaxSplitRatio
	}
	return r
}

// GrowEditor widens the editor pane by one step, clamped.
func (l *Layout) GrowEditor() {
	l.SplitRatio = clampRatio(l.SplitRatio + SplitRatioStep)
}

// ShrinkEditor narrows the editor pane by one step, clamped.
func (l *Layout) ShrinkEditor() {
	l.SplitRatio = clampRatio(l.SplitRatio - SplitRatioStep)
}

// ContentHeight returns the height available for the panes, accounting
// for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// EditorWidth returns the editor pane's outer width.
func (l Layout) EditorWidth() int {
	w := int(float64(l.Width) * l.SplitRatio)
	if w < 1 {
		w = 1
	}
	if w >= l.Width {
		w = l.Width - 1
	}
	return w
}

// PreviewWidth returns the preview pane's outer width.
func (l Layout) PreviewWidth() int {
	return l.Width - l.EditorWidth()
}

// RenderHeader renders the top header bar with a title and the sync
// indicator.
func (l Layout) RenderHeader(title string, indicator string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(indicator)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderSplit joins the editor and preview panes side by side.
func (l Layout) RenderSplit(editor, preview string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
