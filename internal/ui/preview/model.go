// Package preview is the right-pane live rendering of the production
// claims-status page. It re-derives the resolved page content on every
// record or settings change; soft-validation advisories replace the
// page until the record is previewable.
package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/markdown"
	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/resolve"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// Model is the preview pane component.
type Model struct {
	viewport viewport.Model
	md       *markdown.Renderer
	now      func() time.Time
	width    int
	height   int
}

// New creates the preview pane. now is injected so the past-due logic
// stays deterministic under test.
func New(now func() time.Time, width, height int) Model {
	if now == nil {
		now = time.Now
	}

	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	md, err := markdown.New(contentWidth(width))
	if err != nil {
		md = nil
	}

	return Model{
		viewport: vp,
		md:       md,
		now:      now,
		width:    width,
		height:   height,
	}
}

func contentWidth(width int) int {
	w := width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// Refresh re-derives the page from the record and settings. Advisories
// suppress the page and show their messages instead.
func (m *Model) Refresh(rec model.EvidenceRequest, set model.PreviewSettings) {
	if advisories := rec.Advisories(); len(advisories) > 0 {
		var lines []string
		for _, a := range advisories {
			lines = append(lines, theme.AdvisoryStyle.Render(a.Message))
		}
		m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, lines...))
		m.viewport.GotoTop()
		return
	}

	pc := resolve.Page(rec, set, m.now(), resolve.DictionaryFromRecord(rec))
	m.viewport.SetContent(renderPage(pc, m.md, contentWidth(m.width)))
}

// Update delegates scrolling to the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the pane.
func (m Model) View() string {
	title := theme.PanelTitleStyle.Render("Preview")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
}

// SetSize updates the pane dimensions and re-wraps markdown.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.md != nil {
		_ = m.md.SetWidth(contentWidth(width))
	}
}
