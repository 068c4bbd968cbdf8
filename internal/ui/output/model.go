// Package output is the issue-text tab: the generated ticket title,
// the tracker URL, and the full body, with best-effort clipboard copy.
package output

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/clipboard"
	"github.com/bmt-tools/evidence-author/internal/issue"
	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// CopyResultMsg reports whether the clipboard write succeeded.
type CopyResultMsg struct {
	OK bool
}

// copyRevertMsg clears the transient "copied" affirmation.
type copyRevertMsg struct{}

// copiedFlashDuration is how long the affirmation stays visible.
const copiedFlashDuration = 2 * time.Second

// Model is the issue output tab component.
type Model struct {
	viewport viewport.Model
	cfg      model.IssueConfig

	body   string
	title  string
	url    string
	copied bool
	failed bool

	width  int
	height int
}

// New creates the output tab.
func New(cfg model.IssueConfig, width, height int) Model {
	vp := viewport.New(width, height-4)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		cfg:      cfg,
		width:    width,
		height:   height,
	}
}

// Refresh regenerates the issue text from the record.
func (m *Model) Refresh(rec model.EvidenceRequest) {
	m.body = issue.Generate(rec)
	m.title = issue.Title(rec)
	m.url = issue.URL(rec, m.cfg)
	m.viewport.SetContent(m.body)
}

// Copy returns a command that writes the issue body to the clipboard.
func (m Model) Copy() tea.Cmd {
	body := m.body
	return func() tea.Msg {
		return CopyResultMsg{OK: clipboard.Copy(body)}
	}
}

// Update handles messages for the output tab.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CopyResultMsg:
		m.copied = msg.OK
		m.failed = !msg.OK
		return m, tea.Tick(copiedFlashDuration, func(time.Time) tea.Msg {
			return copyRevertMsg{}
		})

	case copyRevertMsg:
		m.copied = false
		m.failed = false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the output tab.
func (m Model) View() string {
	header := []string{
		theme.PanelTitleStyle.Render("Issue Output"),
		theme.HelpStyle.Render(m.title),
		theme.SyncIndicatorStyle.Render(m.url),
	}

	switch {
	case m.copied:
		header = append(header, theme.CopiedStyle.Render("Copied to clipboard"))
	case m.failed:
		header = append(header, theme.ErrorStyle.Render("Copy failed"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, header...),
		m.viewport.View(),
	)
}

// SetSize updates the tab dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 4
}
