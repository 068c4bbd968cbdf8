// Package controls is the modal form for the preview settings: view
// mode, simulated dates, and the past-due toggle. It edits only the
// settings store; the form record is untouched.
package controls

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/settings"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// ChangedMsg is dispatched when the user submits the settings form.
type ChangedMsg struct {
	Partial settings.Partial
}

// CancelMsg is dispatched when the user closes the form unchanged.
type CancelMsg struct{}

// formBindings holds field values on the heap so huh's Value()
// pointers survive Bubble Tea model copies.
type formBindings struct {
	viewMode        model.ViewMode
	suspenseDate    string
	requestedDate   string
	simulatePastDue bool
}

// Model is the Bubble Tea model for the preview settings form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates the settings form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form from the current settings.
func (m *Model) Start(set model.PreviewSettings) tea.Cmd {
	m.fb.viewMode = set.ViewMode
	m.fb.suspenseDate = set.SuspenseDate
	m.fb.requestedDate = set.RequestedDate
	m.fb.simulatePastDue = set.SimulatePastDue
	m.form = m.buildForm()
	return m.form.Init()
}

// Active reports whether the form is open.
func (m Model) Active() bool {
	return m.form != nil
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.form = nil
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

func (m Model) handleSubmit() tea.Cmd {
	fb := m.fb
	viewMode := fb.viewMode
	suspense := fb.suspenseDate
	requested := fb.requestedDate
	simulate := fb.simulatePastDue

	return func() tea.Msg {
		return ChangedMsg{Partial: settings.Partial{
			ViewMode:        &viewMode,
			SuspenseDate:    &suspense,
			RequestedDate:   &requested,
			SimulatePastDue: &simulate,
		}}
	}
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	title := theme.PanelTitleStyle.Render("Preview Settings")
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.View()))
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fb := m.fb
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.ViewMode]().
				Title("View mode").
				Options(
					huh.NewOption("First party (needed from you)", model.ViewFirstParty),
					huh.NewOption("Third party (needed from others)", model.ViewThirdParty),
				).
				Value(&fb.viewMode),
			huh.NewInput().
				Title("Suspense date").
				Placeholder("YYYY-MM-DD").
				Value(&fb.suspenseDate).
				Validate(validateISODate),
			huh.NewInput().
				Title("Requested date").
				Placeholder("YYYY-MM-DD").
				Value(&fb.requestedDate).
				Validate(validateISODate),
			huh.NewConfirm().
				Title("Simulate past due").
				Affirmative("on").
				Negative("off").
				Value(&fb.simulatePastDue),
		),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func validateISODate(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(model.ISODate, v); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
