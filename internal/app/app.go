// Package app wires the stores, the watcher, and the four panes into
// the root Bubble Tea model.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/form"
	"github.com/bmt-tools/evidence-author/internal/keys"
	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/settings"
	"github.com/bmt-tools/evidence-author/internal/syncinfo"
	"github.com/bmt-tools/evidence-author/internal/theme"
	"github.com/bmt-tools/evidence-author/internal/ui"
	"github.com/bmt-tools/evidence-author/internal/ui/controls"
	"github.com/bmt-tools/evidence-author/internal/ui/editor"
	"github.com/bmt-tools/evidence-author/internal/ui/output"
	"github.com/bmt-tools/evidence-author/internal/ui/preview"
)

// focusArea identifies which pane owns keyboard input.
type focusArea int

const (
	focusEditor focusArea = iota
	focusPreview
)

// leftTab identifies which view fills the left pane.
type leftTab int

const (
	tabForm leftTab = iota
	tabOutput
)

// Model is the root application model.
type Model struct {
	cfg  model.AppConfig
	keys *keys.KeyMap
	now  func() time.Time

	formStore     *form.Store
	settingsStore *settings.Store

	editor   editor.Model
	preview  preview.Model
	controls controls.Model
	output   output.Model

	watcher  *syncinfo.Watcher
	syncInfo *syncinfo.Info

	layout ui.Layout
	help   help.Model

	focus focusArea
	tab   leftTab
	ready bool
}

// New creates the root model. now is injected so the preview's
// past-due arithmetic is testable; nil means time.Now.
func New(cfg model.AppConfig, initial model.EvidenceRequest, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		cfg:           cfg,
		keys:          keys.DefaultKeyMap(),
		now:           now,
		formStore:     form.NewStore(initial),
		settingsStore: settings.NewStore(now),
		editor:        editor.New(initial, 0, 0),
		preview:       preview.New(now, 0, 0),
		controls:      controls.New(0, 0),
		output:        output.New(cfg.Issue, 0, 0),
		watcher:       syncinfo.NewWatcher(cfg.Sync.LogPath, cfg.Sync.InfoURL),
		layout:        ui.NewLayout(0, 0, cfg.Display.SplitRatio),
		help:          help.New(),
	}
}

// Init starts the form and the sync watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.editor.Init(),
		m.watcher.Start(),
		m.watcher.WaitForUpdate(),
	)
}

// Update routes messages to the stores and sub-models.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.layout.Width = msg.Width
		m.layout.Height = msg.Height
		m.resizePanes()
		m.ready = true
		m.refresh()
		return m, nil

	case syncinfo.UpdatedMsg:
		m.syncInfo = msg.Info
		return m, m.watcher.WaitForUpdate()

	case editor.ResetRequestedMsg:
		rec := m.formStore.Dispatch(form.Reset{})
		cmd := m.editor.SetRecord(rec)
		m.refresh()
		return m, cmd

	case controls.ChangedMsg:
		m.settingsStore.Update(msg.Partial)
		m.refresh()
		return m, nil

	case controls.CancelMsg:
		return m, nil

	case output.CopyResultMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.delegate(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.watcher.Stop()
		return m, tea.Quit
	}

	// The settings form is modal while open.
	if m.controls.Active() {
		var cmd tea.Cmd
		m.controls, cmd = m.controls.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.FocusNext):
		if m.focus == focusEditor {
			m.focus = focusPreview
		} else {
			m.focus = focusEditor
		}
		return m, nil

	case key.Matches(msg, m.keys.TabForm):
		m.tab = tabForm
		m.focus = focusEditor
		return m, nil

	case key.Matches(msg, m.keys.TabOutput):
		m.tab = tabOutput
		m.focus = focusEditor
		m.output.Refresh(m.formStore.Record())
		return m, nil

	case key.Matches(msg, m.keys.ResetForm):
		rec := m.formStore.Dispatch(form.Reset{})
		cmd := m.editor.SetRecord(rec)
		m.refresh()
		return m, cmd
	}

	// Letter keys are page controls only while the form is not
	// capturing text.
	if m.focus == focusPreview || m.tab == tabOutput {
		switch {
		case key.Matches(msg, m.keys.GrowEditor):
			m.layout.GrowEditor()
			m.resizePanes()
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.ShrinkEditor):
			m.layout.ShrinkEditor()
			m.resizePanes()
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.ToggleViewMode):
			vm := model.ViewFirstParty
			if m.settingsStore.Settings().ViewMode == model.ViewFirstParty {
				vm = model.ViewThirdParty
			}
			m.settingsStore.Update(settings.Partial{ViewMode: &vm})
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.TogglePastDue):
			sim := !m.settingsStore.Settings().SimulatePastDue
			m.settingsStore.Update(settings.Partial{SimulatePastDue: &sim})
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.ResetSettings):
			m.settingsStore.Reset()
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.EditDates):
			return m, m.controls.Start(m.settingsStore.Settings())

		case key.Matches(msg, m.keys.Copy):
			return m, m.output.Copy()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.delegate(msg)
}

// delegate forwards a message to whichever sub-model owns input.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.controls.Active() {
		m.controls, cmd = m.controls.Update(msg)
		return m, cmd
	}

	switch {
	case m.focus == focusEditor && m.tab == tabForm:
		before := m.formStore.Record()
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
		after := m.editor.Snapshot(before)
		if dispatchChanges(m.formStore, before, after) {
			m.refresh()
		}

	case m.focus == focusEditor && m.tab == tabOutput:
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)

	default:
		m.preview, cmd = m.preview.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh recomputes the derived panes from current store state.
func (m *Model) refresh() {
	rec := m.formStore.Record()
	m.preview.Refresh(rec, m.settingsStore.Settings())
	m.output.Refresh(rec)
}

func (m *Model) resizePanes() {
	h := m.layout.ContentHeight() - 2 // panel borders
	ew := m.layout.EditorWidth() - 2
	pw := m.layout.PreviewWidth() - 2
	if h < 1 {
		h = 1
	}
	if ew < 1 {
		ew = 1
	}
	if pw < 1 {
		pw = 1
	}
	m.editor.SetSize(ew, h)
	m.output.SetSize(ew, h)
	m.preview.SetSize(pw, h)
	m.controls.SetSize(pw, h)
	m.help.Width = m.layout.Width
}

// View renders the full terminal frame.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.layout.RenderHeader("Evidence Request Author", m.syncIndicator())

	left := m.editor.View()
	if m.tab == tabOutput {
		left = m.output.View()
	}
	right := m.preview.View()
	if m.controls.Active() {
		right = m.controls.View()
	}

	leftStyle := theme.PanelStyle
	rightStyle := theme.PanelStyle
	if m.focus == focusEditor {
		leftStyle = theme.FocusedPanelStyle
	} else {
		rightStyle = theme.FocusedPanelStyle
	}

	content := m.layout.RenderSplit(
		leftStyle.Width(m.layout.EditorWidth()-2).Height(m.layout.ContentHeight()-2).Render(left),
		rightStyle.Width(m.layout.PreviewWidth()-2).Height(m.layout.ContentHeight()-2).Render(right),
	)

	if m.help.ShowAll {
		content = lipgloss.Place(
			m.layout.Width, m.layout.ContentHeight(),
			lipgloss.Center, lipgloss.Center,
			theme.PanelStyle.Render(m.help.View(m.keys)),
		)
	}

	statusBar := m.layout.RenderStatusBar(m.help.View(m.keys))
	if m.help.ShowAll {
		statusBar = m.layout.RenderStatusBar(theme.HelpStyle.Render("? close help"))
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}
