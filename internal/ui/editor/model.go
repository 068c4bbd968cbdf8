// Package editor is the left-pane form for an EvidenceRequest. It is a
// thin huh front end: bindings mirror the record, and the app diffs a
// Snapshot of them against the store after every update.
package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// ResetRequestedMsg is dispatched when the user aborts the form,
// asking the app to restore the default record.
type ResetRequestedMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	displayName  string
	friendlyName string
	aliases      string

	shortDescription    string
	activityDescription string

	canUploadFile   bool
	noActionNeeded  bool
	isDBQ           bool
	isProperNoun    bool
	isSensitive     bool
	noProvidePrefix bool

	longDescriptionContent string
	longDescriptionNotes   string
	nextStepsContent       string
	nextStepsNotes         string

	additionalContext string
	linksResources    string

	acceptanceCriteria string
}

// Model is the Bubble Tea model for the evidence request form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates the form model seeded from the given record.
func New(rec model.EvidenceRequest, width, height int) Model {
	m := Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
	m.populate(rec)
	m.form = m.buildForm()
	return m
}

// Init starts the underlying huh form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetRecord reloads the bindings from a record (whole-record
// replacement, e.g. after loading a file or resetting) and rebuilds
// the form.
func (m *Model) SetRecord(rec model.EvidenceRequest) tea.Cmd {
	m.populate(rec)
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) populate(rec model.EvidenceRequest) {
	fb := m.fb
	fb.displayName = rec.DisplayName
	fb.friendlyName = rec.FriendlyName
	fb.aliases = strings.Join(rec.SupportAliases, "\n")
	fb.shortDescription = rec.ShortDescription
	fb.activityDescription = rec.ActivityDescription
	fb.canUploadFile = rec.CanUploadFile
	fb.noActionNeeded = rec.NoActionNeeded
	fb.isDBQ = rec.IsDBQ
	fb.isProperNoun = rec.IsProperNoun
	fb.isSensitive = rec.IsSensitive
	fb.noProvidePrefix = rec.NoProvidePrefix
	fb.longDescriptionContent = rec.LongDescriptionContent
	fb.longDescriptionNotes = rec.LongDescriptionNotes
	fb.nextStepsContent = rec.NextStepsContent
	fb.nextStepsNotes = rec.NextStepsNotes
	fb.additionalContext = rec.AdditionalContext
	fb.linksResources = rec.LinksResources
	fb.acceptanceCriteria = criteriaToLines(rec.AcceptanceCriteria)
}

// Snapshot builds a record from the current bindings. Criterion IDs are
// carried over from prev where labels still match, so checklist edits
// stay stable.
func (m Model) Snapshot(prev model.EvidenceRequest) model.EvidenceRequest {
	fb := m.fb
	rec := model.EvidenceRequest{
		DisplayName:            fb.displayName,
		FriendlyName:           fb.friendlyName,
		SupportAliases:         splitAliases(fb.aliases),
		ShortDescription:       fb.shortDescription,
		ActivityDescription:    fb.activityDescription,
		CanUploadFile:          fb.canUploadFile,
		NoActionNeeded:         fb.noActionNeeded,
		IsDBQ:                  fb.isDBQ,
		IsProperNoun:           fb.isProperNoun,
		IsSensitive:            fb.isSensitive,
		NoProvidePrefix:        fb.noProvidePrefix,
		LongDescriptionContent: fb.longDescriptionContent,
		LongDescriptionNotes:   fb.longDescriptionNotes,
		NextStepsContent:       fb.nextStepsContent,
		NextStepsNotes:         fb.nextStepsNotes,
		AdditionalContext:      fb.additionalContext,
		LinksResources:         fb.linksResources,
		AcceptanceCriteria:     linesToCriteria(fb.acceptanceCriteria, prev.AcceptanceCriteria),
	}
	return rec
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return ResetRequestedMsg{} }
	}
	if m.form.State == huh.StateCompleted {
		// Authoring never finishes; reopen the form with the current
		// values so the editor can keep iterating.
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	return m, cmd
}

// View renders the form pane.
func (m Model) View() string {
	title := theme.PanelTitleStyle.Render("Evidence Request")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.form.View())
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.buildForm()
}

func (m *Model) buildForm() *huh.Form {
	fb := m.fb
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display Name (API Key)").
				Placeholder("e.g. 21-4142/21-4142a").
				Value(&fb.displayName),
			huh.NewInput().
				Title("Friendly Name").
				Placeholder("Human-readable label").
				Value(&fb.friendlyName),
			huh.NewText().
				Title("Support Aliases").
				Description("One alias per line").
				Value(&fb.aliases),
		).Title("Basic Info"),

		huh.NewGroup(
			huh.NewText().
				Title("Short Description").
				Value(&fb.shortDescription),
			huh.NewText().
				Title("Activity Description").
				Value(&fb.activityDescription),
		).Title("Description"),

		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("canUploadFile").
				Options(
					huh.NewOption("yes", true),
					huh.NewOption("no", false),
				).
				Value(&fb.canUploadFile),
			huh.NewSelect[bool]().
				Title("noActionNeeded").
				Options(
					huh.NewOption("yes (noActionNeeded = false)", false),
					huh.NewOption("no (noActionNeeded = true)", true),
				).
				Value(&fb.noActionNeeded),
			huh.NewSelect[bool]().
				Title("isDBQ").
				Options(
					huh.NewOption("no", false),
					huh.NewOption("yes", true),
				).
				Value(&fb.isDBQ),
			huh.NewSelect[bool]().
				Title("isProperNoun").
				Options(
					huh.NewOption("no", false),
					huh.NewOption("yes", true),
				).
				Value(&fb.isProperNoun),
			huh.NewSelect[bool]().
				Title("isSensitive").
				Options(
					huh.NewOption("no", false),
					huh.NewOption("yes", true),
				).
				Value(&fb.isSensitive),
			huh.NewSelect[bool]().
				Title("noProvidePrefix").
				Options(
					huh.NewOption("no", false),
					huh.NewOption("yes", true),
				).
				Value(&fb.noProvidePrefix),
		).Title("Flags"),

		huh.NewGroup(
			huh.NewText().
				Title("Long Description Content").
				Description("Markdown shown as the page description").
				Value(&fb.longDescriptionContent),
			huh.NewText().
				Title("Long Description Notes").
				Description("Editor-only, never previewed").
				Value(&fb.longDescriptionNotes),
			huh.NewText().
				Title("Next Steps Content").
				Description("Markdown shown under Next steps").
				Value(&fb.nextStepsContent),
			huh.NewText().
				Title("Next Steps Notes").
				Description("Editor-only, never previewed").
				Value(&fb.nextStepsNotes),
		).Title("Content"),

		huh.NewGroup(
			huh.NewText().
				Title("Additional Context").
				Value(&fb.additionalContext),
			huh.NewText().
				Title("Links & Resources").
				Value(&fb.linksResources),
			huh.NewText().
				Title("Acceptance Criteria").
				Description("One \"- [ ] item\" per line").
				Value(&fb.acceptanceCriteria),
		).Title("Metadata"),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func splitAliases(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func criteriaToLines(criteria []model.AcceptanceCriterion) string {
	lines := make([]string, 0, len(criteria))
	for _, c := range criteria {
		box := "- [ ] "
		if c.Checked {
			box = "- [x] "
		}
		lines = append(lines, box+c.Label)
	}
	return strings.Join(lines, "\n")
}

func linesToCriteria(raw string, prev []model.AcceptanceCriterion) []model.AcceptanceCriterion {
	byLabel := make(map[string]string, len(prev))
	for _, c := range prev {
		byLabel[c.Label] = c.ID
	}

	var out []model.AcceptanceCriterion
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		label, checked := line, false
		switch {
		case strings.HasPrefix(line, "- [x] "):
			label, checked = strings.TrimPrefix(line, "- [x] "), true
		case strings.HasPrefix(line, "- [ ] "):
			label = strings.TrimPrefix(line, "- [ ] ")
		case strings.HasPrefix(line, "- "):
			label = strings.TrimPrefix(line, "- ")
		}

		item := model.AcceptanceCriterion{Label: label, Checked: checked}
		if id, ok := byLabel[label]; ok {
			item.ID = id
		} else {
			item = model.AcceptanceCriterion{
				ID:      model.NewAcceptanceCriterion(label).ID,
				Label:   label,
				Checked: checked,
			}
		}
		out = append(out, item)
	}
	return out
}
