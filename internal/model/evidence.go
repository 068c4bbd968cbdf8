package model

import "github.com/google/uuid"

// AcceptanceCriterion is a single checklist entry tracked on the
// generated issue. The ID keeps list edits stable while the editor
// reorders or relabels entries.
type AcceptanceCriterion struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Checked bool   `yaml:"checked"`
}

// NewAcceptanceCriterion creates an unchecked criterion with a fresh ID.
func NewAcceptanceCriterion(label string) AcceptanceCriterion {
	return AcceptanceCriterion{
		ID:    uuid.NewString(),
		Label: label,
	}
}

// EvidenceRequest is the single editable record describing one benefits
// evidence request: the machine key and human labels, the content shown
// on the claims-status page, flags controlling how that page renders,
// and editor-only notes that never appear in the preview.
type EvidenceRequest struct {
	// Basic info
	DisplayName    string   `yaml:"display_name"`
	FriendlyName   string   `yaml:"friendly_name"`
	SupportAliases []string `yaml:"support_aliases"`

	// Description fallbacks (plain text from the API side)
	ShortDescription    string `yaml:"short_description"`
	ActivityDescription string `yaml:"activity_description"`

	// Flags
	CanUploadFile   bool `yaml:"can_upload_file"`
	NoActionNeeded  bool `yaml:"no_action_needed"`
	IsDBQ           bool `yaml:"is_dbq"`
	IsProperNoun    bool `yaml:"is_proper_noun"`
	IsSensitive     bool `yaml:"is_sensitive"`
	NoProvidePrefix bool `yaml:"no_provide_prefix"`

	// Override content (markdown-capable; notes are editor-only)
	LongDescriptionContent string `yaml:"long_description_content"`
	LongDescriptionNotes   string `yaml:"long_description_notes"`
	NextStepsContent       string `yaml:"next_steps_content"`
	NextStepsNotes         string `yaml:"next_steps_notes"`

	// Editor-only metadata, carried into the issue output only
	AdditionalContext string `yaml:"additional_context"`
	LinksResources    string `yaml:"links_resources"`

	AcceptanceCriteria []AcceptanceCriterion `yaml:"acceptance_criteria"`
}

// DefaultAcceptanceCriteria are the checklist entries every new issue
// starts with, matching the production issue template.
var DefaultAcceptanceCriteria = []string{
	"Content is added to lib/lighthouse/benefits_claims/tracked_item_content/override_content.json",
	"The displayName is added to the supportAliases array",
	"JSON validates against the schema",
	"Content tested in staging environment",
	"Visual review confirms content renders correctly",
	"Accessibility review completed (if applicable)",
	"Unit tests added/updated",
	"End-to-end tests added/updated",
}

// DefaultEvidenceRequest returns the built-in starting record, a real
// production request (VA Form 21-4142) so editors see a fully populated
// preview before touching anything.
func DefaultEvidenceRequest() EvidenceRequest {
	criteria := make([]AcceptanceCriterion, 0, len(DefaultAcceptanceCriteria))
	for _, label := range DefaultAcceptanceCriteria {
		criteria = append(criteria, NewAcceptanceCriterion(label))
	}

	return EvidenceRequest{
		DisplayName:         "21-4142/21-4142a",
		FriendlyName:        "Authorization to disclose information",
		SupportAliases:      []string{"21-4142/21-4142a"},
		ActivityDescription: "We need your permission to request your personal information from a non-VA source, like a private doctor or hospital.",
		CanUploadFile:       true,
		LongDescriptionContent: `For your benefits claim, we need your permission to request your personal information from a non-VA source, like a private doctor or hospital.

Personal information may include:

- Medical treatments
- Hospitalizations
- Psychotherapy
- Outpatient care`,
		NextStepsContent: `Use VA Form 21-4142 to give us permission to request your personal information.

You can complete and sign this form online, or use a PDF version and upload or mail it.
[VA Form 21-4142](/find-forms/about-form-21-4142/)`,
		AcceptanceCriteria: criteria,
	}
}

// Clone returns a deep copy so store consumers can never alias the
// slices held by the current record.
func (r EvidenceRequest) Clone() EvidenceRequest {
	out := r
	if r.SupportAliases != nil {
		out.SupportAliases = append([]string(nil), r.SupportAliases...)
	}
	if r.AcceptanceCriteria != nil {
		out.AcceptanceCriteria = append([]AcceptanceCriterion(nil), r.AcceptanceCriteria...)
	}
	return out
}
