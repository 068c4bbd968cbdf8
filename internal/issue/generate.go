// Package issue serializes an EvidenceRequest into the pre-formatted
// ticket body expected by the external issue tracker, and builds the
// companion "new issue" URL. Generation is a pure function of the
// record; preview settings never leak into the output.
package issue

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmt-tools/evidence-author/internal/model"
)

// NoResponse is the literal placeholder the issue template uses for
// fields the editor left empty.
const NoResponse = "_No response_"

// Section headings, in the fixed order the template requires.
const (
	headingDisplayName         = "Display Name (API Key)"
	headingFriendlyName        = "Friendly Name"
	headingSupportAliases      = "Support Aliases"
	headingShortDescription    = "Short Description"
	headingActivityDescription = "Activity Description"
	headingCanUploadFile       = "canUploadFile"
	headingNoActionNeeded      = "noActionNeeded"
	headingIsDBQ               = "isDBQ"
	headingIsProperNoun        = "isProperNoun"
	headingIsSensitive         = "isSensitive"
	headingNoProvidePrefix     = "noProvidePrefix"
	headingLongDescription     = "Long Description Content"
	headingLongDescNotes       = "Long Description Notes"
	headingNextSteps           = "Next Steps Content"
	headingNextStepsNotes      = "Next Steps Notes"
	headingAdditionalContext   = "Additional Context"
	headingLinksResources      = "Links & Resources"
	headingAcceptanceCriteria  = "Acceptance Criteria"
)

func formatField(value string) string {
	if value == "" {
		return NoResponse
	}
	return value
}

func formatAliases(aliases []string) string {
	if len(aliases) == 0 {
		return NoResponse
	}
	return strings.Join(aliases, "\n")
}

// formatYesNo renders the plain boolean flags.
func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// formatNoActionNeeded renders the one flag whose template vocabulary
// is inverted: the stored boolean answers "is no action needed?" while
// the template asks "is action needed?". The double negative is
// intentional template semantics and must round-trip exactly.
func formatNoActionNeeded(value bool) string {
	if value {
		return "no (noActionNeeded = true)"
	}
	return "yes (noActionNeeded = false)"
}

func formatCriteria(criteria []model.AcceptanceCriterion) string {
	if len(criteria) == 0 {
		return NoResponse
	}
	lines := make([]string, 0, len(criteria))
	for _, c := range criteria {
		box := "[ ]"
		if c.Checked {
			box = "[x]"
		}
		lines = append(lines, fmt.Sprintf("- %s %s", box, c.Label))
	}
	return strings.Join(lines, "\n")
}

type section struct {
	heading string
	body    string
	fenced  bool
}

func sections(rec model.EvidenceRequest) []section {
	return []section{
		{headingDisplayName, formatField(rec.DisplayName), false},
		{headingFriendlyName, formatField(rec.FriendlyName), false},
		{headingSupportAliases, formatAliases(rec.SupportAliases), false},
		{headingShortDescription, formatField(rec.ShortDescription), false},
		{headingActivityDescription, formatField(rec.ActivityDescription), false},
		{headingCanUploadFile, formatYesNo(rec.CanUploadFile), false},
		{headingNoActionNeeded, formatNoActionNeeded(rec.NoActionNeeded), false},
		{headingIsDBQ, formatYesNo(rec.IsDBQ), false},
		{headingIsProperNoun, formatYesNo(rec.IsProperNoun), false},
		{headingIsSensitive, formatYesNo(rec.IsSensitive), false},
		{headingNoProvidePrefix, formatYesNo(rec.NoProvidePrefix), false},
		{headingLongDescription, formatField(rec.LongDescriptionContent), true},
		{headingLongDescNotes, formatField(rec.LongDescriptionNotes), false},
		{headingNextSteps, formatField(rec.NextStepsContent), true},
		{headingNextStepsNotes, formatField(rec.NextStepsNotes), false},
		{headingAdditionalContext, formatField(rec.AdditionalContext), false},
		{headingLinksResources, formatField(rec.LinksResources), false},
		{headingAcceptanceCriteria, formatCriteria(rec.AcceptanceCriteria), false},
	}
}

// Generate renders the full issue body in template order.
func Generate(rec model.EvidenceRequest) string {
	var b strings.Builder
	for i, s := range sections(rec) {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("### " + s.heading + "\n\n")
		if s.fenced {
			b.WriteString("```markdown\n" + s.body + "\n```")
		} else {
			b.WriteString(s.body)
		}
	}
	return b.String()
}

// Title derives the ticket title from the record's display name.
func Title(rec model.EvidenceRequest) string {
	name := rec.DisplayName
	if name == "" {
		name = "Display Name"
	}
	return fmt.Sprintf("Evidence Request Improvement: [%s]", name)
}

// URL builds the tracker's new-issue link with the template id and the
// encoded title. The body is never passed this way (query-length
// limits); it is offered for clipboard copy instead.
func URL(rec model.EvidenceRequest, cfg model.IssueConfig) string {
	params := url.Values{}
	params.Set("template", cfg.Template)
	params.Set("title", Title(rec))
	return cfg.BaseURL + "?" + params.Encode()
}
