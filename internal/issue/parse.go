package issue

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bmt-tools/evidence-author/internal/model"
)

// ParseSections splits a generated issue body back into a map of
// heading to raw section body. Markdown fences around the content
// sections are stripped; the NoResponse placeholder is preserved so
// callers can distinguish "empty" from "absent".
func ParseSections(text string) map[string]string {
	out := make(map[string]string)

	var heading string
	var body []string
	flush := func() {
		if heading == "" {
			return
		}
		out[heading] = stripFence(strings.TrimSpace(strings.Join(body, "\n")))
	}

	for _, line := range strings.Split(text, "\n") {
		if h, ok := strings.CutPrefix(line, "### "); ok {
			flush()
			heading = strings.TrimSpace(h)
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return out
}

func stripFence(body string) string {
	inner, ok := strings.CutPrefix(body, "```markdown\n")
	if !ok {
		return body
	}
	inner, ok = strings.CutSuffix(inner, "\n```")
	if !ok {
		return body
	}
	return inner
}

func parseField(sections map[string]string, heading string) string {
	v := sections[heading]
	if v == NoResponse {
		return ""
	}
	return v
}

func parseYesNo(sections map[string]string, heading string) bool {
	return sections[heading] == "yes"
}

func parseAliases(sections map[string]string) []string {
	v := parseField(sections, headingSupportAliases)
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}

func parseCriteria(sections map[string]string) []model.AcceptanceCriterion {
	v := parseField(sections, headingAcceptanceCriteria)
	if v == "" {
		return nil
	}
	var out []model.AcceptanceCriterion
	for _, line := range strings.Split(v, "\n") {
		label, checked := "", false
		switch {
		case strings.HasPrefix(line, "- [x] "):
			label, checked = strings.TrimPrefix(line, "- [x] "), true
		case strings.HasPrefix(line, "- [ ] "):
			label = strings.TrimPrefix(line, "- [ ] ")
		default:
			continue
		}
		out = append(out, model.AcceptanceCriterion{
			ID:      uuid.NewString(),
			Label:   label,
			Checked: checked,
		})
	}
	return out
}

// Parse reconstructs an EvidenceRequest from a generated issue body.
// Criterion IDs are freshly assigned; everything else round-trips
// verbatim. Used by tooling that re-imports previously exported
// tickets.
func Parse(text string) model.EvidenceRequest {
	s := ParseSections(text)

	return model.EvidenceRequest{
		DisplayName:            parseField(s, headingDisplayName),
		FriendlyName:           parseField(s, headingFriendlyName),
		SupportAliases:         parseAliases(s),
		ShortDescription:       parseField(s, headingShortDescription),
		ActivityDescription:    parseField(s, headingActivityDescription),
		CanUploadFile:          parseYesNo(s, headingCanUploadFile),
		NoActionNeeded:         s[headingNoActionNeeded] == "no (noActionNeeded = true)",
		IsDBQ:                  parseYesNo(s, headingIsDBQ),
		IsProperNoun:           parseYesNo(s, headingIsProperNoun),
		IsSensitive:            parseYesNo(s, headingIsSensitive),
		NoProvidePrefix:        parseYesNo(s, headingNoProvidePrefix),
		LongDescriptionContent: parseField(s, headingLongDescription),
		LongDescriptionNotes:   parseField(s, headingLongDescNotes),
		NextStepsContent:       parseField(s, headingNextSteps),
		NextStepsNotes:         parseField(s, headingNextStepsNotes),
		AdditionalContext:      parseField(s, headingAdditionalContext),
		LinksResources:         parseField(s, headingLinksResources),
		AcceptanceCriteria:     parseCriteria(s),
	}
}
