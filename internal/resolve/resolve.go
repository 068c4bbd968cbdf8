// Package resolve decides, from an evidence request and the preview
// settings, exactly what the production claims-status page shows for
// each region: header, past-due alert, description, third-party notice,
// claim-letter cross-reference, next steps, upload form, and support
// contact. Every function is a pure function of its inputs, including
// the injected current date; nothing here reads the clock or mutates
// shared state.
package resolve

import (
	"strings"
	"time"

	"github.com/bmt-tools/evidence-author/internal/model"
)

// Entry is the content-override dictionary value for one request type.
// It mirrors the production override_content mapping keyed by the
// request's display name.
type Entry struct {
	LongDescription string
	NextSteps       string
}

// Dictionary maps display names to content overrides. The engine only
// ever reads it; callers build it once per evaluation and must not rely
// on the engine mutating entries.
type Dictionary map[string]Entry

// DictionaryFromRecord builds the single-entry dictionary the preview
// uses, keyed by the record's display name.
func DictionaryFromRecord(rec model.EvidenceRequest) Dictionary {
	return Dictionary{
		rec.DisplayName: {
			LongDescription: rec.LongDescriptionContent,
			NextSteps:       rec.NextStepsContent,
		},
	}
}

// longDate is the reader-facing date layout ("January 2, 2006").
const longDate = "January 2, 2006"

// FormatDate renders an ISO 8601 date in long form. Input that does not
// parse is echoed back unchanged so a half-typed date never breaks the
// preview.
func FormatDate(iso string) string {
	t, err := time.Parse(model.ISODate, iso)
	if err != nil {
		return iso
	}
	return t.Format(longDate)
}

// DisplayNameCased returns the name unchanged for proper nouns;
// otherwise it lowercases only the first rune. Empty input maps to
// empty output.
func DisplayNameCased(name string, isProperNoun bool) string {
	if name == "" || isProperNoun {
		return name
	}
	r := []rune(name)
	r[0] = []rune(strings.ToLower(string(r[0])))[0]
	return string(r)
}

// PastDue reports whether the previewed request is past its respond-by
// date: either the simulation toggle is on, or the first-party view has
// a suspense date strictly before now. A suspense date that fails to
// parse is never past due.
func PastDue(set model.PreviewSettings, now time.Time) bool {
	if set.SimulatePastDue {
		return true
	}
	if set.ViewMode != model.ViewFirstParty {
		return false
	}
	suspense, err := time.Parse(model.ISODate, set.SuspenseDate)
	if err != nil {
		return false
	}
	return suspense.Before(now)
}

// FormatAliasList renders support aliases as a natural-language list:
// each alias quoted, comma-separated, "or" before the final item, and a
// period after the last. A single alias renders with no conjunction.
func FormatAliasList(aliases []string) string {
	if len(aliases) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range aliases {
		switch {
		case i == len(aliases)-1:
			b.WriteString(`"` + name + `".`)
		case i == len(aliases)-2:
			b.WriteString(`"` + name + `" or `)
		default:
			b.WriteString(`"` + name + `", `)
		}
	}
	return b.String()
}
