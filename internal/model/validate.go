package model

import "strings"

// Advisory is a soft validation message. Advisories suppress the
// preview pane until resolved but never block editing or export.
type Advisory struct {
	Field   string
	Message string
}

// Advisories returns the soft-validation messages for the record.
// There are exactly two advisory conditions: a missing display name,
// and support aliases present without a friendly name to refer to.
func (r EvidenceRequest) Advisories() []Advisory {
	var out []Advisory
	if strings.TrimSpace(r.DisplayName) == "" {
		out = append(out, Advisory{
			Field:   "displayName",
			Message: "Please enter a Display Name to see preview",
		})
	}
	if strings.TrimSpace(r.FriendlyName) == "" && len(r.SupportAliases) != 0 {
		out = append(out, Advisory{
			Field:   "friendlyName",
			Message: "Please enter a Friendly Name when Support Aliases are provided",
		})
	}
	return out
}

// PreviewReady reports whether the preview pane should render for the
// record. It is false exactly when Advisories is non-empty.
func (r EvidenceRequest) PreviewReady() bool {
	return len(r.Advisories()) == 0
}
