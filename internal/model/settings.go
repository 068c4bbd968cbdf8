package model

import "time"

// ViewMode selects which of the two mutually exclusive page renderings
// the preview shows. The wire values match the tracked-item status
// strings used by the claims API.
type ViewMode string

const (
	// ViewFirstParty previews a request for evidence needed from the
	// Veteran directly.
	ViewFirstParty ViewMode = "NEEDED_FROM_YOU"

	// ViewThirdParty previews a notice about evidence requested from an
	// outside entity on the Veteran's behalf.
	ViewThirdParty ViewMode = "NEEDED_FROM_OTHERS"
)

// ISODate is the calendar-date encoding used throughout the preview
// settings ("2006-01-02").
const ISODate = "2006-01-02"

// PreviewSettings holds the transient per-session view state for the
// preview pane. It is independent of the form record: changing it never
// touches the EvidenceRequest, and the issue output ignores it.
type PreviewSettings struct {
	ViewMode        ViewMode
	SuspenseDate    string
	RequestedDate   string
	SimulatePastDue bool
}

// DefaultPreviewSettings computes the settings a fresh session starts
// with: first-party view, a respond-by date 30 days out from now, and a
// requested date of today. The caller injects now so every consumer of
// the rolling window stays deterministic under test.
func DefaultPreviewSettings(now time.Time) PreviewSettings {
	return PreviewSettings{
		ViewMode:      ViewFirstParty,
		SuspenseDate:  now.AddDate(0, 0, 30).Format(ISODate),
		RequestedDate: now.Format(ISODate),
	}
}
