package preview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/resolve"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func pageFor(rec model.EvidenceRequest, set model.PreviewSettings) string {
	pc := resolve.Page(rec, set, testNow, resolve.DictionaryFromRecord(rec))
	// nil renderer falls back to raw markdown; fine for layout checks.
	return renderPage(pc, nil, 72)
}

func TestRenderPageFirstParty(t *testing.T) {
	rec := model.EvidenceRequest{
		DisplayName:    "21-4142/21-4142a",
		FriendlyName:   "Authorization to disclose information",
		SupportAliases: []string{"21-4142"},
		CanUploadFile:  true,
	}
	set := model.PreviewSettings{
		ViewMode:      model.ViewFirstParty,
		SuspenseDate:  "2025-07-15",
		RequestedDate: "2025-06-15",
	}

	out := pageFor(rec, set)

	assert.Contains(t, out, "Authorization to disclose information")
	assert.Contains(t, out, "Respond by July 15, 2025")
	assert.Contains(t, out, resolve.SectionFirstParty)
	assert.Contains(t, out, uploadHeading)
	assert.Contains(t, out, needHelpHeading)
	assert.Contains(t, out, `"21-4142".`)
	assert.NotContains(t, out, resolve.PastDueHeadline)
	assert.NotContains(t, out, resolve.NoticeLead)
}

func TestRenderPagePastDueAlert(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "21-4142/21-4142a"}
	set := model.PreviewSettings{
		ViewMode:      model.ViewFirstParty,
		SuspenseDate:  "2025-06-01",
		RequestedDate: "2025-05-01",
	}

	out := pageFor(rec, set)
	assert.Contains(t, out, resolve.PastDueHeadline)
	assert.NotContains(t, out, "We requested this evidence from you")
}

func TestRenderPageThirdPartyNotice(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "EMP"}
	set := model.PreviewSettings{
		ViewMode:      model.ViewThirdParty,
		SuspenseDate:  "2025-07-15",
		RequestedDate: "2025-06-15",
	}

	out := pageFor(rec, set)
	assert.Contains(t, out, resolve.TitleRequestOutsideVA)
	assert.Contains(t, out, resolve.SectionThirdParty)
	assert.Contains(t, out, resolve.NoticeLead)
	assert.NotContains(t, out, uploadHeading)
}

func TestRefreshShowsAdvisories(t *testing.T) {
	m := New(func() time.Time { return testNow }, 80, 24)

	m.Refresh(model.EvidenceRequest{}, model.DefaultPreviewSettings(testNow))
	assert.Contains(t, m.viewport.View(), "Please enter a Display Name to see preview")
}
