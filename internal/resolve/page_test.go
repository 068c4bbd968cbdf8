package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmt-tools/evidence-author/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func firstPartySettings() model.PreviewSettings {
	return model.PreviewSettings{
		ViewMode:      model.ViewFirstParty,
		SuspenseDate:  "2025-07-15",
		RequestedDate: "2025-06-15",
	}
}

func thirdPartySettings() model.PreviewSettings {
	s := firstPartySettings()
	s.ViewMode = model.ViewThirdParty
	return s
}

func TestResolveTitleFirstParty(t *testing.T) {
	tests := []struct {
		name string
		rec  model.EvidenceRequest
		want string
	}{
		{
			name: "friendly name wins",
			rec:  model.EvidenceRequest{DisplayName: "21-4142/21-4142a", FriendlyName: "Authorization to disclose information"},
			want: "Authorization to disclose information",
		},
		{
			name: "sensitive hides friendly name",
			rec:  model.EvidenceRequest{DisplayName: "ASB", FriendlyName: "Agent Orange exam", IsSensitive: true},
			want: TitleRequestForEvidence,
		},
		{
			name: "no friendly name",
			rec:  model.EvidenceRequest{DisplayName: "21-4142/21-4142a"},
			want: TitleRequestForEvidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(tt.rec, firstPartySettings(), testNow, Dictionary{})
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestResolveTitleThirdParty(t *testing.T) {
	tests := []struct {
		name string
		rec  model.EvidenceRequest
		want string
	}{
		{
			name: "dbq in display name",
			rec:  model.EvidenceRequest{DisplayName: "DBQ AUDIO Hearing Loss"},
			want: TitleRequestForExam,
		},
		{
			name: "dbq flag without name match",
			rec:  model.EvidenceRequest{DisplayName: "General exam", IsDBQ: true},
			want: TitleRequestForExam,
		},
		{
			name: "friendly name gets Your prefix and casing",
			rec:  model.EvidenceRequest{DisplayName: "EMP", FriendlyName: "Employment records"},
			want: "Your employment records",
		},
		{
			name: "proper noun keeps casing",
			rec:  model.EvidenceRequest{DisplayName: "EMP", FriendlyName: "Social Security records", IsProperNoun: true},
			want: "Your Social Security records",
		},
		{
			name: "nothing set",
			rec:  model.EvidenceRequest{DisplayName: "EMP"},
			want: TitleRequestOutsideVA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(tt.rec, thirdPartySettings(), testNow, Dictionary{})
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestResolveSubtext(t *testing.T) {
	tests := []struct {
		name string
		rec  model.EvidenceRequest
		set  model.PreviewSettings
		want string
	}{
		{
			name: "first party with friendly name",
			rec:  model.EvidenceRequest{DisplayName: "21-4142/21-4142a", FriendlyName: "Authorization form"},
			set:  firstPartySettings(),
			want: "Respond by July 15, 2025",
		},
		{
			name: "first party sensitive names the request",
			rec:  model.EvidenceRequest{DisplayName: "ASB", FriendlyName: "Exam request", IsSensitive: true},
			set:  firstPartySettings(),
			want: "Respond by July 15, 2025 for: exam request",
		},
		{
			name: "first party without friendly name uses display name",
			rec:  model.EvidenceRequest{DisplayName: "21-4142/21-4142a"},
			set:  firstPartySettings(),
			want: "Respond by July 15, 2025 for: 21-4142/21-4142a",
		},
		{
			name: "third party dbq names the exam",
			rec:  model.EvidenceRequest{DisplayName: "DBQ AUDIO Hearing Loss", IsDBQ: true},
			set:  thirdPartySettings(),
			want: "We made a request on June 15, 2025 for: DBQ AUDIO Hearing Loss",
		},
		{
			name: "third party with friendly name",
			rec:  model.EvidenceRequest{DisplayName: "EMP", FriendlyName: "Employment records"},
			set:  thirdPartySettings(),
			want: "We made a request outside VA on June 15, 2025",
		},
		{
			name: "third party bare",
			rec:  model.EvidenceRequest{DisplayName: "EMP"},
			set:  thirdPartySettings(),
			want: "We made a request outside VA on June 15, 2025 for: EMP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(tt.rec, tt.set, testNow, Dictionary{})
			assert.Equal(t, tt.want, got.Subtext)
		})
	}
}

func TestAlertAndRequestedOnAreMutuallyExclusive(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "21-4142/21-4142a"}

	past := firstPartySettings()
	past.SuspenseDate = "2025-06-01"
	got := Page(rec, past, testNow, Dictionary{})
	assert.True(t, got.ShowAlert)
	assert.Empty(t, got.RequestedOn)

	current := firstPartySettings()
	got = Page(rec, current, testNow, Dictionary{})
	assert.False(t, got.ShowAlert)
	assert.Contains(t, got.RequestedOn, "We requested this evidence from you on June 15, 2025.")

	// A friendly name suppresses the requested-on text.
	rec.FriendlyName = "Authorization form"
	got = Page(rec, current, testNow, Dictionary{})
	assert.False(t, got.ShowAlert)
	assert.Empty(t, got.RequestedOn)

	// Third party shows neither.
	got = Page(rec, thirdPartySettings(), testNow, Dictionary{})
	assert.False(t, got.ShowAlert)
	assert.Empty(t, got.RequestedOn)
}

func TestDescriptionPriority(t *testing.T) {
	rec := model.EvidenceRequest{
		DisplayName:         "21-4142/21-4142a",
		ShortDescription:    "short",
		ActivityDescription: "activity",
	}

	t.Run("override wins", func(t *testing.T) {
		dict := Dictionary{"21-4142/21-4142a": {LongDescription: "override markdown"}}
		got := Page(rec, firstPartySettings(), testNow, dict)
		assert.Equal(t, DescriptionOverride, got.Description.Source)
		assert.Equal(t, "override markdown", got.Description.Markdown)
	})

	t.Run("short description next", func(t *testing.T) {
		got := Page(rec, firstPartySettings(), testNow, Dictionary{})
		assert.Equal(t, DescriptionAPI, got.Description.Source)
		assert.Equal(t, "short", got.Description.Markdown)
	})

	t.Run("activity description when short empty", func(t *testing.T) {
		r := rec
		r.ShortDescription = ""
		got := Page(r, firstPartySettings(), testNow, Dictionary{})
		assert.Equal(t, DescriptionAPI, got.Description.Source)
		assert.Equal(t, "activity", got.Description.Markdown)
	})

	t.Run("first party fallback", func(t *testing.T) {
		r := rec
		r.ShortDescription = ""
		r.ActivityDescription = ""
		got := Page(r, firstPartySettings(), testNow, Dictionary{})
		assert.Equal(t, DescriptionFallback, got.Description.Source)
	})

	t.Run("third party renders nothing", func(t *testing.T) {
		r := rec
		r.ShortDescription = ""
		r.ActivityDescription = ""
		got := Page(r, thirdPartySettings(), testNow, Dictionary{})
		assert.Equal(t, DescriptionNone, got.Description.Source)
	})
}

func TestSectionHeading(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "EMP"}

	got := Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.Equal(t, SectionFirstParty, got.DescriptionTitle)

	got = Page(rec, thirdPartySettings(), testNow, Dictionary{})
	assert.Equal(t, SectionThirdParty, got.DescriptionTitle)
}

func TestThirdPartyNotice(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "EMP"}

	got := Page(rec, thirdPartySettings(), testNow, Dictionary{})
	require.NotNil(t, got.Notice)
	assert.Equal(t, NoticeLead, got.Notice.Lead)
	assert.Equal(t, NoticeUploadEncouragement, got.Notice.UploadEncouragement)

	rec.NoActionNeeded = true
	got = Page(rec, thirdPartySettings(), testNow, Dictionary{})
	require.NotNil(t, got.Notice)
	assert.Empty(t, got.Notice.UploadEncouragement)

	got = Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.Nil(t, got.Notice)
}

func TestClaimLetterBlock(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "21-4142/21-4142a"}

	t.Run("shown with override content", func(t *testing.T) {
		dict := Dictionary{"21-4142/21-4142a": {LongDescription: "x"}}
		got := Page(rec, firstPartySettings(), testNow, dict)
		assert.True(t, got.ClaimLetter.Show)
		assert.Equal(t, "June 15, 2025", got.ClaimLetter.MailedOn)
	})

	t.Run("shown with custom next steps only", func(t *testing.T) {
		dict := Dictionary{"21-4142/21-4142a": {NextSteps: "x"}}
		got := Page(rec, firstPartySettings(), testNow, dict)
		assert.True(t, got.ClaimLetter.Show)
	})

	t.Run("hidden without overrides", func(t *testing.T) {
		got := Page(rec, firstPartySettings(), testNow, Dictionary{})
		assert.False(t, got.ClaimLetter.Show)
	})

	t.Run("hidden for third party", func(t *testing.T) {
		dict := Dictionary{"21-4142/21-4142a": {LongDescription: "x"}}
		got := Page(rec, thirdPartySettings(), testNow, dict)
		assert.False(t, got.ClaimLetter.Show)
	})
}

func TestNextSteps(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "21-4142/21-4142a"}

	t.Run("custom content wins in either view", func(t *testing.T) {
		dict := Dictionary{"21-4142/21-4142a": {NextSteps: "custom steps"}}
		got := Page(rec, firstPartySettings(), testNow, dict)
		assert.Equal(t, NextStepsCustom, got.NextSteps.Kind)
		assert.Equal(t, "custom steps", got.NextSteps.Markdown)

		got = Page(rec, thirdPartySettings(), testNow, dict)
		assert.Equal(t, NextStepsCustom, got.NextSteps.Kind)
	})

	t.Run("first party falls back to generic", func(t *testing.T) {
		got := Page(rec, firstPartySettings(), testNow, Dictionary{})
		assert.Equal(t, NextStepsGeneric, got.NextSteps.Kind)
	})

	t.Run("third party renders nothing", func(t *testing.T) {
		got := Page(rec, thirdPartySettings(), testNow, Dictionary{})
		assert.Equal(t, NextStepsNone, got.NextSteps.Kind)
	})

	t.Run("hasDescription follows the description branch", func(t *testing.T) {
		r := rec
		r.ShortDescription = "short"
		got := Page(r, firstPartySettings(), testNow, Dictionary{})
		assert.True(t, got.NextSteps.HasDescription)

		got = Page(rec, firstPartySettings(), testNow, Dictionary{})
		assert.False(t, got.NextSteps.HasDescription)
	})
}

func TestSupportContact(t *testing.T) {
	rec := model.EvidenceRequest{
		DisplayName:    "21-4142/21-4142a",
		FriendlyName:   "Authorization form",
		SupportAliases: []string{"21-4142", "4142"},
	}

	got := Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.Equal(t, "authorization form", got.Support.Name)
	assert.Equal(t, `"21-4142" or "4142".`, got.Support.AliasSentence)

	rec.FriendlyName = ""
	got = Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.Equal(t, SupportFallbackName, got.Support.Name)
}

func TestUploadSectionFollowsFlag(t *testing.T) {
	rec := model.EvidenceRequest{DisplayName: "EMP", CanUploadFile: true}
	got := Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.True(t, got.ShowUpload)

	rec.CanUploadFile = false
	got = Page(rec, firstPartySettings(), testNow, Dictionary{})
	assert.False(t, got.ShowUpload)
}

func TestDictionaryFromRecord(t *testing.T) {
	rec := model.EvidenceRequest{
		DisplayName:            "21-4142/21-4142a",
		LongDescriptionContent: "long",
		NextStepsContent:       "steps",
	}

	dict := DictionaryFromRecord(rec)
	entry, ok := dict["21-4142/21-4142a"]
	require.True(t, ok)
	assert.Equal(t, "long", entry.LongDescription)
	assert.Equal(t, "steps", entry.NextSteps)
}

func TestPageDoesNotMutateDictionary(t *testing.T) {
	dict := Dictionary{"EMP": {LongDescription: "keep"}}
	rec := model.EvidenceRequest{DisplayName: "EMP", ShortDescription: "short"}

	Page(rec, firstPartySettings(), testNow, dict)
	Page(rec, thirdPartySettings(), testNow, dict)

	assert.Equal(t, Dictionary{"EMP": {LongDescription: "keep"}}, dict)
}
