package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmt-tools/evidence-author/internal/model"
)

// Fixed page copy shared by the engine, the preview pane, and tests.
// These strings match the production claims-status page verbatim.
const (
	TitleRequestForEvidence    = "Request for evidence"
	TitleRequestForExam        = "Request for an exam"
	TitleRequestOutsideVA      = "Request for evidence outside VA"
	SectionFirstParty          = "What we need from you"
	SectionThirdParty          = "What we're notifying you about"
	PastDueHeadline            = "Deadline passed for requested information"
	PastDueBody                = "We haven't received the information we asked for. You can still send it, but we may review your claim without it."
	PastDueHelp                = "If you have questions, call the VA benefits hotline at 800-827-1000 (TTY: 711)."
	FallbackDescription        = "We're unable to provide more information about the request on this page. To learn more about it, review your claim letter."
	ClaimLettersLinkText       = "Access your claim letters"
	ClaimLettersLinkHref       = "/track-claims/your-claim-letters"
	NoticeLead                 = "This is just a notice. No action is needed by you."
	NoticeUploadEncouragement  = "But, if you have documents related to this request, uploading them on this page may help speed up the evidence review for your claim."
	NextStepsHeading           = "Next steps"
	NextStepsIntro             = "To respond to this request:"
	NextStepsBulletDescription = "Gather and submit any documents or forms listed in the What we need from you section"
	NextStepsBulletLetter      = "Gather and submit any documents or forms listed in the claim letter"
	NextStepsBulletUpload      = "You can upload documents online or mail them to us"
	NextStepsHelp              = "If you need help understanding this request, check your claim letter online."
	NextStepsForms             = "You can find blank copies of many VA forms online."
	FindFormsLinkText          = "Find a VA form"
	FindFormsLinkHref          = "/find-forms"
	SupportFallbackName        = "this request"
)

// DescriptionSource tags which priority branch produced the description
// region.
type DescriptionSource int

const (
	// DescriptionNone renders nothing (third-party with no content).
	DescriptionNone DescriptionSource = iota
	// DescriptionOverride is dictionary content rendered as markdown.
	DescriptionOverride
	// DescriptionAPI is the plain-text description from the claims API.
	DescriptionAPI
	// DescriptionFallback is the fixed first-party claim-letter pointer.
	DescriptionFallback
)

// Description is the resolved "what we need / what we're notifying"
// region.
type Description struct {
	Source   DescriptionSource
	Markdown string
}

// NextStepsKind tags the resolved next-steps branch.
type NextStepsKind int

const (
	// NextStepsNone renders nothing (third-party, no custom content).
	NextStepsNone NextStepsKind = iota
	// NextStepsCustom renders dictionary markdown under the heading.
	NextStepsCustom
	// NextStepsGeneric renders the fixed first-party instructions.
	NextStepsGeneric
)

// NextSteps is the resolved next-steps region. HasDescription selects
// the wording of the first generic bullet: it is true iff the
// description region resolved to override or API content in this same
// pass.
type NextSteps struct {
	Kind           NextStepsKind
	Markdown       string
	HasDescription bool
}

// Notice is the third-party notice region. UploadEncouragement is empty
// when the request is marked no-action-needed.
type Notice struct {
	Lead                string
	UploadEncouragement string
}

// ClaimLetter is the first-party cross-reference block shown whenever
// frontend content overrides exist.
type ClaimLetter struct {
	Show     bool
	MailedOn string
}

// Support is the always-rendered support-contact region.
type Support struct {
	Name          string
	AliasSentence string
}

// PageContent is the full set of resolved display variants for one
// (record, settings, now) triple.
type PageContent struct {
	Title   string
	Subtext string

	PastDue     bool
	ShowAlert   bool
	RequestedOn string

	DescriptionTitle string
	Description      Description

	Notice      *Notice
	ClaimLetter ClaimLetter
	NextSteps   NextSteps

	ShowUpload bool
	Support    Support
}

// Page resolves every region of the previewed page. The dictionary is
// the content-override mapping; pass DictionaryFromRecord(rec) to
// preview the record's own content.
func Page(rec model.EvidenceRequest, set model.PreviewSettings, now time.Time, dict Dictionary) PageContent {
	firstParty := set.ViewMode == model.ViewFirstParty
	entry := dict[rec.DisplayName]
	pastDue := PastDue(set, now)

	out := PageContent{
		Title:      resolveTitle(rec, firstParty),
		Subtext:    resolveSubtext(rec, set, firstParty),
		PastDue:    pastDue,
		ShowUpload: rec.CanUploadFile,
	}

	// The past-due alert and the "we requested this evidence" text are
	// mutually exclusive: for a first-party request with no friendly
	// name, exactly one of them renders.
	if firstParty {
		if pastDue {
			out.ShowAlert = true
		} else if rec.FriendlyName == "" {
			out.RequestedOn = fmt.Sprintf(
				"We requested this evidence from you on %s. You can still send the evidence after the \"respond by\" date, but it may delay your claim.",
				FormatDate(set.RequestedDate),
			)
		}
	}

	out.DescriptionTitle = SectionThirdParty
	if firstParty {
		out.DescriptionTitle = SectionFirstParty
	}
	out.Description = resolveDescription(rec, entry, firstParty)

	if !firstParty {
		n := Notice{Lead: NoticeLead}
		if !rec.NoActionNeeded {
			n.UploadEncouragement = NoticeUploadEncouragement
		}
		out.Notice = &n
	}

	if firstParty && (entry.LongDescription != "" || entry.NextSteps != "") {
		out.ClaimLetter = ClaimLetter{
			Show:     true,
			MailedOn: FormatDate(set.RequestedDate),
		}
	}

	hasDescription := out.Description.Source == DescriptionOverride ||
		out.Description.Source == DescriptionAPI
	out.NextSteps = resolveNextSteps(entry, firstParty, hasDescription)

	out.Support = resolveSupport(rec)

	return out
}

func resolveTitle(rec model.EvidenceRequest, firstParty bool) string {
	if firstParty {
		if rec.IsSensitive || rec.FriendlyName == "" {
			return TitleRequestForEvidence
		}
		return rec.FriendlyName
	}

	if strings.Contains(strings.ToLower(rec.DisplayName), "dbq") || rec.IsDBQ {
		return TitleRequestForExam
	}
	if rec.FriendlyName != "" {
		return "Your " + DisplayNameCased(rec.FriendlyName, rec.IsProperNoun)
	}
	return TitleRequestOutsideVA
}

func resolveSubtext(rec model.EvidenceRequest, set model.PreviewSettings, firstParty bool) string {
	if firstParty {
		respondBy := FormatDate(set.SuspenseDate)
		switch {
		case rec.FriendlyName != "" && rec.IsSensitive:
			return fmt.Sprintf("Respond by %s for: %s", respondBy, DisplayNameCased(rec.FriendlyName, rec.IsProperNoun))
		case rec.FriendlyName != "":
			return fmt.Sprintf("Respond by %s", respondBy)
		default:
			return fmt.Sprintf("Respond by %s for: %s", respondBy, rec.DisplayName)
		}
	}

	requested := FormatDate(set.RequestedDate)
	switch {
	case rec.IsDBQ:
		name := rec.DisplayName
		if rec.FriendlyName != "" {
			name = DisplayNameCased(rec.FriendlyName, rec.IsProperNoun)
		}
		return fmt.Sprintf("We made a request on %s for: %s", requested, name)
	case rec.FriendlyName != "":
		return fmt.Sprintf("We made a request outside VA on %s", requested)
	default:
		return fmt.Sprintf("We made a request outside VA on %s for: %s", requested, rec.DisplayName)
	}
}

// resolveDescription applies the strict content priority: dictionary
// override, then API description, then (first-party only) the fixed
// claim-letter fallback.
func resolveDescription(rec model.EvidenceRequest, entry Entry, firstParty bool) Description {
	if entry.LongDescription != "" {
		return Description{Source: DescriptionOverride, Markdown: entry.LongDescription}
	}

	api := rec.ShortDescription
	if api == "" {
		api = rec.ActivityDescription
	}
	if api != "" {
		return Description{Source: DescriptionAPI, Markdown: api}
	}

	if firstParty {
		return Description{Source: DescriptionFallback}
	}
	return Description{Source: DescriptionNone}
}

func resolveNextSteps(entry Entry, firstParty, hasDescription bool) NextSteps {
	if entry.NextSteps != "" {
		return NextSteps{Kind: NextStepsCustom, Markdown: entry.NextSteps, HasDescription: hasDescription}
	}
	if firstParty {
		return NextSteps{Kind: NextStepsGeneric, HasDescription: hasDescription}
	}
	return NextSteps{Kind: NextStepsNone, HasDescription: hasDescription}
}

func resolveSupport(rec model.EvidenceRequest) Support {
	name := SupportFallbackName
	if rec.FriendlyName != "" {
		name = DisplayNameCased(rec.FriendlyName, rec.IsProperNoun)
	}
	return Support{
		Name:          name,
		AliasSentence: FormatAliasList(rec.SupportAliases),
	}
}
