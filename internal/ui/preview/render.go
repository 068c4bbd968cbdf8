package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bmt-tools/evidence-author/internal/markdown"
	"github.com/bmt-tools/evidence-author/internal/resolve"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// Fixed copy owned by the shell rather than the engine: section
// framing, the mock upload affordance, and the support block skeleton.
const (
	claimLetterHeading = "Learn about this request in your claim letter"
	uploadHeading      = "Upload your files"
	uploadHint         = "Select files to upload, or drag them into this area."
	needHelpHeading    = "Need help?"
	needHelpHotline    = "Call the VA benefits hotline at 800-827-1000. We're here Monday through Friday, 8:00 a.m. to 9:00 p.m. ET. If you have hearing loss, TTY: 711."
)

// renderPage lays out every resolved region in production page order.
func renderPage(pc resolve.PageContent, md *markdown.Renderer, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(theme.PageTitleStyle.Render(pc.Title))
	add(theme.PageSubtextStyle.Render(wrap.Render(pc.Subtext)))

	if pc.ShowAlert {
		alert := lipgloss.JoinVertical(lipgloss.Left,
			theme.AlertHeadlineStyle.Render(resolve.PastDueHeadline),
			wrap.Render(resolve.PastDueBody),
			wrap.Render(resolve.PastDueHelp),
		)
		add(theme.AlertStyle.Render(alert))
	}
	add(wrap.Render(pc.RequestedOn))

	add(theme.SectionHeadingStyle.Render(pc.DescriptionTitle))
	add(renderDescription(pc.Description, md, wrap))

	if pc.Notice != nil {
		notice := theme.NoticeStyle.Render(pc.Notice.Lead)
		if pc.Notice.UploadEncouragement != "" {
			notice += " " + pc.Notice.UploadEncouragement
		}
		add(wrap.Render(notice))
	}

	if pc.ClaimLetter.Show {
		add(lipgloss.JoinVertical(lipgloss.Left,
			theme.SectionHeadingStyle.Render(claimLetterHeading),
			wrap.Render(fmt.Sprintf(
				"On %s, we mailed you a letter titled \"Request for Specific Evidence or Information,\" which may include more details about this request.",
				pc.ClaimLetter.MailedOn,
			)),
			wrap.Render("You can access this and all your claim letters online."),
			theme.LinkStyle.Render(resolve.ClaimLettersLinkText),
		))
	}

	add(renderNextSteps(pc.NextSteps, md, wrap))

	if pc.ShowUpload {
		upload := lipgloss.JoinVertical(lipgloss.Left,
			theme.SectionHeadingStyle.Render(uploadHeading),
			wrap.Render(uploadHint),
		)
		add(theme.PanelStyle.Render(upload))
	}

	add(renderSupport(pc.Support, wrap))

	return strings.Join(parts, "\n\n")
}

func renderMarkdown(md *markdown.Renderer, s string) string {
	if md == nil {
		return s
	}
	return md.Render(s)
}

func renderDescription(d resolve.Description, md *markdown.Renderer, wrap lipgloss.Style) string {
	switch d.Source {
	case resolve.DescriptionOverride, resolve.DescriptionAPI:
		return renderMarkdown(md, d.Markdown)
	case resolve.DescriptionFallback:
		return lipgloss.JoinVertical(lipgloss.Left,
			wrap.Render(resolve.FallbackDescription),
			theme.LinkStyle.Render(resolve.ClaimLettersLinkText),
		)
	default:
		return ""
	}
}

func renderNextSteps(ns resolve.NextSteps, md *markdown.Renderer, wrap lipgloss.Style) string {
	switch ns.Kind {
	case resolve.NextStepsCustom:
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.SectionHeadingStyle.Render(resolve.NextStepsHeading),
			renderMarkdown(md, ns.Markdown),
		)

	case resolve.NextStepsGeneric:
		firstBullet := resolve.NextStepsBulletLetter
		if ns.HasDescription {
			firstBullet = resolve.NextStepsBulletDescription
		}

		lines := []string{
			theme.SectionHeadingStyle.Render(resolve.NextStepsHeading),
			wrap.Render(resolve.NextStepsIntro),
			wrap.Render("• " + firstBullet),
			wrap.Render("• " + resolve.NextStepsBulletUpload),
		}
		if ns.HasDescription {
			lines = append(lines,
				wrap.Render(resolve.NextStepsHelp),
				theme.LinkStyle.Render(resolve.ClaimLettersLinkText),
			)
		}
		lines = append(lines,
			wrap.Render(resolve.NextStepsForms),
			theme.LinkStyle.Render(resolve.FindFormsLinkText),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)

	default:
		return ""
	}
}

func renderSupport(s resolve.Support, wrap lipgloss.Style) string {
	lines := []string{
		theme.SectionHeadingStyle.Render(needHelpHeading),
		wrap.Render(needHelpHotline),
	}
	if s.AliasSentence != "" {
		lines = append(lines, wrap.Render(fmt.Sprintf(
			"The VA benefits hotline may refer to the \"%s\" request as %s",
			s.Name, s.AliasSentence,
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
