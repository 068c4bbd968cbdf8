// Package markdown renders the form's markdown-capable content for the
// terminal preview. It wraps glamour with a style tuned to the VA
// design system: links carry the action-link color and underline, and
// lists use disc bullets and decimal numbering like the production
// page.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// vaLinkColor approximates the design system's link blue in the
// terminal palette.
const vaLinkColor = "32"

// Renderer converts markdown to styled terminal text. GitHub-flavored
// tables and strikethrough are supported by the underlying parser.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

func styleConfig() ansi.StyleConfig {
	cfg := styles.DarkStyleConfig

	underline := true
	cfg.Link.Color = stringPtr(vaLinkColor)
	cfg.Link.Underline = &underline
	cfg.LinkText.Color = stringPtr(vaLinkColor)

	// Production lists render disc bullets and decimal numbering.
	cfg.List.LevelIndent = 2
	cfg.Item.BlockPrefix = ""
	cfg.Enumeration.BlockPrefix = ""

	// The preview pane supplies its own margins.
	zero := uint(0)
	cfg.Document.Margin = &zero

	return cfg
}

func stringPtr(s string) *string { return &s }

// New creates a renderer wrapping at the given width.
func New(width int) (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, width: width}, nil
}

// Width returns the current wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// SetWidth rebuilds the underlying renderer for a new wrap width.
func (r *Renderer) SetWidth(width int) error {
	if width == r.width {
		return nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	r.tr = tr
	r.width = width
	return nil
}

// Render converts markdown to terminal text. On renderer failure the
// raw markdown is returned so content is never lost from the preview.
func (r *Renderer) Render(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
