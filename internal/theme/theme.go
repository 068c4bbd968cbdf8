package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps each pane of the split layout.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// FocusedPanelStyle highlights the pane that owns keyboard input.
var FocusedPanelStyle = PanelStyle.
	BorderForeground(ColorBlue)

// PanelTitleStyle renders the editor/preview pane headers.
var PanelTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// PageTitleStyle renders the previewed page's h1.
var PageTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// PageSubtextStyle renders the respond-by line under the page title.
var PageSubtextStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// SectionHeadingStyle renders previewed h2 section headings.
var SectionHeadingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// AlertStyle boxes the past-due warning the way the production page
// shows its warning banner.
var AlertStyle = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(ColorYellow).
	Padding(0, 1)

// AlertHeadlineStyle renders the warning banner headline.
var AlertHeadlineStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// NoticeStyle renders the bolded third-party notice lead.
var NoticeStyle = lipgloss.NewStyle().
	Bold(true)

// AdvisoryStyle renders soft-validation messages in place of the
// preview.
var AdvisoryStyle = lipgloss.NewStyle().
	Foreground(ColorOrange).
	Bold(true)

// LinkStyle renders previewed links with the design-system treatment.
var LinkStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Underline(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ErrorStyle renders failure notices, like a failed clipboard write.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// CopiedStyle flashes the transient "copied" affirmation.
var CopiedStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// SyncIndicatorStyle renders the build-provenance indicator in the
// header.
var SyncIndicatorStyle = lipgloss.NewStyle().
	Foreground(ColorGray)
