package styles

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	ColorFg      = lipgloss.Color("#24292f") // primary foreground
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // error red
	ColorSuccess = lipgloss.Color("#1a7f37") // success green
	ColorWarning = lipgloss.Color("#9a6700") // warning amber
	ColorMagenta = lipgloss.Color("#8250df") // purple/magenta
)

// Centralized style definitions for the TUI.
var (
	// Pane frames.
	PaneBorder    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)
	FocusedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	DimStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	// Badges.
	LabelBadge = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
	ReadyBadge = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	OnBadge    = lipgloss.NewStyle().Foreground(ColorSuccess)
	OffBadge   = lipgloss.NewStyle().Foreground(ColorMuted)

	// Lesson topics and checklist.
	TopicActive   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorAccent)
	TopicInactive = lipgloss.NewStyle().Foreground(ColorMuted)
	StepDone      = lipgloss.NewStyle().Foreground(ColorSuccess)
	StepCursor    = lipgloss.NewStyle().Bold(true)

	// Graphical console.
	TabActive     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	TabInactive   = lipgloss.NewStyle().Foreground(ColorMuted)
	Button        = lipgloss.NewStyle().Foreground(ColorFg).Padding(0, 1).Border(lipgloss.NormalBorder(), false, true)
	ButtonFocused = Button.Foreground(ColorAccent).Bold(true).BorderForeground(ColorAccent)
	TableHeader   = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	RowFocused    = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StateApproved = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatePending  = lipgloss.NewStyle().Foreground(ColorWarning)

	// Command-line console.
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	EchoStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)

	StatusStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
