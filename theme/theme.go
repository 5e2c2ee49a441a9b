// Package theme defines the single visual theme of todoview.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette colours, adaptive to light and dark terminals.
var (
	Primary   = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#90CAF9"}
	Muted     = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	Error     = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#F44336"}
	Warning   = lipgloss.AdaptiveColor{Light: "#ED6C02", Dark: "#FFA726"}
	Info      = lipgloss.AdaptiveColor{Light: "#0288D1", Dark: "#29B6F6"}
	Success   = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	OnFilled  = lipgloss.Color("#FFFFFF")
	Separator = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#424242"}
)

// Theme is the set of styles the screens draw with.
type Theme struct {
	Container   lipgloss.Style
	Heading     lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Button      lipgloss.Style
	ButtonOff   lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	List        lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Done        lipgloss.Style
	Date        lipgloss.Style
	Description lipgloss.Style
	Hint        lipgloss.Style
	Toast       ToastStyles
}

// ToastStyles holds the banner style per severity.
type ToastStyles struct {
	Base    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Action  lipgloss.Style
}

// Default returns the todoview theme.
func Default() Theme {
	toastBase := lipgloss.NewStyle().
		Foreground(OnFilled).
		Padding(0, 2).
		Bold(true)

	return Theme{
		Container: lipgloss.NewStyle().Padding(1, 3),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Separator).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(OnFilled).
			Background(Primary).
			Padding(0, 3).
			Bold(true),
		ButtonOff: lipgloss.NewStyle().
			Foreground(Muted).
			Background(Separator).
			Padding(0, 3),
		FilterOn: lipgloss.NewStyle().
			Foreground(OnFilled).
			Background(Primary).
			Padding(0, 2),
		FilterOff: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2),
		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Separator).
			Padding(0, 1),
		Row:         lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(Muted),
		Date:        lipgloss.NewStyle().Foreground(Muted),
		Description: lipgloss.NewStyle().Foreground(Muted).PaddingLeft(6),
		Hint:        lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Toast: ToastStyles{
			Base:    toastBase,
			Error:   toastBase.Background(Error),
			Warning: toastBase.Background(Warning),
			Info:    toastBase.Background(Info),
			Success: toastBase.Background(Success),
			Action:  lipgloss.NewStyle().Underline(true).MarginLeft(2),
		},
	}
}

// Apply resets the global renderer before anything is drawn. With noColor
// set every style renders as plain text.
func Apply(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
