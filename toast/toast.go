// Package toast renders the transient notification banner.
//
// The banner itself holds no state: the caller passes Props on every render
// and arms a DismissAfter timer whenever it shows a new notice. A timer firing
// for a notice that has since been replaced must be ignored by the caller,
// which is why DismissMsg carries the notice sequence number.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/ziyixi/todoview/theme"
	"github.com/ziyixi/todoview/view"
)

// DefaultDuration is how long a notice stays up when nobody dismisses it.
const DefaultDuration = 2 * time.Second

// ActionKey is the key that runs the notice action.
const ActionKey = "r"

// Props parameterises one render of the banner.
type Props struct {
	Open        bool
	Severity    view.Severity
	Message     string
	ActionLabel string
}

// FromNotice builds Props from view state, translating texts with p.
func FromNotice(n view.Notice, p *message.Printer) Props {
	props := Props{
		Open:     n.Visible,
		Severity: n.Severity,
		Message:  p.Sprintf(n.Message),
	}
	if n.HasAction() {
		props.ActionLabel = p.Sprintf(n.ActionLabel)
	}
	return props
}

// DismissMsg asks the owner to hide notice Seq.
type DismissMsg struct {
	Seq uint64
}

// DismissAfter fires a DismissMsg for seq after d.
func DismissAfter(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Render draws the banner at most width cells wide. A closed banner renders
// as an empty string.
func Render(props Props, styles theme.ToastStyles, width int) string {
	if !props.Open {
		return ""
	}

	style := styleFor(props.Severity, styles)
	content := icon(props.Severity) + " " + props.Message
	if props.ActionLabel != "" {
		content += styles.Action.Render("[" + ActionKey + "] " + props.ActionLabel)
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(content))
}

func styleFor(severity view.Severity, styles theme.ToastStyles) lipgloss.Style {
	switch severity {
	case view.SeverityError:
		return styles.Error
	case view.SeverityWarning:
		return styles.Warning
	case view.SeveritySuccess:
		return styles.Success
	case view.SeverityInfo:
		return styles.Info
	default:
		return styles.Base
	}
}

func icon(severity view.Severity) string {
	switch severity {
	case view.SeverityError:
		return "✗"
	case view.SeverityWarning:
		return "!"
	case view.SeveritySuccess:
		return "✓"
	default:
		return "i"
	}
}
