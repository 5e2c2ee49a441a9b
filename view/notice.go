package view

// Severity is the level a notice is shown with.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Action names the single optional button of a notice. The list view decides
// what running it means.
type Action string

const (
	ActionNone   Action = ""
	ActionReload Action = "reload"
)

// Notice is the state of the notification display. Message and ActionLabel
// are catalog keys, translated when rendered.
type Notice struct {
	Visible     bool
	Severity    Severity
	Message     string
	Action      Action
	ActionLabel string
	// Seq identifies this notice; it grows with every Notify so that a
	// dismiss timer started for an older notice can be told apart.
	Seq uint64
}

// HasAction reports whether the notice carries an action button.
func (n Notice) HasAction() bool {
	return n.Action != ActionNone && n.ActionLabel != ""
}
