// Package view holds the state of the task list screen and the transitions
// that change it. It knows nothing about terminals or rendering: the UI layer
// calls a transition when the user acts or when a service call returns, and
// reads the fields back to draw.
package view

import (
	"strings"

	"github.com/ziyixi/todoview/client"
	"github.com/ziyixi/todoview/utils"
)

// Phase is the refresh state of the list.
type Phase int

const (
	// PhaseIdle shows the last successfully fetched list.
	PhaseIdle Phase = iota
	// PhaseRefreshing has at least one fetch in flight.
	PhaseRefreshing
)

// Draft holds the create form inputs exactly as typed.
type Draft struct {
	Title       string
	Description string
}

// Valid reports whether both fields are non-empty once trimmed.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Description) != ""
}

// State is the single source of truth for what the task list shows.
type State struct {
	Tasks    []client.Task
	Filter   client.Filter
	Expanded string
	Draft    Draft
	Notice   Notice
	// InFlight counts fetches that have not answered yet.
	InFlight int

	seq uint64
}

// NewState returns an empty list with the "all" filter selected.
func NewState() *State {
	return &State{
		Tasks:  []client.Task{},
		Filter: client.FilterAll,
	}
}

// Phase derives the refresh phase from the number of fetches in flight.
func (s *State) Phase() Phase {
	if s.InFlight > 0 {
		return PhaseRefreshing
	}
	return PhaseIdle
}

// BeginRefresh records that a fetch for the current filter was issued.
func (s *State) BeginRefresh() client.Filter {
	s.InFlight++
	return s.Filter
}

func (s *State) endRefresh() {
	if s.InFlight > 0 {
		s.InFlight--
	}
}

// RefreshSucceeded replaces the collection with tasks. Results are applied in
// arrival order, so the last response to arrive wins.
func (s *State) RefreshSucceeded(tasks []client.Task) {
	s.endRefresh()
	if tasks == nil {
		tasks = []client.Task{}
	}
	s.Tasks = tasks
}

// RefreshFailed keeps the collection on screen and reports the failure.
func (s *State) RefreshFailed() {
	s.endRefresh()
	s.notify(SeverityError, utils.MsgLoadFailed, ActionReload, utils.LabelReload)
}

// SetFilter selects f. It returns true when the selection changed and a new
// fetch is needed; re-selecting the active filter does nothing.
func (s *State) SetFilter(f client.Filter) bool {
	if f == "" || f == s.Filter {
		return false
	}
	s.Filter = f
	return true
}

// NextFilter returns the filter after the active one, wrapping around.
func (s *State) NextFilter() client.Filter {
	for i, f := range client.Filters {
		if f == s.Filter {
			return client.Filters[(i+1)%len(client.Filters)]
		}
	}
	return client.FilterAll
}

// SetDraft stores the create form inputs.
func (s *State) SetDraft(title, description string) {
	s.Draft = Draft{Title: title, Description: description}
}

// CanCreate reports whether the create action is enabled.
func (s *State) CanCreate() bool {
	return s.Draft.Valid()
}

// SubmitDraft returns the fields to send to the service, or ok=false when the
// draft is invalid and no request may be issued.
func (s *State) SubmitDraft() (title, description string, ok bool) {
	if !s.CanCreate() {
		return "", "", false
	}
	return s.Draft.Title, s.Draft.Description, true
}

// CreateSucceeded clears the form and reports success. The caller refreshes.
func (s *State) CreateSucceeded() {
	s.Draft = Draft{}
	s.notify(SeveritySuccess, utils.MsgCreated, ActionNone, "")
}

// CreateFailed reports the failure and leaves the form as typed.
func (s *State) CreateFailed() {
	s.notify(SeverityError, utils.MsgCreateFailed, ActionNone, "")
}

// ToggleRequest returns the completed value to send for the task id: the
// negation of what is currently shown. ok is false for an unknown id.
func (s *State) ToggleRequest(id string) (completed bool, ok bool) {
	task, ok := s.Task(id)
	if !ok {
		return false, false
	}
	return !task.Completed, true
}

// ToggleSucceeded reports the new state. The caller refreshes; the checkbox
// only changes once the refreshed list arrives.
func (s *State) ToggleSucceeded(completed bool) {
	if completed {
		s.notify(SeveritySuccess, utils.MsgCompleted, ActionNone, "")
		return
	}
	s.notify(SeveritySuccess, utils.MsgReopened, ActionNone, "")
}

// ToggleFailed reports the failure.
func (s *State) ToggleFailed() {
	s.notify(SeverityError, utils.MsgToggleFailed, ActionNone, "")
}

// DeleteSucceeded reports success. The task disappears with the refresh.
func (s *State) DeleteSucceeded() {
	s.notify(SeveritySuccess, utils.MsgDeleted, ActionNone, "")
}

// DeleteFailed reports the failure; the task stays listed.
func (s *State) DeleteFailed() {
	s.notify(SeverityError, utils.MsgDeleteFailed, ActionNone, "")
}

// ToggleExpand expands the task id, or collapses it if it already is.
// Expanding one task collapses any other.
func (s *State) ToggleExpand(id string) {
	if s.Expanded == id {
		s.Expanded = ""
		return
	}
	s.Expanded = id
}

// IsExpanded reports whether the description of task id is shown.
func (s *State) IsExpanded(id string) bool {
	return id != "" && s.Expanded == id
}

// Task looks a task up in the current collection.
func (s *State) Task(id string) (client.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return client.Task{}, false
}

// Notify shows a notice, replacing whatever is visible. It returns the
// notice sequence number used to dismiss it later.
func (s *State) Notify(severity Severity, message string, action Action, actionLabel string) uint64 {
	return s.notify(severity, message, action, actionLabel)
}

func (s *State) notify(severity Severity, message string, action Action, actionLabel string) uint64 {
	s.seq++
	s.Notice = Notice{
		Visible:     true,
		Severity:    severity,
		Message:     message,
		Action:      action,
		ActionLabel: actionLabel,
		Seq:         s.seq,
	}
	return s.seq
}

// Dismiss hides the current notice.
func (s *State) Dismiss() {
	s.Notice.Visible = false
}

// DismissIfCurrent hides the notice only if seq still identifies it.
func (s *State) DismissIfCurrent(seq uint64) bool {
	if !s.Notice.Visible || s.Notice.Seq != seq {
		return false
	}
	s.Notice.Visible = false
	return true
}
