// Package tui implements the task list screen on top of bubbletea.
//
// All state lives in a view.State owned by the Model. Network calls run as
// tea.Cmds outside the event loop and come back as messages, so the state is
// only ever touched from Update.
package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ziyixi/todoview/client"
	"github.com/ziyixi/todoview/theme"
	"github.com/ziyixi/todoview/toast"
	"github.com/ziyixi/todoview/utils"
	"github.com/ziyixi/todoview/view"
)

const (
	defaultWidth = 64
	minWidth     = 40
	titleLimit   = 256
	descLimit    = 2000
)

type focus int

const (
	focusList focus = iota
	focusTitle
	focusDescription
)

type tasksLoadedMsg struct {
	filter client.Filter
	tasks  []client.Task
	err    error
}

type taskCreatedMsg struct {
	task *client.Task
	err  error
}

type taskToggledMsg struct {
	id        string
	completed bool
	err       error
}

type taskDeletedMsg struct {
	id  string
	err error
}

// Model is the task list screen.
type Model struct {
	ctx          context.Context
	svc          client.TaskService
	state        *view.State
	log          logrus.FieldLogger
	lang         language.Tag
	printer      *message.Printer
	loc          *time.Location
	theme        theme.Theme
	dismissAfter time.Duration

	keys   keyMap
	help   help.Model
	title  textinput.Model
	desc   textarea.Model
	focus  focus
	cursor int
	width  int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets where failed operations are logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *Model) {
		if logger != nil {
			m.log = logger
		}
	}
}

// WithLanguage selects the language of the screen texts and dates.
func WithLanguage(tag language.Tag) Option {
	return func(m *Model) {
		m.lang = tag
		m.printer = utils.NewPrinter(tag)
	}
}

// WithLocation sets the time zone created dates are shown in.
func WithLocation(loc *time.Location) Option {
	return func(m *Model) { m.loc = loc }
}

// WithTheme overrides theme.Default.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithDismissAfter overrides toast.DefaultDuration.
func WithDismissAfter(d time.Duration) Option {
	return func(m *Model) { m.dismissAfter = d }
}

// WithContext sets the context every service call runs under.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New creates the task list screen backed by svc.
func New(svc client.TaskService, opts ...Option) Model {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := Model{
		ctx:          context.Background(),
		svc:          svc,
		state:        view.NewState(),
		log:          discard,
		lang:         language.English,
		printer:      utils.NewPrinter(language.English),
		loc:          time.Local,
		theme:        theme.Default(),
		dismissAfter: toast.DefaultDuration,
		keys:         defaultKeyMap(),
		help:         help.New(),
		focus:        focusList,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.title = textinput.New()
	m.title.Placeholder = m.printer.Sprintf(utils.TextTitlePlaceholder)
	m.title.CharLimit = titleLimit
	m.title.Cursor.SetMode(cursor.CursorStatic)

	m.desc = textarea.New()
	m.desc.Placeholder = m.printer.Sprintf(utils.TextDescPlaceholder)
	m.desc.CharLimit = descLimit
	m.desc.ShowLineNumbers = false
	m.desc.SetHeight(2)
	m.desc.Cursor.SetMode(cursor.CursorStatic)

	m.SetWidth(defaultWidth)
	return m
}

// State exposes the view state, mainly for tests.
func (m Model) State() *view.State {
	return m.state
}

// Width is the number of cells the screen is laid out for.
func (m Model) Width() int {
	return m.width
}

// SetWidth lays the screen out for width cells.
func (m *Model) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	inner := width - 4
	m.title.Width = inner - 2
	m.desc.SetWidth(inner)
	m.help.Width = width
}

// Init fetches the list for the initial filter.
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithFields(logrus.Fields{
				"op":     "list",
				"filter": msg.filter,
			}).Error("failed to load tasks")
			m.state.RefreshFailed()
			return m, m.dismissCmd()
		}
		m.state.RefreshSucceeded(msg.tasks)
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("op", "create").Error("failed to create task")
			m.state.CreateFailed()
			return m, m.dismissCmd()
		}
		if msg.task != nil {
			m.log.WithFields(logrus.Fields{"op": "create", "id": msg.task.ID}).Info("task created")
		}
		m.state.CreateSucceeded()
		m.title.Reset()
		m.desc.Reset()
		return m, tea.Batch(m.refresh(), m.dismissCmd())

	case taskToggledMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithFields(logrus.Fields{"op": "toggle", "id": msg.id}).Error("failed to update task")
			m.state.ToggleFailed()
			return m, m.dismissCmd()
		}
		m.state.ToggleSucceeded(msg.completed)
		return m, tea.Batch(m.refresh(), m.dismissCmd())

	case taskDeletedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithFields(logrus.Fields{"op": "delete", "id": msg.id}).Error("failed to delete task")
			m.state.DeleteFailed()
			return m, m.dismissCmd()
		}
		m.state.DeleteSucceeded()
		return m, tea.Batch(m.refresh(), m.dismissCmd())

	case toast.DismissMsg:
		m.state.DismissIfCurrent(msg.Seq)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.handleListKey(msg)
		}
		return m.handleFormKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()
	case key.Matches(msg, m.keys.Expand):
		if task, ok := m.selected(); ok {
			m.state.ToggleExpand(task.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()
	case key.Matches(msg, m.keys.FilterAll):
		return m.selectFilter(client.FilterAll)
	case key.Matches(msg, m.keys.FilterPending):
		return m.selectFilter(client.FilterPending)
	case key.Matches(msg, m.keys.FilterCompleted):
		return m.selectFilter(client.FilterCompleted)
	case key.Matches(msg, m.keys.NextFilter):
		return m.selectFilter(m.state.NextFilter())
	case key.Matches(msg, m.keys.Add):
		return m.focusOn(focusTitle)
	case key.Matches(msg, m.keys.Action):
		return m.runNoticeAction()
	case key.Matches(msg, m.keys.Back):
		m.state.Dismiss()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.focusOn(focusList)
	case key.Matches(msg, m.keys.NextField):
		if m.focus == focusTitle {
			return m.focusOn(focusDescription)
		}
		return m.focusOn(focusTitle)
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case m.focus == focusTitle && key.Matches(msg, m.keys.Expand):
		return m.focusOn(focusDescription)
	}
	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.desc, cmd = m.desc.Update(msg)
	default:
		return m, nil
	}
	m.state.SetDraft(m.title.Value(), m.desc.Value())
	return m, cmd
}

func (m Model) focusOn(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	switch f {
	case focusTitle:
		return m, m.title.Focus()
	case focusDescription:
		return m, m.desc.Focus()
	}
	return m, nil
}

func (m Model) selectFilter(f client.Filter) (tea.Model, tea.Cmd) {
	if !m.state.SetFilter(f) {
		return m, nil
	}
	m.cursor = 0
	return m, m.refresh()
}

func (m Model) runNoticeAction() (tea.Model, tea.Cmd) {
	notice := m.state.Notice
	if !notice.Visible || !notice.HasAction() {
		return m, nil
	}
	m.state.Dismiss()
	switch notice.Action {
	case view.ActionReload:
		return m, m.refresh()
	}
	return m, nil
}

func (m Model) selected() (client.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Tasks) {
		return client.Task{}, false
	}
	return m.state.Tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = len(m.state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) dismissCmd() tea.Cmd {
	return toast.DismissAfter(m.state.Notice.Seq, m.dismissAfter)
}

func (m Model) refresh() tea.Cmd {
	filter := m.state.BeginRefresh()
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx, filter)
		return tasksLoadedMsg{filter: filter, tasks: tasks, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	title, description, ok := m.state.SubmitDraft()
	if !ok {
		return nil
	}
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		task, err := svc.CreateTask(ctx, title, description)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m Model) toggleSelected() tea.Cmd {
	task, ok := m.selected()
	if !ok {
		return nil
	}
	completed, ok := m.state.ToggleRequest(task.ID)
	if !ok {
		return nil
	}
	ctx, svc, id := m.ctx, m.svc, task.ID
	return func() tea.Msg {
		_, err := svc.SetTaskStatus(ctx, id, completed)
		return taskToggledMsg{id: id, completed: completed, err: err}
	}
}

func (m Model) deleteSelected() tea.Cmd {
	task, ok := m.selected()
	if !ok {
		return nil
	}
	ctx, svc, id := m.ctx, m.svc, task.ID
	return func() tea.Msg {
		return taskDeletedMsg{id: id, err: svc.DeleteTask(ctx, id)}
	}
}
