package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziyixi/todoview/theme"
	"github.com/ziyixi/todoview/tui"
)

// shell centers the task list in a container no wider than maxWidth.
type shell struct {
	list     tui.Model
	theme    theme.Theme
	maxWidth int
	width    int
	height   int
}

func newShell(list tui.Model, maxWidth int, t theme.Theme) shell {
	return shell{list: list, theme: t, maxWidth: maxWidth}
}

func (s shell) Init() tea.Cmd {
	return s.list.Init()
}

func (s shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.width, s.height = size.Width, size.Height
		msg = tea.WindowSizeMsg{Width: s.innerWidth(), Height: size.Height}
	}
	updated, cmd := s.list.Update(msg)
	s.list = updated.(tui.Model)
	return s, cmd
}

func (s shell) innerWidth() int {
	inner := s.width - s.theme.Container.GetHorizontalFrameSize()
	if inner > s.maxWidth {
		inner = s.maxWidth
	}
	return inner
}

func (s shell) View() string {
	content := s.theme.Container.Render(s.list.View())
	if s.width == 0 {
		return content
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Top, content)
}
