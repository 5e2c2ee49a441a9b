package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziyixi/todoview/client"
	"github.com/ziyixi/todoview/toast"
	"github.com/ziyixi/todoview/utils"
	"github.com/ziyixi/todoview/view"
)

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		toast.Render(toast.FromNotice(m.state.Notice, m.printer), m.theme.Toast, m.width),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Heading.Render(m.printer.Sprintf(utils.TextHeading))),
		m.renderForm(),
		m.renderFilters(),
		m.renderList(),
		m.theme.Hint.Render(m.help.View(m.keys)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderForm() string {
	titleBox, descBox := m.theme.Input, m.theme.Input
	switch m.focus {
	case focusTitle:
		titleBox = m.theme.InputFocus
	case focusDescription:
		descBox = m.theme.InputFocus
	}

	button := m.theme.ButtonOff
	if m.state.CanCreate() {
		button = m.theme.Button
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleBox.Width(m.width-2).Render(m.title.View()),
		descBox.Width(m.width-2).Render(m.desc.View()),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, button.Render(m.printer.Sprintf(utils.TextAdd))),
	)
}

func (m Model) renderFilters() string {
	labels := map[client.Filter]string{
		client.FilterAll:       utils.TextFilterAll,
		client.FilterPending:   utils.TextFilterPending,
		client.FilterCompleted: utils.TextFilterCompleted,
	}

	parts := make([]string, 0, len(client.Filters))
	for _, f := range client.Filters {
		style := m.theme.FilterOff
		if f == m.state.Filter {
			style = m.theme.FilterOn
		}
		parts = append(parts, style.Render(m.printer.Sprintf(labels[f])))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.state.Phase() == view.PhaseRefreshing {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, m.theme.Date.Render("  "+m.printer.Sprintf(utils.TextLoading)))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "\n"+bar+"\n")
}

func (m Model) renderList() string {
	var b strings.Builder
	if len(m.state.Tasks) == 0 {
		b.WriteString(m.theme.Date.Render(m.printer.Sprintf(utils.TextEmpty)))
	}
	for i, task := range m.state.Tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(i, task))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Date.Render(m.printer.Sprintf(utils.TextTaskCount, len(m.state.Tasks))))
	return m.theme.List.Width(m.width - 2).Render(b.String())
}

func (m Model) renderRow(i int, task client.Task) string {
	pointer := "  "
	rowStyle := m.theme.Row
	if i == m.cursor && m.focus == focusList {
		pointer = "> "
		rowStyle = m.theme.RowSelected
	}

	check := "[ ]"
	title := rowStyle.Render(task.Title)
	if task.Completed {
		check = "[x]"
		title = m.theme.Done.Render(task.Title)
	}

	marker := "▸"
	expanded := m.state.IsExpanded(task.ID)
	if expanded {
		marker = "▾"
	}

	date := m.theme.Date.Render(utils.FormatDate(task.CreatedAt, m.lang, m.loc))
	row := pointer + check + " " + title + "  " + date + " " + marker
	if !expanded {
		return row
	}
	return row + "\n" + m.theme.Description.Width(m.width-6).Render(task.Description)
}
