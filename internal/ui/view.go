package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/WillyV3/taskview/internal/task"
)

const (
	minContentWidth = 40
	maxContentWidth = 72
	containerPadX   = 2
	panelChrome     = 4 // border + horizontal padding
)

const (
	emptyListText   = "No tasks yet. Add a new todo!"
	emptyFilterText = "No tasks found for this filter."
	clearText       = "Clear Completed"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return m.styles.Container.
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center).
		Render(b.String())
}

func (m Model) contentWidth() int {
	w := m.width - 2*containerPadX
	return min(max(w, minContentWidth), maxContentWidth)
}

func (m Model) panelInnerWidth() int {
	return m.contentWidth() - panelChrome
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("T O D O")
	icon := m.styles.Toggle.Render(m.mode.Icon())
	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(icon)
	return title + m.styles.Title.Render(strings.Repeat(" ", max(gap, 1))) + icon
}

func (m Model) panel(focused bool) lipgloss.Style {
	s := m.styles.Panel
	if focused {
		s = m.styles.FocusPanel
	}
	return s.Width(m.contentWidth() - 2)
}

func (m Model) renderInput() string {
	return m.panel(m.focus == focusInput).Render(m.input.View())
}

func (m Model) renderList() string {
	inner := m.panelInnerWidth()
	visible := m.VisibleTasks()

	var rows []string
	switch {
	case m.tasks.Len() == 0:
		rows = append(rows, m.styles.Empty.Width(inner).Align(lipgloss.Center).Render(emptyListText))
	case len(visible) == 0:
		rows = append(rows, m.styles.Empty.Width(inner).Align(lipgloss.Center).Render(emptyFilterText))
	default:
		for i, t := range visible {
			selected := m.focus == focusList && i == m.cursor
			rows = append(rows, m.renderTask(t, selected, inner))
		}
	}

	rows = append(rows, m.styles.Footer.Render(strings.Repeat("─", inner)))
	rows = append(rows, m.renderFooter(inner)...)

	return m.panel(m.focus == focusList).Render(strings.Join(rows, "\n"))
}

func (m Model) renderTask(t task.Task, selected bool, width int) string {
	cursor := m.styles.Task.Render("  ")
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	checkbox := m.styles.Checkbox.Render("( )")
	textStyle := m.styles.Task
	if t.Completed {
		checkbox = m.styles.CheckboxOn.Render("(✓)")
		textStyle = m.styles.TaskDone
	}
	if selected {
		textStyle = textStyle.Bold(true)
	}

	del := m.styles.Delete.Render("×")
	if selected {
		del = m.styles.Delete.Foreground(lipgloss.Color(m.styles.Palette.Danger)).Render("×")
	}

	// cursor + checkbox + space + text + gap + delete
	textWidth := width - 2 - 3 - 1 - 1 - 1
	text := runewidth.Truncate(t.Text, max(textWidth, 1), "…")
	gap := textWidth - runewidth.StringWidth(text)

	return cursor + checkbox + m.styles.Task.Render(" ") +
		textStyle.Render(text) +
		m.styles.Task.Render(strings.Repeat(" ", max(gap, 0)+1)) +
		del
}

func (m Model) renderFooter(width int) []string {
	left := m.styles.Footer.Render(itemsLeft(m.RemainingCount()))

	filters := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		style := m.styles.FilterOff
		if f == m.filter {
			style = m.styles.FilterOn
		}
		filters = append(filters, style.Render(f.Label()))
	}
	middle := strings.Join(filters, m.styles.Footer.Render("  "))
	right := m.styles.Footer.Render(clearText)

	return spread(width, m.styles.Footer, left, middle, right)
}

// spread lays parts out on one line, pushing the first left and the last
// right. When they do not fit each part gets its own line.
func spread(width int, fill lipgloss.Style, parts ...string) []string {
	used := 0
	for _, p := range parts {
		used += lipgloss.Width(p)
	}
	slack := width - used
	gaps := len(parts) - 1
	if gaps <= 0 || slack < gaps {
		return parts
	}

	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i == gaps {
			break
		}
		n := slack / gaps
		if i < slack%gaps {
			n++
		}
		b.WriteString(fill.Render(strings.Repeat(" ", n)))
	}
	return []string{b.String()}
}

func itemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" || !m.now().Before(m.statusExpire) {
		return ""
	}
	return m.styles.Status.Render(m.statusMsg)
}

func (m Model) renderHelp() string {
	if m.showHelp && m.helpDoc != "" {
		return m.helpDoc
	}
	if m.focus == focusInput {
		return m.help.View(inputKeys{keys})
	}
	return m.help.View(keys)
}
