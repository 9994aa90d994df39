// Package ui implements the task manager view as a Bubble Tea model.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/WillyV3/taskview/internal/task"
	"github.com/WillyV3/taskview/internal/theme"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

const (
	defaultStatusTTL = 3 * time.Second
)

// Options configures a Model. Zero values pick the defaults: an empty list,
// dark theme, "all" filter, no backdrop and no input length cap.
type Options struct {
	Tasks     *task.List
	Theme     theme.Mode
	Filter    task.Filter
	Backdrop  theme.Backdrop
	Renderer  *lipgloss.Renderer
	CharLimit int
	StatusTTL time.Duration
	Now       func() time.Time
}

// Model owns the task list, the pending input, the filter and the theme.
type Model struct {
	tasks    *task.List
	input    textinput.Model
	filter   task.Filter
	mode     theme.Mode
	styles   theme.Styles
	renderer *lipgloss.Renderer

	backdrop     theme.Backdrop
	backdropBusy bool

	focus    focus
	cursor   int
	width    int
	height   int
	help     help.Model
	showHelp bool
	helpDoc  string

	statusMsg    string
	statusExpire time.Time
	statusTTL    time.Duration
	now          func() time.Time
}

type tickMsg time.Time

type backdropAppliedMsg struct {
	mode theme.Mode
	err  error
}

// New builds the view. The backdrop for the initial theme is applied by Init.
func New(opts Options) Model {
	if opts.Tasks == nil {
		opts.Tasks = task.NewList()
	}
	if opts.Theme == "" {
		opts.Theme = theme.Dark
	}
	if opts.Filter == "" {
		opts.Filter = task.FilterAll
	}
	if opts.Backdrop == nil {
		opts.Backdrop = theme.NopBackdrop
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.CharLimit < 0 {
		opts.CharLimit = 0
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = defaultStatusTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	styles := theme.NewStyles(opts.Renderer, theme.PaletteFor(opts.Theme))
	return Model{
		tasks:        opts.Tasks,
		input:        newTaskInput(styles, opts.CharLimit),
		filter:       opts.Filter,
		mode:         opts.Theme,
		styles:       styles,
		renderer:     opts.Renderer,
		backdrop:     opts.Backdrop,
		backdropBusy: true,
		focus:        focusInput,
		help:         newHelp(styles),
		statusTTL:    opts.StatusTTL,
		now:          opts.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick(), m.applyBackdrop())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.panelInnerWidth()-lipgloss.Width(m.input.Prompt)-1, 1)
		m.help.Width = m.contentWidth()
		m.refreshHelpDoc()
		return m, nil

	case tickMsg:
		return m, tick()

	case backdropAppliedMsg:
		m.backdropBusy = false
		if msg.err != nil {
			log.Warn().Err(msg.err).Str("theme", msg.mode.String()).Msg("apply backdrop")
		}
		if msg.mode != m.mode {
			return m.requestBackdrop()
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, keys.AnyTheme):
		return m.ToggleTheme()

	case key.Matches(msg, keys.Focus):
		if m.focus == focusInput {
			return m.focusList(), nil
		}
		return m.focusInput()
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return m.SubmitNewTask(), nil

	case key.Matches(msg, keys.Blur):
		return m.focusList(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.refreshHelpDoc()
		return m, nil

	case key.Matches(msg, keys.Blur):
		m.showHelp = false
		return m, nil

	case key.Matches(msg, keys.Add):
		return m.focusInput()

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.VisibleTasks())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if t, ok := m.selectedTask(); ok {
			return m.ToggleTaskCompletion(t.ID), nil
		}
		return m, nil

	case key.Matches(msg, keys.Delete):
		if t, ok := m.selectedTask(); ok {
			return m.DeleteTask(t.ID), nil
		}
		return m, nil

	case key.Matches(msg, keys.All):
		return m.SetFilter(task.FilterAll), nil

	case key.Matches(msg, keys.Active):
		return m.SetFilter(task.FilterActive), nil

	case key.Matches(msg, keys.Completed):
		return m.SetFilter(task.FilterCompleted), nil

	case key.Matches(msg, keys.Cycle):
		return m.SetFilter(m.filter.Next()), nil

	case key.Matches(msg, keys.Clear):
		return m.ClearCompleted(), nil

	case key.Matches(msg, keys.Theme):
		return m.ToggleTheme()
	}

	return m, nil
}

func (m Model) focusList() Model {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()
	return m
}

func (m Model) focusInput() (Model, tea.Cmd) {
	m.focus = focusInput
	m.showHelp = false
	return m, m.input.Focus()
}

// SubmitNewTask adds the pending input as a task. Blank input is ignored and
// left in the field.
func (m Model) SubmitNewTask() Model {
	t, ok := m.tasks.Add(m.input.Value())
	if !ok {
		return m
	}
	m.input.Reset()
	log.Debug().Str("task_id", t.ID).Int("tasks", m.tasks.Len()).Msg("task added")
	m.setStatus("Task added")
	return m
}

// ToggleTaskCompletion flips the completed flag of the task with id.
func (m Model) ToggleTaskCompletion(id string) Model {
	if !m.tasks.Toggle(id) {
		return m
	}
	t, _ := m.tasks.Get(id)
	log.Debug().Str("task_id", id).Bool("completed", t.Completed).Msg("task toggled")
	if t.Completed {
		m.setStatus("✓ Task completed!")
	} else {
		m.setStatus("Task reopened")
	}
	m.clampCursor()
	return m
}

// DeleteTask removes the task with id.
func (m Model) DeleteTask(id string) Model {
	if !m.tasks.Delete(id) {
		return m
	}
	log.Debug().Str("task_id", id).Msg("task deleted")
	m.setStatus("Task deleted")
	m.clampCursor()
	return m
}

// ClearCompleted removes every completed task.
func (m Model) ClearCompleted() Model {
	n := m.tasks.ClearCompleted()
	log.Debug().Int("removed", n).Msg("cleared completed")
	switch n {
	case 0:
		m.setStatus("Nothing to clear")
	case 1:
		m.setStatus("Cleared 1 completed task")
	default:
		m.setStatus(fmt.Sprintf("Cleared %d completed tasks", n))
	}
	m.clampCursor()
	return m
}

// SetFilter changes which tasks are visible.
func (m Model) SetFilter(f task.Filter) Model {
	m.filter = f
	m.clampCursor()
	return m
}

// ToggleTheme flips dark/light and returns the command that repaints the
// backdrop.
func (m Model) ToggleTheme() (Model, tea.Cmd) {
	m.mode = m.mode.Toggle()
	m.styles = theme.NewStyles(m.renderer, theme.PaletteFor(m.mode))
	styleTaskInput(&m.input, m.styles)
	m.help.Styles = newHelp(m.styles).Styles
	m.refreshHelpDoc()
	log.Debug().Str("theme", m.mode.String()).Msg("theme toggled")
	return m.requestBackdrop()
}

// requestBackdrop starts a backdrop repaint unless one is in flight; the
// completion message re-requests if the theme moved on meanwhile.
func (m Model) requestBackdrop() (Model, tea.Cmd) {
	if m.backdropBusy {
		return m, nil
	}
	m.backdropBusy = true
	return m, m.applyBackdrop()
}

func (m Model) applyBackdrop() tea.Cmd {
	b := m.backdrop
	p := m.styles.Palette
	return func() tea.Msg {
		return backdropAppliedMsg{mode: p.Mode, err: b.Apply(p)}
	}
}

// VisibleTasks is the task list under the current filter.
func (m Model) VisibleTasks() []task.Task {
	return m.tasks.Visible(m.filter)
}

// RemainingCount is the number of incomplete tasks, whatever the filter.
func (m Model) RemainingCount() int {
	return m.tasks.Remaining()
}

// PendingInput is the uncommitted text of the add-task field.
func (m Model) PendingInput() string {
	return m.input.Value()
}

// Filter returns the current filter.
func (m Model) Filter() task.Filter {
	return m.filter
}

// Theme returns the current theme.
func (m Model) Theme() theme.Mode {
	return m.mode
}

// Tasks returns every task in insertion order.
func (m Model) Tasks() []task.Task {
	return m.tasks.Tasks()
}

func (m Model) selectedTask() (task.Task, bool) {
	visible := m.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpire = m.now().Add(m.statusTTL)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
