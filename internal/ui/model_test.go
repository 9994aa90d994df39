package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillyV3/taskview/internal/task"
	"github.com/WillyV3/taskview/internal/theme"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

type recordingBackdrop struct {
	applied []theme.Mode
	err     error
}

func (r *recordingBackdrop) Apply(p theme.Palette) error {
	r.applied = append(r.applied, p.Mode)
	return r.err
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newTestModel(backdrop theme.Backdrop, clk *clock) Model {
	n := 0
	ids := task.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	})
	if clk == nil {
		clk = &clock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	}
	m := New(Options{
		Tasks:    task.NewList(ids),
		Backdrop: backdrop,
		Renderer: lipgloss.NewRenderer(io.Discard),
		Now:      clk.now,
	})
	return update(m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func update(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	ctrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
)

func submit(m Model, text string) Model {
	m = update(m, runes(text))
	return update(m, enterKey)
}

// initBackdrop delivers the backdrop repaint scheduled by Init.
func initBackdrop(m Model) Model {
	return update(m, m.applyBackdrop()())
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	m := New(Options{})

	assert.Empty(t, m.Tasks())
	assert.Empty(t, m.PendingInput())
	assert.Equal(t, task.FilterAll, m.Filter())
	assert.Equal(t, theme.Dark, m.Theme())
	assert.Equal(t, focusInput, m.focus)
	assert.Equal(t, "Loading...", m.View())
}

func TestSubmitNewTask_BlankInputIsNoop(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", " ", "   "} {
		m := newTestModel(nil, nil)
		m = submit(m, in)

		assert.Empty(t, m.Tasks(), "input %q", in)
		assert.Equal(t, in, m.PendingInput(), "input %q", in)
	}
}

func TestSubmitNewTask_TrimsAndClearsInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "  Buy milk ")

	require.Len(t, m.Tasks(), 1)
	got := m.Tasks()[0]
	assert.Equal(t, "Buy milk", got.Text)
	assert.False(t, got.Completed)
	assert.Empty(t, m.PendingInput())
}

func TestSubmitNewTask_LongInputIsKept(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 250)
	m := newTestModel(nil, nil)
	m = submit(m, long)

	require.Len(t, m.Tasks(), 1)
	assert.Equal(t, long, m.Tasks()[0].Text)
}

func TestSubmitNewTask_LeadingWhitespaceDoesNotEatText(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, strings.Repeat(" ", 200)+"Buy milk")

	require.Len(t, m.Tasks(), 1)
	assert.Equal(t, "Buy milk", m.Tasks()[0].Text)
}

func TestSubmitNewTask_CharLimitCapsInput(t *testing.T) {
	t.Parallel()

	m := New(Options{CharLimit: 5, Renderer: lipgloss.NewRenderer(io.Discard)})
	m = submit(m, "abcdefgh")

	require.Len(t, m.Tasks(), 1)
	assert.Equal(t, "abcde", m.Tasks()[0].Text)
}

func TestScenario_AddToggleFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "Buy milk")
	m = submit(m, "  ")
	m = submit(m, "Walk dog")

	tasks := m.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, "Walk dog", tasks[1].Text)
	assert.Equal(t, 2, m.RemainingCount())

	m = update(m, tabKey)
	m = update(m, spaceKey)
	assert.Equal(t, 1, m.RemainingCount())

	m = update(m, runes("2"))
	visible := m.VisibleTasks()
	require.Len(t, visible, 1)
	assert.Equal(t, "Walk dog", visible[0].Text)
	assert.False(t, visible[0].Completed)

	m = update(m, runes("3"))
	visible = m.VisibleTasks()
	require.Len(t, visible, 1)
	assert.Equal(t, "Buy milk", visible[0].Text)
	assert.True(t, visible[0].Completed)
	assert.Equal(t, 1, m.RemainingCount())
}

func TestToggleTaskCompletion_TwiceRestores(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "Call mom")
	m = submit(m, "Call mom")

	m = m.ToggleTaskCompletion("t1")
	tasks := m.Tasks()
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[1].Completed, "duplicate text must not toggle")

	m = m.ToggleTaskCompletion("t1")
	assert.False(t, m.Tasks()[0].Completed)
}

func TestDeleteKey_RemovesSelectedAndClampsCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "a")
	m = submit(m, "b")
	m = update(m, escKey)
	m = update(m, downKey)
	require.Equal(t, 1, m.cursor)

	m = update(m, runes("d"))

	require.Len(t, m.Tasks(), 1)
	assert.Equal(t, "a", m.Tasks()[0].Text)
	assert.Equal(t, 0, m.cursor)
}

func TestClearCompletedKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	for _, s := range []string{"a", "b", "c"} {
		m = submit(m, s)
	}
	m = m.ToggleTaskCompletion("t1")
	m = m.ToggleTaskCompletion("t3")
	m = update(m, tabKey)

	m = update(m, runes("c"))

	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Text)
	assert.Equal(t, "Cleared 2 completed tasks", m.statusMsg)
}

func TestRemainingCount_IndependentOfFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "a")
	m = submit(m, "b")
	m = m.ToggleTaskCompletion("t2")

	for _, f := range task.Filters {
		m = m.SetFilter(f)
		assert.Equal(t, 1, m.RemainingCount(), "filter %s", f)
	}
	assert.Len(t, m.Tasks(), 2)
}

func TestFilterCycleKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = update(m, tabKey)

	m = update(m, runes("f"))
	assert.Equal(t, task.FilterActive, m.Filter())
	m = update(m, runes("f"))
	assert.Equal(t, task.FilterCompleted, m.Filter())
	m = update(m, runes("1"))
	assert.Equal(t, task.FilterAll, m.Filter())
}

func TestToggleTheme_RoundTripRepaintsBackdrop(t *testing.T) {
	t.Parallel()

	rec := &recordingBackdrop{}
	m := initBackdrop(newTestModel(rec, nil))
	require.Equal(t, []theme.Mode{theme.Dark}, rec.applied)

	m, cmd := m.ToggleTheme()
	assert.Equal(t, theme.Light, m.Theme())
	require.NotNil(t, cmd)
	m = update(m, cmd())

	m, cmd = m.ToggleTheme()
	assert.Equal(t, theme.Dark, m.Theme())
	require.NotNil(t, cmd)
	m = update(m, cmd())

	assert.Equal(t, []theme.Mode{theme.Dark, theme.Light, theme.Dark}, rec.applied)
	assert.False(t, m.backdropBusy)
}

func TestToggleTheme_CoalescesWhileBackdropBusy(t *testing.T) {
	t.Parallel()

	rec := &recordingBackdrop{}
	m := initBackdrop(newTestModel(rec, nil))

	m, first := m.ToggleTheme()
	require.NotNil(t, first)
	m, second := m.ToggleTheme()
	assert.Nil(t, second)

	updated, again := m.Update(first())
	m = updated.(Model)
	require.NotNil(t, again, "stale repaint should be retried")
	m = update(m, again())

	assert.Equal(t, []theme.Mode{theme.Dark, theme.Light, theme.Dark}, rec.applied)
	assert.Equal(t, theme.Dark, m.Theme())
}

func TestToggleTheme_BackdropErrorKeepsRunning(t *testing.T) {
	t.Parallel()

	rec := &recordingBackdrop{err: errors.New("no tty")}
	m := initBackdrop(newTestModel(rec, nil))

	m, cmd := m.ToggleTheme()
	m = update(m, cmd())

	assert.Equal(t, theme.Light, m.Theme())
	assert.False(t, m.backdropBusy)
}

func TestCtrlT_TogglesThemeWithoutTyping(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = update(m, runes("milk"))
	m = update(m, ctrlT)

	assert.Equal(t, theme.Light, m.Theme())
	assert.Equal(t, "milk", m.PendingInput())
}

func TestQuitKey_OnlyFromList(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = update(m, runes("q"))
	assert.Equal(t, "q", m.PendingInput())

	m = update(m, escKey)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_EmptyMessages(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	view := stripANSI(m.View())
	assert.Contains(t, view, emptyListText)
	assert.Contains(t, view, "0 items left")

	m = submit(m, "Walk dog")
	m = m.SetFilter(task.FilterCompleted)
	view = stripANSI(m.View())
	assert.Contains(t, view, emptyFilterText)
	assert.NotContains(t, view, emptyListText)
	assert.Contains(t, view, "1 item left")
}

func TestView_RendersTasksAndFooter(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = submit(m, "Buy milk")
	m = submit(m, "Walk dog")
	m = m.ToggleTaskCompletion("t1")

	view := stripANSI(m.View())
	assert.Contains(t, view, "(✓) Buy milk")
	assert.Contains(t, view, "( ) Walk dog")
	assert.Contains(t, view, "×")
	assert.Contains(t, view, "1 item left")
	assert.Contains(t, view, "All")
	assert.Contains(t, view, "Active")
	assert.Contains(t, view, "Completed")
	assert.Contains(t, view, clearText)
	assert.Contains(t, view, "T O D O")
	assert.Contains(t, view, theme.Dark.Icon())
}

func TestView_StatusExpires(t *testing.T) {
	t.Parallel()

	clk := &clock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	m := newTestModel(nil, clk)
	m = submit(m, "Buy milk")
	assert.Contains(t, stripANSI(m.View()), "Task added")

	clk.t = clk.t.Add(4 * time.Second)
	assert.NotContains(t, stripANSI(m.View()), "Task added")
}

func TestHelpKey_RendersKeyReference(t *testing.T) {
	t.Parallel()

	m := newTestModel(nil, nil)
	m = update(m, tabKey)
	m = update(m, runes("?"))
	require.True(t, m.showHelp)
	require.NotEmpty(t, m.helpDoc)
	assert.Contains(t, stripANSI(m.View()), "Keys")

	m = update(m, runes("?"))
	assert.False(t, m.showHelp)
	assert.Empty(t, m.helpDoc)
}

func TestSpread(t *testing.T) {
	t.Parallel()

	fill := lipgloss.NewRenderer(io.Discard).NewStyle()

	assert.Equal(t, []string{"a   b   c"}, spread(9, fill, "a", "b", "c"))
	assert.Equal(t, []string{"abc", "def"}, spread(4, fill, "abc", "def"))
}
