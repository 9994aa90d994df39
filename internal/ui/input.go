package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/WillyV3/taskview/internal/theme"
)

const inputPlaceholder = "Create a new todo..."

func newTaskInput(styles theme.Styles, charLimit int) textinput.Model {
	t := textinput.New()
	t.Prompt = "○ "
	t.Placeholder = inputPlaceholder
	t.CharLimit = charLimit
	styleTaskInput(&t, styles)
	t.Focus()
	return t
}

// styleTaskInput repaints the field after a theme change.
func styleTaskInput(t *textinput.Model, styles theme.Styles) {
	t.PromptStyle = styles.Checkbox
	t.TextStyle = styles.InputText
	t.PlaceholderStyle = styles.Placeholder
	t.Cursor.Style = styles.Cursor
	t.Cursor.TextStyle = styles.InputText
}
