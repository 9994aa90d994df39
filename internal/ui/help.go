package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/WillyV3/taskview/internal/theme"
)

const helpMarkdown = `# Keys

Type into the field and press **enter** to add a task. **tab** moves between
the field and the list.

| key | action |
| --- | --- |
| ↑/k, ↓/j | move up / down |
| space, x, enter | toggle task |
| d | delete task |
| 1, 2, 3 | show all / active / completed |
| f | next filter |
| c | clear completed |
| t, ctrl+t | toggle theme |
| a, n | new task |
| ? | close help |
| q, ctrl+c | quit |
`

func newHelp(styles theme.Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.Status.Italic(false).Bold(true)
	h.Styles.ShortDesc = styles.Status.Italic(false).Foreground(styles.Footer.GetForeground())
	h.Styles.ShortSeparator = h.Styles.ShortDesc
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	h.Styles.Ellipsis = h.Styles.ShortDesc
	return h
}

// refreshHelpDoc re-renders the help page for the current theme and width.
// It only does work while the help page is open.
func (m *Model) refreshHelpDoc() {
	if !m.showHelp {
		m.helpDoc = ""
		return
	}
	m.helpDoc = renderHelpDoc(m.styles.Palette, m.contentWidth())
}

func renderHelpDoc(p theme.Palette, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(p.Glamour),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Warn().Err(err).Msg("create help renderer")
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		log.Warn().Err(err).Msg("render help")
		return helpMarkdown
	}
	return strings.Trim(out, "\n")
}
