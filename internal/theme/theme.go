// Package theme defines the light and dark palettes and the lipgloss styles
// derived from them.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the presentational light/dark flag.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ParseMode converts user input into a Mode. Empty input means Dark.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Dark, Light:
		return m, nil
	case "":
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Toggle flips between Dark and Light.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Icon is the glyph shown on the theme toggle: the mode you would switch to.
func (m Mode) Icon() string {
	if m == Light {
		return "☾"
	}
	return "☀"
}

// Palette is the set of colours for one mode.
type Palette struct {
	Mode      Mode
	Container string // surface behind the view
	Panel     string // input and list panels
	Border    string
	Text      string
	Muted     string
	Accent    string
	Check     string
	Danger    string
	Glamour   string // glamour standard style name
}

var palettes = map[Mode]Palette{
	Dark: {
		Mode:      Dark,
		Container: "#171823",
		Panel:     "#25273C",
		Border:    "#393A4C",
		Text:      "#FFFFFF",
		Muted:     "#767992",
		Accent:    "#3A7CFD",
		Check:     "#AC2DEB",
		Danger:    "#EF4444",
		Glamour:   "dark",
	},
	Light: {
		Mode:      Light,
		Container: "#F2F2F2",
		Panel:     "#FFFFFF",
		Border:    "#E3E4F1",
		Text:      "#494C6B",
		Muted:     "#9495A5",
		Accent:    "#3A7CFD",
		Check:     "#AC2DEB",
		Danger:    "#EF4444",
		Glamour:   "light",
	},
}

// PaletteFor returns the palette of m, falling back to Dark.
func PaletteFor(m Mode) Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Dark]
}

// Styles are the rendered building blocks of the view for one palette.
type Styles struct {
	Palette Palette

	Container   lipgloss.Style
	Title       lipgloss.Style
	Toggle      lipgloss.Style
	Panel       lipgloss.Style
	FocusPanel  lipgloss.Style
	Task        lipgloss.Style
	TaskDone    lipgloss.Style
	Cursor      lipgloss.Style
	Checkbox    lipgloss.Style
	CheckboxOn  lipgloss.Style
	Delete      lipgloss.Style
	Empty       lipgloss.Style
	Footer      lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	Status      lipgloss.Style
	Placeholder lipgloss.Style
	InputText   lipgloss.Style
}

// NewStyles builds the styles for p on renderer r. A nil renderer uses the
// lipgloss default.
func NewStyles(r *lipgloss.Renderer, p Palette) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	panelBg := lipgloss.Color(p.Panel)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)

	panel := r.NewStyle().
		Background(panelBg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		BorderBackground(lipgloss.Color(p.Container)).
		Padding(0, 1)

	return Styles{
		Palette: p,

		Container: r.NewStyle().
			Background(lipgloss.Color(p.Container)).
			Padding(1, 2),
		Title: r.NewStyle().
			Bold(true).
			Foreground(text).
			Background(lipgloss.Color(p.Container)),
		Toggle: r.NewStyle().
			Foreground(text).
			Background(lipgloss.Color(p.Container)),
		Panel:      panel,
		FocusPanel: panel.BorderForeground(lipgloss.Color(p.Accent)),
		Task: r.NewStyle().
			Foreground(text).
			Background(panelBg),
		TaskDone: r.NewStyle().
			Foreground(muted).
			Background(panelBg).
			Strikethrough(true).
			Faint(true),
		Cursor: r.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Background(panelBg).
			Bold(true),
		Checkbox: r.NewStyle().
			Foreground(lipgloss.Color(p.Border)).
			Background(panelBg),
		CheckboxOn: r.NewStyle().
			Foreground(lipgloss.Color(p.Check)).
			Background(panelBg).
			Bold(true),
		Delete: r.NewStyle().
			Foreground(muted).
			Background(panelBg),
		Empty: r.NewStyle().
			Foreground(muted).
			Background(panelBg).
			Italic(true),
		Footer: r.NewStyle().
			Foreground(muted).
			Background(panelBg),
		FilterOn: r.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Background(panelBg).
			Bold(true),
		FilterOff: r.NewStyle().
			Foreground(muted).
			Background(panelBg).
			Bold(true),
		Status: r.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Background(lipgloss.Color(p.Container)).
			Italic(true),
		Placeholder: r.NewStyle().
			Foreground(muted).
			Background(panelBg),
		InputText: r.NewStyle().
			Foreground(text).
			Background(panelBg),
	}
}
