package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	altScreen bool
}

// WithAltScreen toggles the full-screen alternate buffer.
func WithAltScreen(enabled bool) RunOption {
	return func(c *runConfig) {
		c.altScreen = enabled
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model, opts ...RunOption) error {
	c := &runConfig{altScreen: true}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
