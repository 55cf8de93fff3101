package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/degrees/internal/shared"
	"github.com/desertthunder/degrees/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive search session.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.client == nil {
		return fmt.Errorf("%w: search client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	if err := r.useFileLogger(); err != nil {
		return err
	}

	opts := ui.OptionsFromConfig(r.config)
	switch {
	case cmd.Bool("no-autocomplete"):
		opts.AutocompleteEnabled = false
	case cmd.Bool("autocomplete"):
		opts.AutocompleteEnabled = true
	}

	model := ui.NewModel(ctx, r.client, r.stats, r.logger, opts)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func (r *Runner) useFileLogger() error {
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	return nil
}
