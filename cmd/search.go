package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/degrees/internal/formatter"
	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
	"github.com/desertthunder/degrees/internal/ui"
	"github.com/urfave/cli/v3"
)

type outputFormat int

const (
	formatInteractive outputFormat = iota
	formatPlain
	formatMarkdown
	formatJSON
)

func searchFormat(cmd *cli.Command) (outputFormat, error) {
	chosen := []outputFormat{}
	for flag, f := range map[string]outputFormat{"plain": formatPlain, "markdown": formatMarkdown, "json": formatJSON} {
		if cmd.Bool(flag) {
			chosen = append(chosen, f)
		}
	}
	switch len(chosen) {
	case 0:
		return formatInteractive, nil
	case 1:
		return chosen[0], nil
	default:
		return 0, fmt.Errorf("%w: --plain, --markdown and --json are mutually exclusive", shared.ErrInvalidFlag)
	}
}

// Search runs one session with the form prefilled and submitted, then prints the result.
//
// Without an output flag the interactive view renders the session inline; with one, the session runs headless.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	from, to := cmd.String("from"), cmd.String("to")
	if from == "" || to == "" {
		return fmt.Errorf("%w: --from and --to are required", shared.ErrMissingArgument)
	}

	format, err := searchFormat(cmd)
	if err != nil {
		return err
	}

	opts := ui.OptionsFromConfig(r.config)
	if name := cmd.String("algorithm"); name != "" {
		alg, err := models.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		opts.Algorithm = alg
	}
	opts.Artist1, opts.Artist2 = from, to
	opts.AutocompleteEnabled = false
	opts.AutoSubmit = true
	opts.QuitOnResult = true

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if format == formatInteractive {
		if err := r.useFileLogger(); err != nil {
			return err
		}
	} else {
		opts.Animations, opts.CursorGlow = false, false
		programOpts = append(programOpts, tea.WithInput(nil), tea.WithoutRenderer(), tea.WithOutput(io.Discard))
	}

	model := ui.NewModel(ctx, r.client, r.stats, r.logger, opts)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("error running search: %w", err)
	}

	if err := model.Err(); err != nil {
		return err
	}
	result := model.Result()
	if result == nil && format == formatInteractive {
		return nil
	}
	if result == nil {
		return fmt.Errorf("%w: search ended without a result", shared.ErrInvalidResult)
	}

	switch format {
	case formatPlain:
		return r.writeBytes(formatter.ResultToText(result))
	case formatMarkdown:
		return r.writeBytes(formatter.ResultToMarkdown(result))
	case formatJSON:
		return r.writeJSON(result, true)
	default:
		return nil
	}
}
