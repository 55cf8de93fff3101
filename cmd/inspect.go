package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/degrees/internal/formatter"
	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
	"github.com/urfave/cli/v3"
)

func searchIDArg(cmd *cli.Command) (string, error) {
	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return "", fmt.Errorf("%w: search id is required", shared.ErrMissingArgument)
	}
	return id, nil
}

// Status prints one status poll for a search.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	id, err := searchIDArg(cmd)
	if err != nil {
		return err
	}

	update, err := r.client.Status(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(update, true)
	}
	return r.writeBytes(formatter.StatusToText(update))
}

// Result prints the result of a completed search.
//
// A completed search whose result is null is reported as not found.
func (r *Runner) Result(ctx context.Context, cmd *cli.Command) error {
	id, err := searchIDArg(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("json") && cmd.Bool("markdown") {
		return fmt.Errorf("%w: --json and --markdown are mutually exclusive", shared.ErrInvalidFlag)
	}

	env, err := r.client.Result(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(env, true)
	}

	result := env.Resolve(models.SearchRequest{})
	if err := result.Validate(); err != nil {
		return err
	}

	if cmd.Bool("markdown") {
		return r.writeBytes(formatter.ResultToMarkdown(result))
	}
	return r.writeBytes(formatter.ResultToText(result))
}
