package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/degrees/internal/formatter"
	"github.com/desertthunder/degrees/internal/shared"
	"github.com/urfave/cli/v3"
)

// Artists performs a single artist lookup and prints the matches.
func (r *Runner) Artists(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query is required", shared.ErrMissingArgument)
	}
	if cmd.Bool("json") && cmd.Bool("csv") {
		return fmt.Errorf("%w: --json and --csv are mutually exclusive", shared.ErrInvalidFlag)
	}

	r.logger.Info("artist lookup", "query", query)

	artists, err := r.client.SearchArtists(ctx, query)
	if err != nil {
		return err
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(artists, true)
	case cmd.Bool("csv"):
		data, err := formatter.ArtistsToCSV(artists)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	}

	if len(artists) == 0 {
		return r.writePlain("No artists found for %q\n", query)
	}

	return r.writeBytes(formatter.ArtistsToTable(artists))
}
