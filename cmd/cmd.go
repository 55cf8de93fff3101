// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// tuiCommand launches the interactive search session
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui", "interactive"},
		Usage:   "Launch the interactive search",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "autocomplete",
				Usage: "Enable artist autocomplete",
			},
			&cli.BoolFlag{
				Name:  "no-autocomplete",
				Usage: "Disable artist autocomplete",
			},
		},
		Action: r.TUI,
	}
}

// searchCommand runs a single search and prints the result
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search for the connection between two artists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Aliases:  []string{"f"},
				Usage:    "First artist",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Aliases:  []string{"t"},
				Usage:    "Second artist",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Traversal algorithm (bfs or dfs); defaults to client.default_algorithm",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Run without the interface and print plain text",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Run without the interface and print Markdown",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Run without the interface and print raw JSON",
			},
		},
		Action: r.Search,
	}
}

// artistsCommand runs one autocomplete lookup
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Look up artists by name",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
		},
		Action: r.Artists,
	}
}

// statusCommand inspects a running search
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the status of a search",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Status,
	}
}

// resultCommand fetches the result of a finished search
func resultCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "result",
		Usage: "Show the result of a completed search",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output Markdown",
			},
		},
		Action: r.Result,
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the search API",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the search API, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output compact JSON",
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Output path (defaults to --config)",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration as TOML",
				Action: r.ConfigShow,
			},
		},
	}
}
