package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/degrees/internal/services"
	"github.com/desertthunder/degrees/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	api        *services.APIService
	client     services.SearchAPI
	stats      services.StatsRefresher
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A nil API is built from Config; a nil Client wraps API in a [services.SearchClient].
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	API        *services.APIService
	Client     services.SearchAPI
	Stats      services.StatsRefresher
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = newHTTPClient(opts.Config)
	}
	if opts.Stats == nil {
		opts.Stats = services.NoopStats{}
	}

	r := &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		stats:      opts.Stats,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	r.api = opts.API
	if r.api == nil {
		r.api = newAPIService(r.config, r.httpClient)
	}
	r.client = opts.Client
	if r.client == nil {
		r.client = services.NewSearchClient(r.api)
	}
	return r
}

func newHTTPClient(cfg *shared.Config) *http.Client {
	return &http.Client{Timeout: shared.Duration(cfg.Server.Timeout, 0)}
}

func newAPIService(cfg *shared.Config, client *http.Client) *services.APIService {
	return services.NewAPIService(cfg.Server.BaseURL, client,
		services.WithRateLimit(cfg.Client.RequestsPerSecond),
		services.WithBreaker(cfg.Breaker),
	)
}

// Setup loads the configuration named by --config, applies environment and flag overrides, and rebuilds the API
// client from the result. A missing config file leaves the defaults in place.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	config := shared.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		config = loaded
	}

	config.ApplyEnv()
	if url := cmd.String("base-url"); url != "" {
		config.Server.BaseURL = url
	}
	if err := config.Validate(); err != nil {
		return ctx, err
	}

	r.configure(config, path)
	return ctx, nil
}

func (r *Runner) configure(config *shared.Config, path string) {
	r.config = config
	r.configPath = path
	shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))

	r.httpClient = newHTTPClient(config)
	r.api = newAPIService(config, r.httpClient)
	r.client = services.NewSearchClient(r.api)

	r.logger.Debug("configured", "base_url", r.api.BaseURL(), "config", path)
}

// SetLogger replaces the logger, keeping the configured level.
func (r *Runner) SetLogger(l *log.Logger) {
	shared.SetLogLevel(l, shared.ParseLogLevel(r.config.Log.Level))
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tuiCommand, searchCommand, artistsCommand, statusCommand, resultCommand, apiCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
