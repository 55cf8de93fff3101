package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// EnvBaseURL overrides [ServerConfig.BaseURL] when set.
const EnvBaseURL = "DEGREES_BASE_URL"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Client  ClientConfig  `toml:"client"`
	Breaker BreakerConfig `toml:"breaker"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig locates the search API.
type ServerConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// ClientConfig contains the search session timings and autocomplete toggle.
type ClientConfig struct {
	PollInterval        string  `toml:"poll_interval"`
	Debounce            string  `toml:"debounce"`
	AlertTimeout        string  `toml:"alert_timeout"`
	AutocompleteEnabled bool    `toml:"autocomplete_enabled"`
	MinQueryLength      int     `toml:"min_query_length"`
	DefaultAlgorithm    string  `toml:"default_algorithm"`
	RequestsPerSecond   float64 `toml:"requests_per_second"`
}

// BreakerConfig configures the circuit breaker wrapped around API requests.
type BreakerConfig struct {
	Enabled      bool    `toml:"enabled"`
	MaxRequests  uint32  `toml:"max_requests"`
	Interval     string  `toml:"interval"`
	Timeout      string  `toml:"timeout"`
	FailureRatio float64 `toml:"failure_ratio"`
}

// UIConfig toggles cosmetic effects.
type UIConfig struct {
	Animations bool `toml:"animations"`
	CursorGlow bool `toml:"cursor_glow"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.Server.BaseURL = v
	}
}

// Validate checks durations, the default algorithm and numeric ranges.
func (c *Config) Validate() error {
	durations := map[string]string{
		"server.timeout":       c.Server.Timeout,
		"client.poll_interval": c.Client.PollInterval,
		"client.debounce":      c.Client.Debounce,
		"client.alert_timeout": c.Client.AlertTimeout,
		"breaker.interval":     c.Breaker.Interval,
		"breaker.timeout":      c.Breaker.Timeout,
	}
	for key, value := range durations {
		if value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
		}
	}

	switch strings.ToLower(c.Client.DefaultAlgorithm) {
	case "", "bfs", "dfs":
	default:
		return fmt.Errorf("%w: client.default_algorithm must be bfs or dfs, got %q", ErrInvalidConfig, c.Client.DefaultAlgorithm)
	}

	if c.Client.MinQueryLength < 0 {
		return fmt.Errorf("%w: client.min_query_length must not be negative", ErrInvalidConfig)
	}
	if c.Client.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: client.requests_per_second must not be negative", ErrInvalidConfig)
	}
	if c.Breaker.FailureRatio < 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("%w: breaker.failure_ratio must be within [0, 1]", ErrInvalidConfig)
	}

	return nil
}

// Duration parses a duration string, returning fallback when it is empty or malformed.
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
