// ABOUTME: Configuration loading and parsing for kas-gateway
// ABOUTME: Supports YAML files with environment variable expansion, duration parsing, and defaults

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for values left empty in the config file.
const (
	DefaultTrackerKeyPrefix     = "kas:agent_tracker"
	DefaultTrackerTTL           = 5 * time.Minute
	DefaultTrackerRefreshPeriod = 4 * time.Minute
	DefaultTrackerGCPeriod      = 10 * time.Minute
	DefaultDedupeTTL            = time.Minute
	DefaultDedupeMaxEntries     = 100000
	DefaultMetricsPath          = "/metrics"

	// MinRefreshPeriod is the overlap the tracker leaves before entries expire.
	MinRefreshPeriod = 5 * time.Second
)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "KAS_CONFIG"

// Config represents the complete kas-gateway configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tracker   TrackerConfig   `yaml:"tracker"`
	Registrar RegistrarConfig `yaml:"registrar"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// AuthConfig holds authentication configuration.
// An empty JWTSecret disables authentication.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// TailscaleConfig holds Tailscale tsnet configuration
type TailscaleConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Hostname  string `yaml:"hostname"`
	AuthKey   string `yaml:"auth_key"`
	StateDir  string `yaml:"state_dir"`
	Ephemeral bool   `yaml:"ephemeral"`
}

// ServerConfig holds server address configuration
type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// TrackerConfig holds agent connection tracker timing
type TrackerConfig struct {
	KeyPrefix string `yaml:"key_prefix"`

	TTL           time.Duration `yaml:"-"`
	RefreshPeriod time.Duration `yaml:"-"`
	GCPeriod      time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling
	TTLRaw           string `yaml:"ttl"`
	RefreshPeriodRaw string `yaml:"refresh_period"`
	GCPeriodRaw      string `yaml:"gc_period"`
}

// RegistrarConfig holds registration dedupe settings
type RegistrarConfig struct {
	DedupeTTL        time.Duration `yaml:"-"`
	DedupeTTLRaw     string        `yaml:"dedupe_ttl"`
	DedupeMaxEntries int           `yaml:"dedupe_max_entries"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	if cfg.Database.Path, err = expandHome(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("expanding database.path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns $KAS_CONFIG when set, otherwise kas/gateway.yaml under
// $XDG_CONFIG_HOME (falling back to ~/.config).
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "kas", "gateway.yaml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "kas", "gateway.yaml")
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func (c *Config) applyDefaults() {
	if c.Tracker.KeyPrefix == "" {
		c.Tracker.KeyPrefix = DefaultTrackerKeyPrefix
	}
	if c.Tracker.TTL == 0 {
		c.Tracker.TTL = DefaultTrackerTTL
	}
	if c.Tracker.RefreshPeriod == 0 {
		c.Tracker.RefreshPeriod = DefaultTrackerRefreshPeriod
	}
	if c.Tracker.GCPeriod == 0 {
		c.Tracker.GCPeriod = DefaultTrackerGCPeriod
	}
	if c.Registrar.DedupeTTL == 0 {
		c.Registrar.DedupeTTL = DefaultDedupeTTL
	}
	if c.Registrar.DedupeMaxEntries == 0 {
		c.Registrar.DedupeMaxEntries = DefaultDedupeMaxEntries
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	// Server addresses are required unless Tailscale is enabled
	if !c.Tailscale.Enabled {
		if c.Server.GRPCAddr == "" {
			return errors.New("server.grpc_addr is required (or enable tailscale)")
		}
		if c.Server.HTTPAddr == "" {
			return errors.New("server.http_addr is required (or enable tailscale)")
		}
	}

	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return errors.New("tailscale.hostname is required when tailscale is enabled")
	}

	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}

	t := c.Tracker
	if t.TTL <= 0 || t.GCPeriod <= 0 {
		return errors.New("tracker.ttl and tracker.gc_period must be positive")
	}
	if t.RefreshPeriod <= MinRefreshPeriod {
		return fmt.Errorf("tracker.refresh_period must be greater than %s, got %s", MinRefreshPeriod, t.RefreshPeriod)
	}
	if t.RefreshPeriod >= t.TTL {
		return fmt.Errorf("tracker.refresh_period (%s) must be less than tracker.ttl (%s)", t.RefreshPeriod, t.TTL)
	}

	if c.Registrar.DedupeTTL <= 0 || c.Registrar.DedupeTTL >= t.TTL {
		return fmt.Errorf("registrar.dedupe_ttl (%s) must be positive and less than tracker.ttl (%s)", c.Registrar.DedupeTTL, t.TTL)
	}
	if c.Registrar.DedupeMaxEntries < 0 {
		return errors.New("registrar.dedupe_max_entries must not be negative")
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"tracker.ttl", cfg.Tracker.TTLRaw, &cfg.Tracker.TTL},
		{"tracker.refresh_period", cfg.Tracker.RefreshPeriodRaw, &cfg.Tracker.RefreshPeriod},
		{"tracker.gc_period", cfg.Tracker.GCPeriodRaw, &cfg.Tracker.GCPeriod},
		{"registrar.dedupe_ttl", cfg.Registrar.DedupeTTLRaw, &cfg.Registrar.DedupeTTL},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = d
	}
	return nil
}
