// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, duration parsing, defaults, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

const minimalConfig = `
server:
  grpc_addr: "localhost:50051"
  http_addr: "localhost:8080"
database:
  path: "./kas.db"
`

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  grpc_addr: "0.0.0.0:50051"
  http_addr: "0.0.0.0:8080"

database:
  path: "./test.db"

auth:
  jwt_secret: "literal-secret"

tracker:
  key_prefix: "test:tracker"
  ttl: "2m"
  refresh_period: "90s"
  gc_period: "5m"

registrar:
  dedupe_ttl: "30s"
  dedupe_max_entries: 500

logging:
  level: "debug"
  format: "json"

metrics:
  enabled: true
  path: "/internal/metrics"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.GRPCAddr != "0.0.0.0:50051" {
		t.Errorf("Server.GRPCAddr = %q, want %q", cfg.Server.GRPCAddr, "0.0.0.0:50051")
	}
	if cfg.Server.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:8080")
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "./test.db")
	}
	if cfg.Auth.JWTSecret != "literal-secret" {
		t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "literal-secret")
	}
	if cfg.Tracker.KeyPrefix != "test:tracker" {
		t.Errorf("Tracker.KeyPrefix = %q, want %q", cfg.Tracker.KeyPrefix, "test:tracker")
	}
	if cfg.Tracker.TTL != 2*time.Minute {
		t.Errorf("Tracker.TTL = %v, want %v", cfg.Tracker.TTL, 2*time.Minute)
	}
	if cfg.Tracker.RefreshPeriod != 90*time.Second {
		t.Errorf("Tracker.RefreshPeriod = %v, want %v", cfg.Tracker.RefreshPeriod, 90*time.Second)
	}
	if cfg.Tracker.GCPeriod != 5*time.Minute {
		t.Errorf("Tracker.GCPeriod = %v, want %v", cfg.Tracker.GCPeriod, 5*time.Minute)
	}
	if cfg.Registrar.DedupeTTL != 30*time.Second {
		t.Errorf("Registrar.DedupeTTL = %v, want %v", cfg.Registrar.DedupeTTL, 30*time.Second)
	}
	if cfg.Registrar.DedupeMaxEntries != 500 {
		t.Errorf("Registrar.DedupeMaxEntries = %d, want 500", cfg.Registrar.DedupeMaxEntries)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /internal/metrics", cfg.Metrics)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Tracker.KeyPrefix != DefaultTrackerKeyPrefix {
		t.Errorf("Tracker.KeyPrefix = %q, want %q", cfg.Tracker.KeyPrefix, DefaultTrackerKeyPrefix)
	}
	if cfg.Tracker.TTL != 5*time.Minute {
		t.Errorf("Tracker.TTL = %v, want 5m", cfg.Tracker.TTL)
	}
	if cfg.Tracker.RefreshPeriod != 4*time.Minute {
		t.Errorf("Tracker.RefreshPeriod = %v, want 4m", cfg.Tracker.RefreshPeriod)
	}
	if cfg.Tracker.GCPeriod != 10*time.Minute {
		t.Errorf("Tracker.GCPeriod = %v, want 10m", cfg.Tracker.GCPeriod)
	}
	if cfg.Registrar.DedupeTTL != time.Minute {
		t.Errorf("Registrar.DedupeTTL = %v, want 1m", cfg.Registrar.DedupeTTL)
	}
	if cfg.Registrar.DedupeMaxEntries != 100000 {
		t.Errorf("Registrar.DedupeMaxEntries = %d, want 100000", cfg.Registrar.DedupeMaxEntries)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want /metrics", cfg.Metrics.Path)
	}
	if cfg.Auth.JWTSecret != "" {
		t.Errorf("Auth.JWTSecret = %q, want empty", cfg.Auth.JWTSecret)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_KAS_SECRET", "from-env")
	t.Setenv("TEST_KAS_DB", "/var/lib/kas/kas.db")

	cfg, err := Load(writeConfig(t, `
server:
  grpc_addr: "localhost:50051"
  http_addr: "localhost:8080"
database:
  path: "${TEST_KAS_DB}"
auth:
  jwt_secret: "${TEST_KAS_SECRET}"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "from-env")
	}
	if cfg.Database.Path != "/var/lib/kas/kas.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/var/lib/kas/kas.db")
	}
}

func TestLoad_EnvVarExpansion_UnsetVar(t *testing.T) {
	os.Unsetenv("TEST_KAS_DEFINITELY_UNSET")

	cfg, err := Load(writeConfig(t, minimalConfig+`
auth:
  jwt_secret: "${TEST_KAS_DEFINITELY_UNSET}"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "" {
		t.Errorf("Auth.JWTSecret = %q, want empty string", cfg.Auth.JWTSecret)
	}
}

func TestLoad_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(writeConfig(t, `
server:
  grpc_addr: "localhost:50051"
  http_addr: "localhost:8080"
database:
  path: "~/.local/share/kas/kas.db"
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := filepath.Join(home, ".local/share/kas/kas.db")
	if cfg.Database.Path != want {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/gateway.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  grpc_addr: [unclosed\n"))
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"ttl", "tracker:\n  ttl: \"soon\"\n", "tracker.ttl"},
		{"refresh_period", "tracker:\n  refresh_period: \"5 minutes\"\n", "tracker.refresh_period"},
		{"gc_period", "tracker:\n  gc_period: \"x\"\n", "tracker.gc_period"},
		{"dedupe_ttl", "registrar:\n  dedupe_ttl: \"1 min\"\n", "registrar.dedupe_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, minimalConfig+tt.yaml))
			if err == nil {
				t.Fatal("Load() expected error for invalid duration, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name %s", err.Error(), tt.field)
			}
		})
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing grpc_addr",
			yaml:    "server:\n  http_addr: \"localhost:8080\"\ndatabase:\n  path: \"./kas.db\"\n",
			wantErr: "server.grpc_addr",
		},
		{
			name:    "missing http_addr",
			yaml:    "server:\n  grpc_addr: \"localhost:50051\"\ndatabase:\n  path: \"./kas.db\"\n",
			wantErr: "server.http_addr",
		},
		{
			name:    "missing database path",
			yaml:    "server:\n  grpc_addr: \"localhost:50051\"\n  http_addr: \"localhost:8080\"\n",
			wantErr: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("Load() expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{GRPCAddr: "localhost:50051", HTTPAddr: "localhost:8080"},
		Database: DatabaseConfig{Path: "kas.db"},
		Tracker: TrackerConfig{
			KeyPrefix:     DefaultTrackerKeyPrefix,
			TTL:           DefaultTrackerTTL,
			RefreshPeriod: DefaultTrackerRefreshPeriod,
			GCPeriod:      DefaultTrackerGCPeriod,
		},
		Registrar: RegistrarConfig{DedupeTTL: DefaultDedupeTTL, DedupeMaxEntries: DefaultDedupeMaxEntries},
		Metrics:   MetricsConfig{Enabled: true, Path: DefaultMetricsPath},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{
			name:    "refresh period at overlap",
			modify:  func(c *Config) { c.Tracker.RefreshPeriod = 5 * time.Second },
			wantErr: "refresh_period must be greater than",
		},
		{
			name:    "refresh period equals ttl",
			modify:  func(c *Config) { c.Tracker.RefreshPeriod = c.Tracker.TTL },
			wantErr: "must be less than tracker.ttl",
		},
		{
			name:    "zero gc period",
			modify:  func(c *Config) { c.Tracker.GCPeriod = 0 },
			wantErr: "gc_period",
		},
		{
			name:    "dedupe outlives ttl",
			modify:  func(c *Config) { c.Registrar.DedupeTTL = 10 * time.Minute },
			wantErr: "registrar.dedupe_ttl",
		},
		{
			name:    "negative dedupe size",
			modify:  func(c *Config) { c.Registrar.DedupeMaxEntries = -1 },
			wantErr: "dedupe_max_entries",
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "relative metrics path",
			modify:  func(c *Config) { c.Metrics.Path = "metrics" },
			wantErr: "metrics.path",
		},
		{
			name:   "relative metrics path while disabled",
			modify: func(c *Config) { c.Metrics.Enabled = false; c.Metrics.Path = "metrics" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TailscaleConfig(t *testing.T) {
	tests := []struct {
		name      string
		tailscale TailscaleConfig
		server    ServerConfig
		wantErr   bool
	}{
		{
			name:      "tailscale without addresses",
			tailscale: TailscaleConfig{Enabled: true, Hostname: "kas"},
		},
		{
			name:      "tailscale without hostname",
			tailscale: TailscaleConfig{Enabled: true},
			wantErr:   true,
		},
		{
			name:    "no tailscale and no addresses",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Tailscale = tt.tailscale
			cfg.Server = tt.server
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("KAS_TEST_A", "alpha")
	t.Setenv("KAS_TEST_B", "beta")

	tests := []struct {
		input string
		want  string
	}{
		{"no vars", "no vars"},
		{"${KAS_TEST_A}", "alpha"},
		{"${KAS_TEST_A}-${KAS_TEST_B}", "alpha-beta"},
		{"$KAS_TEST_A stays", "$KAS_TEST_A stays"},
		{"${KAS_TEST_UNSET_VAR}", ""},
	}

	for _, tt := range tests {
		if got := expandEnvVars(tt.input); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/kas/custom.yaml")
	if got := DefaultPath(); got != "/etc/kas/custom.yaml" {
		t.Errorf("DefaultPath() = %q, want env override", got)
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != "/tmp/xdg/kas/gateway.yaml" {
		t.Errorf("DefaultPath() = %q, want /tmp/xdg/kas/gateway.yaml", got)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	if got, want := DefaultPath(), filepath.Join(home, ".config", "kas", "gateway.yaml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
