// ABOUTME: Interactive config file generator for kas-gateway init
// ABOUTME: Prompts for addresses, database, tracker timing and logging, then writes YAML

package main

import (
	"bufio"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2389/kas-gateway/internal/config"
)

// defaultDataDir returns $XDG_DATA_HOME/kas or ~/.local/share/kas.
func defaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data"
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "kas")
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("kas-gateway configuration setup")
	fmt.Println("===============================")
	fmt.Println()

	outputFile := prompt(reader, "Config file path", config.DefaultPath())

	if _, err := os.Stat(outputFile); err == nil {
		if !yes(prompt(reader, "File exists. Overwrite?", "no")) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	answers := initAnswers{}

	fmt.Println("\n--- Server Configuration ---")
	answers.GRPCAddr = prompt(reader, "gRPC address", "localhost:50051")
	answers.HTTPAddr = prompt(reader, "HTTP address", "localhost:8080")

	fmt.Println("\n--- Database Configuration ---")
	answers.DBPath = prompt(reader, "SQLite database path", filepath.Join(defaultDataDir(), "kas.db"))

	fmt.Println("\n--- Tracker Configuration ---")
	answers.TTL = prompt(reader, "Registration TTL", config.DefaultTrackerTTL.String())
	answers.RefreshPeriod = prompt(reader, "Refresh period", config.DefaultTrackerRefreshPeriod.String())
	answers.GCPeriod = prompt(reader, "GC period", config.DefaultTrackerGCPeriod.String())

	fmt.Println("\n--- Authentication ---")
	if yes(prompt(reader, "Generate a JWT secret?", "yes")) {
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		answers.JWTSecret = secret
	}

	fmt.Println("\n--- Tailscale Configuration ---")
	answers.Tailscale = yes(prompt(reader, "Enable Tailscale?", "no"))
	if answers.Tailscale {
		answers.TSHostname = prompt(reader, "Tailscale hostname", "kas-gateway")
		answers.TSAuthKey = prompt(reader, "Tailscale auth key (leave empty for interactive)", "")
		answers.TSEphemeral = yes(prompt(reader, "Ephemeral node?", "no"))
	}

	fmt.Println("\n--- Logging Configuration ---")
	answers.LogLevel = prompt(reader, "Log level (debug/info/warn/error)", "info")
	answers.LogFormat = prompt(reader, "Log format (text/json)", "text")
	answers.Metrics = yes(prompt(reader, "Expose Prometheus metrics?", "yes"))

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(answers.render()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	dataDir := filepath.Dir(answers.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Printf("Data directory: %s\n", dataDir)
	fmt.Println("\nTo start the server:")
	fmt.Println("  kas-gateway serve")

	return nil
}

type initAnswers struct {
	GRPCAddr, HTTPAddr string
	DBPath             string
	TTL, RefreshPeriod string
	GCPeriod           string
	JWTSecret          string
	Tailscale          bool
	TSHostname         string
	TSAuthKey          string
	TSEphemeral        bool
	LogLevel           string
	LogFormat          string
	Metrics            bool
}

func (a initAnswers) render() string {
	var b strings.Builder
	b.WriteString("# kas-gateway configuration\n")
	b.WriteString("# Generated by kas-gateway init\n\n")

	b.WriteString("server:\n")
	fmt.Fprintf(&b, "  grpc_addr: %q\n", a.GRPCAddr)
	fmt.Fprintf(&b, "  http_addr: %q\n\n", a.HTTPAddr)

	b.WriteString("database:\n")
	fmt.Fprintf(&b, "  path: %q\n\n", a.DBPath)

	b.WriteString("tracker:\n")
	fmt.Fprintf(&b, "  ttl: %q\n", a.TTL)
	fmt.Fprintf(&b, "  refresh_period: %q\n", a.RefreshPeriod)
	fmt.Fprintf(&b, "  gc_period: %q\n\n", a.GCPeriod)

	b.WriteString("auth:\n")
	fmt.Fprintf(&b, "  jwt_secret: %q\n\n", a.JWTSecret)

	b.WriteString("tailscale:\n")
	fmt.Fprintf(&b, "  enabled: %t\n", a.Tailscale)
	if a.Tailscale {
		fmt.Fprintf(&b, "  hostname: %q\n", a.TSHostname)
		if a.TSAuthKey != "" {
			fmt.Fprintf(&b, "  auth_key: %q\n", a.TSAuthKey)
		}
		fmt.Fprintf(&b, "  ephemeral: %t\n", a.TSEphemeral)
	}
	b.WriteString("\n")

	b.WriteString("logging:\n")
	fmt.Fprintf(&b, "  level: %q\n", a.LogLevel)
	fmt.Fprintf(&b, "  format: %q\n\n", a.LogFormat)

	b.WriteString("metrics:\n")
	fmt.Fprintf(&b, "  enabled: %t\n", a.Metrics)
	fmt.Fprintf(&b, "  path: %q\n", config.DefaultMetricsPath)

	return b.String()
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating JWT secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func yes(s string) bool {
	s = strings.ToLower(s)
	return s == "yes" || s == "y"
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
