// Package config loads and validates the deck.yaml configuration that
// describes a slide deck project: entry file, package manager, dependency
// directory, and the names of the delegated scripts.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManagerKind enumerates supported package managers (stringly for YAML compatibility)
type ManagerKind string

const (
	ManagerNpm  ManagerKind = "npm"
	ManagerPnpm ManagerKind = "pnpm"
	ManagerYarn ManagerKind = "yarn"
)

// Config represents the deck.yaml configuration. All fields are optional;
// a bare deck directory with no config file works with defaults alone.
type Config struct {
	// Entry is the deck entry file served and built by the presentation tool.
	Entry string `yaml:"entry,omitempty"`
	// PackageManager selects npm, pnpm or yarn. Empty means lockfile detection.
	PackageManager string `yaml:"package_manager,omitempty"`
	// DepsDir is the dependency directory removed by clean.
	DepsDir string `yaml:"deps_dir,omitempty"`
	// Output is the static build output directory (informational; the build
	// script owns its own arguments).
	Output string `yaml:"output,omitempty"`
	// Scripts overrides the package.json script names used per operation.
	Scripts ScriptsConfig `yaml:"scripts,omitempty"`
	// Dev holds dev-server specific knobs.
	Dev DevConfig `yaml:"dev,omitempty"`
}

// ScriptsConfig holds the script names resolved through the package-script runner.
type ScriptsConfig struct {
	Dev    string `yaml:"dev,omitempty"`
	Build  string `yaml:"build,omitempty"`
	Export string `yaml:"export,omitempty"`
}

// DevConfig holds dev-server specific configuration.
type DevConfig struct {
	// WatchConfig restarts the dev delegate when the config file changes.
	WatchConfig bool `yaml:"watch_config,omitempty"`
}

// Load loads a configuration file. A missing file is not an error: the
// wrapper must work in a bare deck directory, so defaults apply instead.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just log it to stderr
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	var config Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		applyDefaults(&config)
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&config)
	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// normalize case-folds enumerations and trims stray whitespace.
func normalize(config *Config) {
	config.PackageManager = strings.ToLower(strings.TrimSpace(config.PackageManager))
	config.Entry = strings.TrimSpace(config.Entry)
	config.DepsDir = strings.TrimSpace(config.DepsDir)
	config.Output = strings.TrimSpace(config.Output)
}

// applyDefaults applies default values to configuration
func applyDefaults(config *Config) {
	if config.Entry == "" {
		config.Entry = "slides.md"
	}
	if config.DepsDir == "" {
		config.DepsDir = "node_modules"
	}
	if config.Output == "" {
		config.Output = "dist"
	}
	if config.Scripts.Dev == "" {
		config.Scripts.Dev = "dev"
	}
	if config.Scripts.Build == "" {
		config.Scripts.Build = "build"
	}
	if config.Scripts.Export == "" {
		config.Scripts.Export = "export"
	}
}

// validate validates the configuration
func validate(config *Config) error {
	switch ManagerKind(config.PackageManager) {
	case "", ManagerNpm, ManagerPnpm, ManagerYarn:
	default:
		return fmt.Errorf("unsupported package_manager: %s (expected npm, pnpm or yarn)", config.PackageManager)
	}
	return nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Entry:          "slides.md",
		PackageManager: "npm",
		DepsDir:        "node_modules",
		Output:         "dist",
		Scripts: ScriptsConfig{
			Dev:    "dev",
			Build:  "build",
			Export: "export",
		},
		Dev: DevConfig{
			WatchConfig: false,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
