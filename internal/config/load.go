package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the pipeline file looked up when no -config flag is given.
const FileName = "xform.yaml"

// Load loads configuration with priority: defaults < file < flags.
// args are the command-line arguments after the subcommand; flag errors
// and usage are written to out.
func Load(args []string, out io.Writer) (*Config, error) {
	fs, f := newFlagSet(out)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	configPath := f.config
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	f.apply(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "xform")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "xform")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "xform")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "xform")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
