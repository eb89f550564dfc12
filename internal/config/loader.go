package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TUNEHUNT_"

// Load loads the tunehunt configuration.
// Search order: customPath -> ~/.tunehunt/config.yaml -> ./configs/tunehunt.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tunehunt.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tunehunt", filename)
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load env file %s: %w", path, err)
	}
	return nil
}

// ReadEnvFile parses a .env file into a lookup function usable with ApplyEnv.
func ReadEnvFile(path string) (func(string) (string, bool), error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read env file %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides single fields from TUNEHUNT_* variables.
// Pass os.LookupEnv for the process environment.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}
	float := func(name string, dst *float64) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err)
		}
		*dst = f
		return nil
	}

	str("MODE", &cfg.Game.SelectedMode)
	str("THEME", &cfg.Game.ThemeVariant)
	str("SOURCE", &cfg.Content.Source)
	str("SOURCE_URL", &cfg.Content.URL)
	str("SOURCE_FILE", &cfg.Content.File)
	str("CATALOG", &cfg.Content.CatalogPath)
	str("LOG_LEVEL", &cfg.Runtime.LogLevel)

	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"DURATION", &cfg.Game.Duration},
		{"SPAWN_FREQUENCY", &cfg.Game.SpawnFrequency},
		{"REFRESH_INTERVAL", &cfg.Content.RefreshInterval},
		{"TICK_RATE", &cfg.Runtime.TickRate},
	} {
		if err := num(f.name, f.dst); err != nil {
			return err
		}
	}

	if err := float("INITIAL_SIZE", &cfg.Game.InitialSize); err != nil {
		return err
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED: %w", EnvPrefix, err)
		}
		cfg.Runtime.Seed = seed
	}
	if v, ok := lookup(EnvPrefix + "SOUND"); ok && v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sSOUND: %w", EnvPrefix, err)
		}
		cfg.Runtime.Sound = on
	}
	return nil
}
