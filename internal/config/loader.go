package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the profiles configuration.
// Search order: customPath -> ~/.numguess/configs/profiles.yaml ->
// ./configs/profiles.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or invalid.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("profiles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "profiles.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultProfilesYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes and validates a profiles file, filling in defaults for
// omitted top-level fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Variants) == 0 {
		return Config{}, errors.New("no variants defined")
	}
	if cfg.DefaultVariant == "" {
		if _, ok := cfg.Variants[DefaultVariantID]; ok {
			cfg.DefaultVariant = DefaultVariantID
		} else {
			for id := range cfg.Variants {
				if cfg.DefaultVariant == "" || id < cfg.DefaultVariant {
					cfg.DefaultVariant = id
				}
			}
		}
	}
	if cfg.DefaultDifficulty == "" {
		cfg.DefaultDifficulty = DifficultyEasy
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every profile is playable and that the defaults
// refer to something that exists.
func (c Config) Validate() error {
	if _, ok := c.Variants[c.DefaultVariant]; !ok {
		return fmt.Errorf("default variant %q is not defined", c.DefaultVariant)
	}
	if _, ok := ParseDifficulty(string(c.DefaultDifficulty)); !ok {
		return fmt.Errorf("unknown default difficulty %q", c.DefaultDifficulty)
	}
	for id, v := range c.Variants {
		for _, d := range Difficulties() {
			p := v.Profiles.Profile(d)
			if p.Range < 1 {
				return fmt.Errorf("variant %q: %s range must be >= 1, got %d", id, d, p.Range)
			}
			if p.MaxAttempts < 1 {
				return fmt.Errorf("variant %q: %s max_attempts must be >= 1, got %d", id, d, p.MaxAttempts)
			}
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numguess", "configs", filename)
}
