package config

import (
	_ "embed"
)

//go:embed defaults/profiles.yaml
var defaultProfilesYAML []byte

// DefaultVariantID is used when neither the config nor the caller names a variant.
const DefaultVariantID = "classic"

// DefaultConfig returns the built-in configuration without touching the
// embedded YAML. It is the last-resort fallback of Load.
func DefaultConfig() Config {
	return Config{
		DefaultVariant:    DefaultVariantID,
		DefaultDifficulty: DifficultyEasy,
		Variants: map[string]Variant{
			"classic": {
				Title: "Classic",
				Profiles: ProfileSet{
					Easy:   Profile{Range: 10, MaxAttempts: 5},
					Medium: Profile{Range: 50, MaxAttempts: 7},
					Hard:   Profile{Range: 100, MaxAttempts: 10},
				},
			},
			"quick": {
				Title: "Quick",
				Profiles: ProfileSet{
					Easy:   Profile{Range: 10, MaxAttempts: 3},
					Medium: Profile{Range: 20, MaxAttempts: 4},
					Hard:   Profile{Range: 50, MaxAttempts: 5},
				},
			},
			"marathon": {
				Title: "Marathon",
				Profiles: ProfileSet{
					Easy:   Profile{Range: 100, MaxAttempts: 10},
					Medium: Profile{Range: 500, MaxAttempts: 12},
					Hard:   Profile{Range: 1000, MaxAttempts: 14},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default profiles file.
func DefaultYAML() []byte {
	return defaultProfilesYAML
}
