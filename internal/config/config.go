// Package config provides YAML-based difficulty profiles and environment
// overrides for numguess.
package config

// Profile is the parameter set of one difficulty: the target is drawn from
// [1, Range] and the player gets MaxAttempts guesses.
type Profile struct {
	Range       int `yaml:"range"`
	MaxAttempts int `yaml:"max_attempts"`
}

// ProfileSet holds the three difficulty profiles of a variant.
type ProfileSet struct {
	Easy   Profile `yaml:"easy"`
	Medium Profile `yaml:"medium"`
	Hard   Profile `yaml:"hard"`
}

// Variant is a named ProfileSet as it appears in the config file.
type Variant struct {
	Title    string     `yaml:"title"`
	Profiles ProfileSet `yaml:",inline"`
}

// Config is the top-level profiles file.
type Config struct {
	DefaultVariant    string             `yaml:"default_variant"`
	DefaultDifficulty Difficulty         `yaml:"default_difficulty"`
	Variants          map[string]Variant `yaml:"variants"`
}
