package config

import "strings"

// Difficulty is a difficulty label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all labels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a label (case-insensitive) to a Difficulty.
// Unknown labels fall back to DifficultyEasy and report ok=false.
func ParseDifficulty(label string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(label))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DifficultyEasy, false
	}
}

// Title returns the display name of the difficulty.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Profile returns the profile for the given difficulty.
// Unknown difficulties resolve to Easy.
func (s ProfileSet) Profile(d Difficulty) Profile {
	switch d {
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	default:
		return s.Easy
	}
}
