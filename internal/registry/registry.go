// Package registry provides a global registry of game variants.
// A variant is a named set of Easy/Medium/Hard profiles; the CLI registers
// the variants from the loaded config at startup so that the platform can
// list and look them up without knowing where they came from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/numguess/internal/config"
)

// Variant is a registered profile set.
type Variant struct {
	ID       string
	Title    string
	Profiles config.ProfileSet
}

// Profile returns the variant's profile for a difficulty.
func (v Variant) Profile(d config.Difficulty) config.Profile {
	return v.Profiles.Profile(d)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	variants[v.ID] = v
}

// RegisterConfig registers every variant of cfg, replacing variants that
// share an ID. Used at startup after the profiles file has been loaded.
func RegisterConfig(cfg config.Config) {
	mu.Lock()
	defer mu.Unlock()

	for id, v := range cfg.Variants {
		title := v.Title
		if title == "" {
			title = id
		}
		variants[id] = Variant{ID: id, Title: title, Profiles: v.Profiles}
	}
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant with the given ID.
// Returns an error if the variant is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	variants = make(map[string]Variant)
}
