// Package feed provides a global registry of demo content sources.
// Sources register themselves in init() functions, allowing the CLI
// to discover and run feeds without hardcoded dependencies.
package feed

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Source is the interface that all feed sources must implement.
// Sources contain pure content logic and talk to the display only
// through the Console interface. The platform handles where that
// output lands (emulated region, real hardware, SSH viewer).
type Source interface {
	// ID returns a unique identifier for this source (e.g., "boot", "counter").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Boot Log").
	Title() string

	// Run produces output on the console until the source is done or the
	// context is cancelled. A cancelled run returns the context error.
	Run(ctx context.Context, con Console) error
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a source.
type Factory func() Source

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source's init() function.
// Panics if a source with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("feed: source %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new source by its ID.
// Returns an error if the source ID is not registered.
func Create(id string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("feed: unknown source %q", id)
	}

	return f(), nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
