// Package registry provides a global registry for display drivers.
// Drivers register themselves in init() functions, allowing the command
// line to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Driver owns the terminal for the duration of one game.
// It reads keys, feeds them to the session and draws every step.
type Driver interface {
	// Name returns a unique identifier used by --driver (e.g., "tea", "tcell").
	Name() string

	// Description returns a one-line summary for `termsnake drivers`.
	Description() string

	// Run plays the session until it leaves StateRunning or ctx is done.
	// The terminal must be restored before Run returns.
	Run(ctx context.Context, s *snake.Session, opts RunOptions) error
}

// RunOptions carries what a driver needs besides the session.
type RunOptions struct {
	Keys    core.KeyMap
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a driver.
type Factory func() Driver

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a driver factory to the registry.
// Panics if a driver with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for name := range factories {
		result = append(result, DriverInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
func Create(name string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", name)
	}

	return f(), nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
