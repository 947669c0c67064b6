// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poke-the-dots/internal/config"
)

// Frontend presents the game on one kind of display and feeds it input.
// All frontends drive the same loop.Controller.
type Frontend interface {
	// ID returns a unique identifier used by the --frontend flag (e.g., "window", "tui").
	ID() string

	// Title returns a human-readable description for `pokedots list`.
	Title() string

	// Terminal reports whether the frontend draws into the controlling terminal.
	// The CLI requires a TTY for those and keeps logs off the screen.
	Terminal() bool

	// Run plays one session and blocks until it is closed or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// Options configures one session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 seeds from system entropy
	Logger *log.Logger
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID       string
	Title    string
	Terminal bool
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	fe := f()
	infos[id] = Info{ID: id, Title: fe.Title(), Terminal: fe.Terminal()}
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
