// Package registry provides a global registry for game factories. Games
// register themselves in init() functions so the platform can instantiate
// them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"chase8/internal/core"
)

// Game is the interface the platform drives. Games contain pure simulation
// logic with no terminal or audio dependencies; the platform owns timing,
// input mapping and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g. "chase").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or reinitializes the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a new game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the ids of all registered games, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
