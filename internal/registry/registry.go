// Package registry maps game IDs to factories.
// Games register themselves in init() functions. The platform packages only
// hold an ID and create a fresh game from it whenever a round starts, so they
// never import a game package.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Game is the interface a playable game exposes to the platform.
// Implementations keep their rules in a pure engine; the platform owns
// input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier, used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game using the board size and styles in cfg.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the input gathered since
	// the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID. Each call returns an
// independent instance.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered. Servers check it at startup so a
// bad ID fails before any session connects.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
