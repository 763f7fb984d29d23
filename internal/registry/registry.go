// Package registry maps mode IDs to game constructors. Each mode registers
// itself from init, so the CLI, the menu and the SSH server can list and
// create modes without importing them directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a tick-driven mode as seen by the platform layer. Implementations
// hold pure state: no Bubble Tea, no I/O. The platform maps keys to actions,
// owns the clock and draws the screen buffer.
type Game interface {
	// ID is the stable key used by the CLI and for scores, e.g. "labyrinth_endless".
	ID() string

	// Title is the display name, e.g. "Labyrinth (Endless)".
	Title() string

	// Reset builds the first maze from cfg.Seed sized to cfg's screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. The title is read from one throwaway instance.
// Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
