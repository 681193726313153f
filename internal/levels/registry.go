package levels

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered level.
type Info struct {
	ID     string
	Title  string
	Bricks int
}

var (
	registered = make(map[string]Level)
	mu         sync.RWMutex
)

// Register adds a level to the registry.
// Panics if a level with the same ID is already registered.
func Register(l Level) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[l.ID]; exists {
		panic(fmt.Sprintf("levels: level %q already registered", l.ID))
	}
	registered[l.ID] = l
}

// Replace adds or overwrites a level. Used for levels loaded from disk.
func Replace(l Level) {
	mu.Lock()
	defer mu.Unlock()
	registered[l.ID] = l
}

// List returns information about all registered levels, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for id, l := range registered {
		result = append(result, Info{ID: id, Title: l.Title, Bricks: l.BrickCount()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of a registered level.
func Get(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := registered[id]
	if !ok {
		return Level{}, fmt.Errorf("levels: %w %q", ErrUnknownLevel, id)
	}
	l.Tiles = append([]Tile(nil), l.Tiles...)
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}
