package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownScene is returned when no factory is registered for an ID.
var ErrUnknownScene = errors.New("unknown scene")

// Factory creates a scene. The outcome of the previous scene is passed in so
// scenes receive everything they display at construction time.
type Factory func(o Outcome) Scene

// Registry maps scene IDs to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[ID]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[ID]Factory)}
}

// Register adds a factory. Panics if the ID is already registered.
func (r *Registry) Register(id ID, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("scene: %s already registered", id))
	}
	r.factories[id] = f
}

// Create instantiates the scene registered under id.
func (r *Registry) Create(id ID, o Outcome) (Scene, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scene: create %s: %w", id, ErrUnknownScene)
	}
	return f(o), nil
}

// List returns the registered IDs in ascending order.
func (r *Registry) List() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
