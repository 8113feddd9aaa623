// Package registry provides a global registry of renderable shapes.
// Shapes register themselves in init() functions, allowing the platform
// to discover and select them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raymarch/internal/scene"
)

// DefaultID is the shape rendered when none is requested.
const DefaultID = "torus"

// ShapeInfo contains metadata about a registered shape.
type ShapeInfo struct {
	ID    string
	Title string
}

var (
	shapes = make(map[string]scene.Shape)
	mu     sync.RWMutex
)

// Register adds a shape to the registry.
// Typically called from a shape package's init() function.
// Panics if a shape with the same ID is already registered.
func Register(s scene.Shape) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := shapes[s.ID()]; exists {
		panic(fmt.Sprintf("registry: shape %q already registered", s.ID()))
	}
	shapes[s.ID()] = s
}

// List returns information about all registered shapes, sorted by ID.
func List() []ShapeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShapeInfo, 0, len(shapes))
	for id, s := range shapes {
		result = append(result, ShapeInfo{
			ID:    id,
			Title: s.Title(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the shape registered under id.
func Get(id string) (scene.Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := shapes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown shape %q", id)
	}
	return s, nil
}

// Exists checks if a shape with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := shapes[id]
	return ok
}

// Next returns the ID following id in sorted order, wrapping around.
// Unknown IDs yield the first registered shape.
func Next(id string) string {
	list := List()
	if len(list) == 0 {
		return id
	}
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}
