// Package generator builds 2D dungeons: rooms are placed on a grid, their
// centers are triangulated, the triangulation is thinned to a spanning tree plus
// a few loops, and each kept connection is carved as a hallway with A*.
package generator

import (
	"sort"
)

// GridGenerator is an interface for dungeon generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*Dungeon, error)
	Name() string
}

var _ GridGenerator = (*Generator2D)(nil)

// Available generators
var (
	Delaunay = NewGenerator2D()
	BSP      = NewGenerator2D(WithPlacement(BSPPlacement{}))
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator = Delaunay

// generators indexes the available generators by placement name
var generators = map[string]*Generator2D{
	Delaunay.Placement().Name(): Delaunay,
	BSP.Placement().Name():      BSP,
}

// Lookup returns the generator whose room placement is registered under name
func Lookup(name string) (*Generator2D, bool) {
	g, ok := generators[name]
	return g, ok
}

// Names returns the registered placement names, sorted
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
