package core

import "sort"

// Size describes the dimensions of a maze grid.
type Size struct {
	W int
	H int
}

// Source is anything that owns a regenerable grid a viewer can display.
type Source interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	// Seed reports the seed of the current grid.
	Seed() int64
	Grid() *Grid
	Cells() []uint8
}

// Factory constructs a Source using an optional configuration map.
type Factory func(cfg map[string]string) (Source, error)

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

// SourceNames lists the registered names in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
