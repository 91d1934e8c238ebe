// Package demos registers ready-to-run automata under short names so the
// command line can pick one by flag.
package demos

import (
	"sort"

	"gridca/pkg/automaton"
)

// Factory constructs an automaton using an optional configuration map.
type Factory func(cfg map[string]string) (*automaton.Automaton, error)

var registry = map[string]Factory{}

// Register adds a demo factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Get looks up a demo factory by name.
func Get(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered demos in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
