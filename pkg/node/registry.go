package node

import (
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/htmlnode/pkg/markup"
)

// voidElements are the singleton tags without further special behavior.
var voidElements = []string{
	"input", "br", "base", "area", "col", "command", "embed",
	"hr", "keygen", "meta", "param", "source", "track", "wbr",
}

// Registry maps lower-cased tag names to memoized types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns a registry holding the well-known types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]*Type)}

	r.Register(&Type{
		Name:               "link",
		Singleton:          true,
		DefaultAttributes:  []markup.Attribute{{Key: "rel", Value: "text/css"}},
		RequiredAttributes: []string{"href"},
	})
	r.Register(&Type{
		Name:               "img",
		Singleton:          true,
		RequiredAttributes: []string{"src"},
	})
	r.Register(&Type{
		Name:              "script",
		Safe:              true,
		DefaultAttributes: []markup.Attribute{{Key: "type", Value: "text/javascript"}},
	})
	r.Register(&Type{
		Name:              "a",
		DefaultAttributes: []markup.Attribute{{Key: "href", Value: "javascript:void(0)"}},
	})
	for _, name := range voidElements {
		r.Register(&Type{Name: name, Singleton: true})
	}

	root := r.Register(&Type{Name: "html", Doctype: true})
	r.types["html5"] = root

	return r
}

// DefaultRegistry backs the package-level Lookup, New and MustNew.
var DefaultRegistry = NewRegistry()

// Lookup resolves name in the default registry.
func Lookup(name string) *Type {
	return DefaultRegistry.Lookup(name)
}

// Lookup returns the type registered for name, case-insensitively. An
// unknown name gets a generic type which is memoized, so every lookup of
// the same name returns the same pointer.
func (r *Registry) Lookup(name string) *Type {
	key := strings.ToLower(name)

	r.mu.RLock()
	t, ok := r.types[key]
	r.mu.RUnlock()
	if ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.types[key]; ok {
		return t
	}
	t = &Type{Name: key}
	r.types[key] = t
	return t
}

// Register stores t under its lower-cased name, replacing any previous
// type, and returns it.
func (r *Registry) Register(t *Type) *Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[strings.ToLower(t.Name)] = t
	return t
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
