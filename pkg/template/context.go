package template

import (
	"maps"

	"github.com/vango-dev/htmlnode/pkg/markup"
)

// Context holds the values producers read while building their trees.
type Context map[string]any

// Get returns the value for key, or nil.
func (c Context) Get(key string) any {
	return c[key]
}

// Lookup returns the value for key and whether it was set.
func (c Context) Lookup(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// GetString returns the value for key rendered as text, or "" when it is
// absent or nil.
func (c Context) GetString(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	return markup.Stringify(v)
}

// Clone returns a shallow copy of c. Cloning nil yields an empty context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	maps.Copy(out, c)
	return out
}

// Merge layers the sources in order; later keys win.
func Merge(sources ...Context) Context {
	out := make(Context)
	for _, src := range sources {
		maps.Copy(out, src)
	}
	return out
}
