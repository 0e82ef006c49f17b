package markup

import "strings"

// Attribute is a single key/value pair.
type Attribute struct {
	Key   string
	Value any
}

// Attributes is an insertion-ordered attribute map with unique keys.
// Setting a key that is already present replaces its value in place.
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]any
}

// NewAttributes builds an Attributes from pairs, in order.
func NewAttributes(pairs ...Attribute) *Attributes {
	a := &Attributes{}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// NormalizeKey turns an identifier-safe key into an attribute name: a
// single trailing underscore is stripped and the remaining underscores
// become hyphens, so "class_" is "class" and "data_id" is "data-id".
func NormalizeKey(key string) string {
	key = strings.TrimSuffix(key, "_")
	return strings.ReplaceAll(key, "_", "-")
}

// Set stores value under key.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil || a.values == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	if a == nil || a.values == nil {
		return
	}
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Each calls fn for every attribute in insertion order.
func (a *Attributes) Each(fn func(key string, value any)) {
	if a == nil {
		return
	}
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

// Clone returns a shallow copy. Values are shared.
func (a *Attributes) Clone() *Attributes {
	out := &Attributes{}
	if a == nil {
		return out
	}
	out.keys = append([]string(nil), a.keys...)
	out.values = make(map[string]any, len(a.values))
	for k, v := range a.values {
		out.values[k] = v
	}
	return out
}
