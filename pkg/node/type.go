package node

import "github.com/vango-dev/htmlnode/pkg/markup"

// Type describes a kind of tag. Its fields are read at construction and
// render time and must not change once tags of the type exist.
type Type struct {
	// Name is the tag name, e.g. "div".
	Name string

	// Singleton tags never have children and render as <name />.
	Singleton bool

	// Safe tags write their text children without escaping.
	Safe bool

	// Doctype tags render with a leading <!DOCTYPE HTML>.
	Doctype bool

	// DefaultAttributes seed every new tag, in order.
	DefaultAttributes []markup.Attribute

	// DefaultClasses always lead the class list.
	DefaultClasses []string

	// RequiredAttributes must be present once construction is done.
	RequiredAttributes []string

	// ChildrenDelimiter is written between rendered children.
	ChildrenDelimiter string
}

// New builds a tag of type t. See the package documentation for how
// arguments are interpreted.
func (t *Type) New(args ...any) (*Tag, error) {
	return newTag(t, args)
}

// MustNew is like New but panics on error. It is meant for trees whose
// shape is fixed at compile time.
func (t *Type) MustNew(args ...any) *Tag {
	tag, err := newTag(t, args)
	if err != nil {
		panic(err)
	}
	return tag
}

// New builds a tag of the registered type for name.
func New(name string, args ...any) (*Tag, error) {
	return Lookup(name).New(args...)
}

// MustNew is like New but panics on error.
func MustNew(name string, args ...any) *Tag {
	return Lookup(name).MustNew(args...)
}
