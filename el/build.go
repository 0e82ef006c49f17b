package el

import "github.com/vango-dev/htmlnode/pkg/node"

// New builds a tag named name from the default registry.
func New(name string, args ...any) (*node.Tag, error) {
	return node.New(name, args...)
}

// CustomElement builds a tag with an arbitrary name, e.g. "my-widget".
func CustomElement(name string, args ...any) *node.Tag {
	return build(name, args)
}

// IsVoidElement reports whether name is a registered singleton tag.
func IsVoidElement(name string) bool {
	return node.Lookup(name).Singleton
}

func build(name string, args []any) *node.Tag {
	return node.Lookup(name).MustNew(args...)
}
