package node

import "github.com/vango-dev/htmlnode/pkg/markup"

// Option configures a tag at construction. Arguments to New that are not
// options become children.
type Option interface {
	apply(b *builder)
}

type builder struct {
	tag      *Tag
	seeds    []any
	seeded   bool
	children []any
}

// Attr sets one attribute. The key is normalized with
// markup.NormalizeKey, so {Key: "class_"} sets "class" and
// {Key: "data_id"} sets "data-id".
type Attr struct {
	Key   string
	Value any
}

func (a Attr) apply(b *builder) {
	b.tag.attrs.Set(markup.NormalizeKey(a.Key), a.Value)
}

// Attrs sets several attributes in order.
type Attrs []Attr

func (as Attrs) apply(b *builder) {
	for _, a := range as {
		a.apply(b)
	}
}

type optionFunc func(b *builder)

func (f optionFunc) apply(b *builder) { f(b) }

// TagName overrides the tag name taken from the type.
func TagName(name string) Option {
	return optionFunc(func(b *builder) {
		b.tag.name = name
	})
}

// Class seeds the class list. The seed is a whitespace separated string,
// a []string or a map[string]bool of which the true keys are used.
// Several Class options add up in order.
func Class(seed any) Option {
	return optionFunc(func(b *builder) {
		b.seeds = append(b.seeds, seed)
		b.seeded = true
	})
}

// Safe overrides the type's safety flag for this tag.
func Safe(safe bool) Option {
	return optionFunc(func(b *builder) {
		b.tag.safe = safe
	})
}

// Delimiter sets the string written between rendered children.
func Delimiter(d string) Option {
	return optionFunc(func(b *builder) {
		b.tag.delimiter = d
	})
}

// Children adds children after all positional ones.
func Children(values ...any) Option {
	return optionFunc(func(b *builder) {
		b.children = append(b.children, values...)
	})
}
