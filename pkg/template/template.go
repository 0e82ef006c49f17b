package template

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// Builder returns the base tree of a template. It runs on every render.
type Builder func(t *Template) (node.Node, error)

// Producer returns the tree for one named placeholder. It runs once,
// when the template is built.
type Producer func(t *Template) (node.Node, error)

// Option configures a Template.
type Option func(*settings)

type settings struct {
	defaults  Context
	context   Context
	overrides Context
	producers map[string]Producer
}

// WithDefaultContext adds values used when neither WithContext nor With
// set the same key. Repeated calls merge.
func WithDefaultContext(c Context) Option {
	return func(s *settings) {
		s.defaults = Merge(s.defaults, c)
	}
}

// WithContext adds caller values. They override defaults.
func WithContext(c Context) Option {
	return func(s *settings) {
		s.context = Merge(s.context, c)
	}
}

// With sets a single value that overrides both defaults and WithContext.
func With(key string, value any) Option {
	return func(s *settings) {
		if s.overrides == nil {
			s.overrides = make(Context)
		}
		s.overrides[key] = value
	}
}

// WithProducer registers the producer for placeholder name, replacing any
// earlier registration.
func WithProducer(name string, p Producer) Option {
	return func(s *settings) {
		if p == nil {
			delete(s.producers, name)
			return
		}
		s.producers[name] = p
	}
}

// Template is a base tree plus the stored trees for its placeholders.
// A Template is itself a node.Node and may be nested in other trees.
type Template struct {
	base         Builder
	context      Context
	producers    map[string]Producer
	placeholders map[string]node.Node
}

// New builds a template. The context is merged from defaults, then
// WithContext values, then With values. Producers run in name order and
// may read the merged context; the first producer error aborts.
func New(base Builder, opts ...Option) (*Template, error) {
	if base == nil {
		return nil, errors.Newf(errors.CategoryTemplate, "template has no base builder")
	}

	s := &settings{producers: make(map[string]Producer)}
	for _, opt := range opts {
		opt(s)
	}

	t := &Template{
		base:         base,
		context:      Merge(s.defaults, s.context, s.overrides),
		producers:    s.producers,
		placeholders: make(map[string]node.Node, len(s.producers)),
	}

	for _, name := range t.Placeholders() {
		tree, err := t.producers[name](t)
		if err != nil {
			return nil, fmt.Errorf("template: producer %q: %w", name, err)
		}
		t.placeholders[name] = tree
	}
	return t, nil
}

// Must panics if err is non-nil.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// Context returns a copy of the merged context.
func (t *Template) Context() Context {
	return t.context.Clone()
}

// Get returns the context value for key, or nil.
func (t *Template) Get(key string) any {
	return t.context.Get(key)
}

// Lookup returns the context value for key and whether it was set.
func (t *Template) Lookup(key string) (any, bool) {
	return t.context.Lookup(key)
}

// Placeholders returns the sorted names of the registered producers.
func (t *Template) Placeholders() []string {
	names := make([]string, 0, len(t.producers))
	for name := range t.producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Placeholder returns the tree produced for name.
func (t *Template) Placeholder(name string) (node.Node, bool) {
	n, ok := t.placeholders[name]
	return n, ok
}

// Tree builds the base tree and fills it with the produced trees.
func (t *Template) Tree() (node.Node, error) {
	tree, err := t.base(t)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, errors.Newf(errors.CategoryTemplate, "template base builder returned no tree")
	}
	return Fill(tree, t.placeholders)
}

// WriteHTML implements node.Node.
func (t *Template) WriteHTML(buf *bytes.Buffer) error {
	tree, err := t.Tree()
	if err != nil {
		return err
	}
	return tree.WriteHTML(buf)
}

// Render returns the filled tree as HTML.
func (t *Template) Render() (string, error) {
	return node.Render(t)
}

// String renders the template, or returns "" on error.
func (t *Template) String() string {
	s, err := t.Render()
	if err != nil {
		return ""
	}
	return s
}
