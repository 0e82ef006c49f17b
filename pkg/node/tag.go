package node

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/markup"
)

// Tag is one HTML element.
type Tag struct {
	typ       *Type
	name      string
	children  []any
	attrs     *markup.Attributes
	classes   []string
	seeded    bool
	safe      bool
	delimiter string
}

func newTag(t *Type, args []any) (*Tag, error) {
	tag := &Tag{
		typ:       t,
		name:      t.Name,
		attrs:     markup.NewAttributes(t.DefaultAttributes...),
		safe:      t.Safe,
		delimiter: t.ChildrenDelimiter,
	}

	b := &builder{tag: tag}
	var children []any
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Option:
			v.apply(b)
		default:
			children = append(children, v)
		}
	}
	for _, c := range b.children {
		if c != nil {
			children = append(children, c)
		}
	}

	if t.Singleton && len(children) > 0 {
		return nil, errors.New(errors.CodeSingletonChildren).
			WithPath(tag.name).
			WithDetailf("<%s> received %d child(ren)", tag.name, len(children))
	}
	tag.children = children

	if b.seeded {
		var tokens []string
		for _, seed := range b.seeds {
			more, err := classTokens(seed)
			if err != nil {
				return nil, errors.New(errors.CodeUnsupportedAttribute).
					WithPath(tag.name).
					WithDetail(err.Error())
			}
			tokens = append(tokens, more...)
		}
		tag.setClasses(tokens)
	}

	for _, key := range t.RequiredAttributes {
		if !tag.attrs.Has(key) {
			return nil, errors.New(errors.CodeMissingRequiredAttribute).
				WithPath(tag.name).
				WithDetailf("<%s> requires %q", tag.name, key).
				WithSuggestion("pass node.Attr{Key: \"" + key + "\", Value: ...}")
		}
	}

	return tag, nil
}

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// Type returns the descriptor the tag was built from.
func (t *Tag) Type() *Type { return t.typ }

// IsSingleton reports whether the tag can never hold children.
func (t *Tag) IsSingleton() bool { return t.typ.Singleton }

// IsSafe reports whether text children are written without escaping.
func (t *Tag) IsSafe() bool { return t.safe }

// Attributes returns the tag's live attribute map.
func (t *Tag) Attributes() *markup.Attributes { return t.attrs }

// Children returns a copy of the children.
func (t *Tag) Children() []any {
	return append([]any(nil), t.children...)
}

// Len returns the number of children.
func (t *Tag) Len() int { return len(t.children) }

// SetChild replaces the i-th child.
func (t *Tag) SetChild(i int, v any) {
	t.children[i] = v
}

// Append adds values after the existing children. It is a no-op on
// singletons.
func (t *Tag) Append(values ...any) *Tag {
	if t.typ.Singleton {
		return t
	}
	for _, v := range values {
		if v != nil {
			t.children = append(t.children, v)
		}
	}
	return t
}

// Prepend adds values before the existing children, keeping their given
// order. It is a no-op on singletons.
func (t *Tag) Prepend(values ...any) *Tag {
	if t.typ.Singleton {
		return t
	}
	front := make([]any, 0, len(values)+len(t.children))
	for _, v := range values {
		if v != nil {
			front = append(front, v)
		}
	}
	t.children = append(front, t.children...)
	return t
}

// Call appends values, flattening slice and array arguments one level.
// It is a no-op on singletons.
func (t *Tag) Call(values ...any) *Tag {
	for _, v := range values {
		rv := reflect.ValueOf(v)
		if v != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				t.Append(rv.Index(i).Interface())
			}
			continue
		}
		t.Append(v)
	}
	return t
}

// Classes returns the space separated class list.
func (t *Tag) Classes() string {
	if !t.seeded {
		return strings.Join(t.typ.DefaultClasses, " ")
	}
	return strings.Join(t.classes, " ")
}

// ClassList returns a copy of the merged class tokens.
func (t *Tag) ClassList() []string {
	if !t.seeded {
		return append([]string(nil), t.typ.DefaultClasses...)
	}
	return append([]string(nil), t.classes...)
}

// SetClasses rebuilds the class list from the type's default classes
// followed by seed. Duplicates are dropped, first occurrence wins.
func (t *Tag) SetClasses(seed any) error {
	tokens, err := classTokens(seed)
	if err != nil {
		return errors.New(errors.CodeUnsupportedAttribute).
			WithPath(t.name).
			WithDetail(err.Error())
	}
	t.setClasses(tokens)
	return nil
}

func (t *Tag) setClasses(tokens []string) {
	merged := make([]string, 0, len(t.typ.DefaultClasses)+len(tokens))
	seen := make(map[string]bool, cap(merged))
	for _, group := range [][]string{t.typ.DefaultClasses, tokens} {
		for _, c := range group {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			merged = append(merged, c)
		}
	}

	t.classes = merged
	t.seeded = true
}

func classTokens(seed any) ([]string, error) {
	switch v := seed.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Fields(v), nil
	case []string:
		return v, nil
	case map[string]bool:
		return markup.TruthyKeys(v), nil
	default:
		return nil, fmt.Errorf("class seed of type %T", seed)
	}
}

// Clone returns a copy of t that can be mutated independently. Child
// nodes are shared, not copied.
func (t *Tag) Clone() *Tag {
	c := *t
	c.children = append([]any(nil), t.children...)
	c.attrs = t.attrs.Clone()
	c.classes = append([]string(nil), t.classes...)
	return &c
}
