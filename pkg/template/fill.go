package template

import (
	stderrors "errors"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// Fill returns tree with every placeholder replaced by the filled tree
// registered under its name. Replacements may contain placeholders of
// their own, resolved against the same map. Tags are copied on the way
// down; tree and the replacements are left untouched. Filling a tree
// without placeholders returns an equal tree.
func Fill(tree node.Node, placeholders map[string]node.Node) (node.Node, error) {
	return fill(tree, placeholders, nil)
}

func fill(n node.Node, placeholders map[string]node.Node, active []string) (node.Node, error) {
	switch v := n.(type) {
	case *Placeholder:
		return resolve(v.Name, placeholders, active)
	case *node.Tag:
		return fillTag(v, placeholders, active)
	default:
		return n, nil
	}
}

func fillTag(t *node.Tag, placeholders map[string]node.Node, active []string) (*node.Tag, error) {
	c := t.Clone()
	for i, child := range c.Children() {
		switch child.(type) {
		case *Placeholder, *node.Tag:
			filled, err := fill(child.(node.Node), placeholders, active)
			if err != nil {
				var he *errors.Error
				if stderrors.As(err, &he) {
					he.WithParent(t.Name())
				}
				return nil, err
			}
			c.SetChild(i, filled)
		}
	}
	return c, nil
}

func resolve(name string, placeholders map[string]node.Node, active []string) (node.Node, error) {
	for _, a := range active {
		if a == name {
			return nil, errors.New(errors.CodePlaceholderCycle).
				WithDetailf("%s -> %s", strings.Join(active, " -> "), name)
		}
	}

	replacement, ok := placeholders[name]
	if !ok || replacement == nil {
		return nil, unresolved(name)
	}
	return fill(replacement, placeholders, append(active[:len(active):len(active)], name))
}
