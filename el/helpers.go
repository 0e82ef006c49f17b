package el

import (
	"bytes"
	"fmt"

	"github.com/vango-dev/htmlnode/pkg/markup"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// Text returns s as a child. It exists for symmetry with Raw; plain
// strings are escaped the same way.
func Text(s string) string {
	return s
}

// Textf formats a text child.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Raw returns trusted markup that is written without escaping.
func Raw(html string) node.Raw {
	return node.Raw(html)
}

// Fragment renders its children back to back without a wrapping element.
type Fragment []any

// WriteHTML implements node.Node.
func (f Fragment) WriteHTML(buf *bytes.Buffer) error {
	mark := buf.Len()
	for _, child := range f {
		if err := writeChild(buf, child); err != nil {
			buf.Truncate(mark)
			return err
		}
	}
	return nil
}

func writeChild(buf *bytes.Buffer, child any) error {
	switch v := child.(type) {
	case nil:
		return nil
	case node.Node:
		return v.WriteHTML(buf)
	default:
		buf.WriteString(markup.EscapeText(markup.Stringify(v)))
		return nil
	}
}

// If returns n when condition holds, otherwise nil, which constructors skip.
func If(condition bool, n node.Node) node.Node {
	if condition {
		return n
	}
	return nil
}

// IfElse returns ifTrue or ifFalse.
func IfElse(condition bool, ifTrue, ifFalse node.Node) node.Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition holds.
func When(condition bool, fn func() node.Node) node.Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless returns n when condition does not hold.
func Unless(condition bool, n node.Node) node.Node {
	return If(!condition, n)
}

// Range maps each item to a node and collects them in a Fragment.
func Range[T any](items []T, fn func(int, T) node.Node) Fragment {
	out := make(Fragment, 0, len(items))
	for i, item := range items {
		if n := fn(i, item); n != nil {
			out = append(out, n)
		}
	}
	return out
}
