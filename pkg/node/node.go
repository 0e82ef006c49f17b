package node

import (
	"bytes"
	"io"
)

// Node is anything that can appear as a child in a tree and render
// itself. Implementations must leave buf as they found it when they
// return an error.
type Node interface {
	WriteHTML(buf *bytes.Buffer) error
}

// Raw is trusted markup written verbatim. It bypasses escaping entirely
// and must never carry user input.
type Raw string

// WriteHTML implements Node.
func (r Raw) WriteHTML(buf *bytes.Buffer) error {
	buf.WriteString(string(r))
	return nil
}

// Render renders n to a string. On error the result is empty.
func Render(n Node) (string, error) {
	var buf bytes.Buffer
	if err := n.WriteHTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo renders n and writes it to w only once the whole tree rendered.
func RenderTo(w io.Writer, n Node) (int, error) {
	var buf bytes.Buffer
	if err := n.WriteHTML(&buf); err != nil {
		return 0, err
	}
	return w.Write(buf.Bytes())
}
