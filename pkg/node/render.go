package node

import (
	"bytes"
	stderrors "errors"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/markup"
)

// Doctype is written before the root element of Doctype types.
const Doctype = "<!DOCTYPE HTML>"

// WriteHTML implements Node. Nothing is written when an error is returned.
func (t *Tag) WriteHTML(buf *bytes.Buffer) error {
	mark := buf.Len()
	if err := t.writeHTML(buf); err != nil {
		buf.Truncate(mark)
		return err
	}
	return nil
}

func (t *Tag) writeHTML(buf *bytes.Buffer) error {
	attrs := t.attrs.Clone()
	if classes := t.Classes(); classes != "" {
		attrs.Set("class", classes)
	}

	attrString, err := markup.FormatAttributes(attrs)
	if err != nil {
		return t.annotate(err)
	}

	if t.typ.Doctype {
		buf.WriteString(Doctype)
	}

	if t.typ.Singleton {
		tok, err := markup.Token(markup.Singleton, t.name, attrString)
		if err != nil {
			return t.annotate(err)
		}
		buf.WriteString(tok)
		return nil
	}

	open, err := markup.Token(markup.Open, t.name, attrString)
	if err != nil {
		return t.annotate(err)
	}
	buf.WriteString(open)

	for i, child := range t.children {
		if i > 0 {
			buf.WriteString(t.delimiter)
		}
		if n, ok := child.(Node); ok {
			if err := n.WriteHTML(buf); err != nil {
				return t.annotate(err)
			}
			continue
		}
		text := markup.Stringify(child)
		if !t.safe {
			text = markup.EscapeText(text)
		}
		buf.WriteString(text)
	}

	// A close token can only fail on an empty name, which Open already
	// rejected.
	close, _ := markup.Token(markup.Close, t.name)
	buf.WriteString(close)
	return nil
}

// annotate records t in the element path of err.
func (t *Tag) annotate(err error) error {
	var he *errors.Error
	if stderrors.As(err, &he) {
		he.WithParent(t.name)
	}
	return err
}

// Render renders the tag to a string.
func (t *Tag) Render() (string, error) {
	return Render(t)
}

// String renders the tag, returning the empty string on error.
func (t *Tag) String() string {
	s, _ := Render(t)
	return s
}
