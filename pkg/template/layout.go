package template

import "github.com/vango-dev/htmlnode/pkg/node"

// DefaultTitle is the layout title when the context sets none.
const DefaultTitle = "Welcome!"

// NewLayout returns a document template:
//
//	<!DOCTYPE HTML><html><head>{head}</head><body>{body}</body></html>
//
// The html element carries lang when the context sets it.
// The default head is a title read from the "title" context key and the
// default body an empty div with class "container". Options given here
// are applied after the layout's own, so WithProducer("body", ...)
// replaces the default body.
func NewLayout(opts ...Option) (*Template, error) {
	base := []Option{
		WithDefaultContext(Context{"title": DefaultTitle}),
		WithProducer("head", LayoutHead),
		WithProducer("body", LayoutBody),
	}
	return New(LayoutBase, append(base, opts...)...)
}

// LayoutBase builds the layout skeleton with "head" and "body" anchors.
// A non-empty "lang" context value becomes the lang attribute of html.
func LayoutBase(t *Template) (node.Node, error) {
	head, err := node.New("head", Anchor("head"))
	if err != nil {
		return nil, err
	}
	body, err := node.New("body", Anchor("body"))
	if err != nil {
		return nil, err
	}
	var lang any
	if l := t.context.GetString("lang"); l != "" {
		lang = node.Attr{Key: "lang", Value: l}
	}
	return node.New("html", lang, head, body)
}

// LayoutHead is the default head producer.
func LayoutHead(t *Template) (node.Node, error) {
	return node.New("title", t.context.GetString("title"))
}

// LayoutBody is the default body producer.
func LayoutBody(*Template) (node.Node, error) {
	return node.New("div", node.Class("container"))
}
