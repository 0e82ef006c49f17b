// Package template composes node trees from reusable parts.
//
// A Template pairs a base builder, which returns a tree containing
// Placeholder anchors, with named producers whose trees replace those
// anchors. Producers run once when the template is built; every render
// calls the base builder again and fills it with the stored trees.
//
//	t, err := template.New(
//	    func(t *template.Template) (node.Node, error) {
//	        return node.New("main", template.Anchor("content"))
//	    },
//	    template.With("user", "ada"),
//	    template.WithProducer("content", func(t *template.Template) (node.Node, error) {
//	        return node.New("p", "Hello, ", t.Context().GetString("user"))
//	    }),
//	)
//	html, err := t.Render() // <main><p>Hello, ada</p></main>
//
// NewLayout returns a template for a minimal document whose "head" and
// "body" producers can be replaced with WithProducer.
//
// Fill never mutates its input. Tags on the path to a placeholder are
// cloned, so one replacement tree can fill several slots safely.
package template
