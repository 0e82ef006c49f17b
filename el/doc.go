// Package el provides the element DSL for htmlnode.
//
// Every constructor resolves its name through node.DefaultRegistry, so
// the special behavior of well-known tags (void elements, required
// attributes, the html doctype) applies. Attribute helpers return
// node.Attr values:
//
//	import . "github.com/vango-dev/htmlnode/el"
//
//	page := Html(
//	    Head(Title("Docs")),
//	    Body(Div(Class("card"), A(Href("/"), "Home"))),
//	)
//
// The constructors panic when a tag cannot be built, e.g. Img without
// Src. Trees built from untrusted shapes should use New, which returns
// the error instead.
package el
