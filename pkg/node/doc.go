// Package node provides the element tree of htmlnode.
//
// A Tag is one HTML element: a name, ordered attributes, merged classes
// and ordered children. Children are either Node values, rendered
// recursively, or plain scalars (strings, numbers, booleans) rendered as
// escaped text.
//
// # Building Trees
//
// Tags are built from a Type descriptor. Arguments that implement Option
// configure the tag, nil arguments are skipped, and everything else
// becomes a child in order:
//
//	page, err := node.New("html",
//	    node.MustNew("head", node.MustNew("title", "Hello")),
//	    node.MustNew("body",
//	        node.MustNew("div", node.Class("card"), node.Attr{Key: "data_id", Value: 7},
//	            "Tom & Jerry",
//	        ),
//	    ),
//	)
//
// renders as
//
//	<!DOCTYPE HTML><html><head><title>Hello</title></head><body><div data-id="7" class="card">Tom &amp; Jerry</div></body></html>
//
// # Types and the Registry
//
// Lookup resolves a tag name, case-insensitively, to a memoized *Type.
// Well-known names carry special behavior: void elements such as img and
// br are singletons and never accept children, img requires src, link
// requires href, script is safe (its text is not escaped) and html
// renders with a doctype prefix. Unknown names produce a generic type
// that is memoized on first use, so repeated lookups return the same
// pointer.
//
// # Concurrency
//
// The registry is safe for concurrent use. Tags are not: a tree must be
// built and rendered by one goroutine at a time.
package node
