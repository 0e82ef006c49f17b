// Package errors provides the coded, structured errors raised by htmlnode.
//
// Every failure of the builder is a programming-contract violation rather
// than a transient condition, so errors carry enough context to fix the
// calling code:
//   - A stable code (e.g. "H002") that maps to a registered template
//   - A short message and a longer explanation
//   - The element path where the error was raised, when known
//   - An optional suggestion and code example
//
// # Error Categories
//
// Errors are organized into categories:
//   - markup: tag token and attribute formatting errors
//   - node: tag construction errors (singleton children, required attributes)
//   - template: placeholder resolution errors
//   - config: htmlnode.json loading and validation errors
//   - publish: static upload errors
//   - cli: command-line usage errors
//
// # Matching
//
// Errors compare by code, so a freshly built error matches the sentinel of
// the same code with the standard library:
//
//	if errors.Is(err, node.ErrMissingRequiredAttribute) { ... }
//
// # Usage
//
//	err := errors.New(errors.CodeMissingRequiredAttribute).
//	    WithPath("html", "head", "link").
//	    WithDetailf("attribute %q is required on <link>", "href").
//	    WithSuggestion(`pass node.Attr{Key: "href", Value: "/style.css"}`)
//
//	fmt.Println(err.Format())
package errors
