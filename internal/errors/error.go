package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryMarkup   Category = "markup"
	CategoryNode     Category = "node"
	CategoryTemplate Category = "template"
	CategoryConfig   Category = "config"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// Error is a structured error with a registered code, the element path
// where it was raised, and an optional fix suggestion.
type Error struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (markup, node, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the chain of element names leading to the failing element.
	Path []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// PathString returns the element path joined with " > ".
func (e *Error) PathString() string {
	return strings.Join(e.Path, " > ")
}

// WithPath sets the element path where the error was raised.
func (e *Error) WithPath(path ...string) *Error {
	e.Path = append([]string(nil), path...)
	return e
}

// WithParent prepends an enclosing element to the path.
func (e *Error) WithParent(name string) *Error {
	e.Path = append([]string{name}, e.Path...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *Error) WithExample(ex string) *Error {
	e.Example = ex
	return e
}

// WithDetail replaces the registered explanation.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with fmt.Sprintf formatting.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code. The registered detail
// is not copied so that Error() stays short; Format prints it.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Sentinel returns a bare Error for code, meant for package-level
// variables compared with errors.Is.
func Sentinel(code string) *Error {
	return New(code)
}

// FromError wraps a standard error in an Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var he *Error
	if stderrors.As(err, &he) {
		return he
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first Error in err's chain, or "" when
// the chain holds none.
func CodeOf(err error) string {
	var he *Error
	if stderrors.As(err, &he) {
		return he.Code
	}
	return ""
}
