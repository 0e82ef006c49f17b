package markup

import "github.com/vango-dev/htmlnode/internal/errors"

var (
	// ErrEmptyTag is returned by Token when no part is left after filtering.
	ErrEmptyTag = errors.Sentinel(errors.CodeEmptyTag)

	// ErrInvalidTagKind is returned by Token for an unknown Kind.
	ErrInvalidTagKind = errors.Sentinel(errors.CodeInvalidTagKind)

	// ErrUnsupportedAttributeValue is returned when a value has no
	// formatting rule.
	ErrUnsupportedAttributeValue = errors.Sentinel(errors.CodeUnsupportedAttribute)
)
