package node

import "github.com/vango-dev/htmlnode/internal/errors"

var (
	// ErrSingletonChildren is returned when children are given to a
	// singleton tag at construction.
	ErrSingletonChildren = errors.Sentinel(errors.CodeSingletonChildren)

	// ErrMissingRequiredAttribute is returned when a type's required
	// attribute is absent after construction.
	ErrMissingRequiredAttribute = errors.Sentinel(errors.CodeMissingRequiredAttribute)
)
