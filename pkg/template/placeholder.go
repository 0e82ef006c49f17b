package template

import (
	"bytes"

	"github.com/vango-dev/htmlnode/internal/errors"
)

var (
	// ErrUnresolvedPlaceholder is returned when a placeholder has no
	// replacement, either during Fill or when it is rendered.
	ErrUnresolvedPlaceholder = errors.Sentinel(errors.CodeUnresolvedPlaceholder)

	// ErrPlaceholderCycle is returned when a replacement contains its own
	// placeholder, directly or transitively.
	ErrPlaceholderCycle = errors.Sentinel(errors.CodePlaceholderCycle)
)

// Placeholder is a named stub to be replaced by Fill.
type Placeholder struct {
	Name string
}

// Anchor returns a placeholder for name.
func Anchor(name string) *Placeholder {
	return &Placeholder{Name: name}
}

// WriteHTML implements node.Node. A placeholder that reaches rendering was
// never filled, so it always fails.
func (p *Placeholder) WriteHTML(*bytes.Buffer) error {
	return unresolved(p.Name)
}

func unresolved(name string) *errors.Error {
	return errors.New(errors.CodeUnresolvedPlaceholder).
		WithDetailf("no replacement for placeholder %q", name).
		WithSuggestion("register it with template.WithProducer(\"" + name + "\", ...)")
}
