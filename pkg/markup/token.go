package markup

import (
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// Kind selects the shape of a tag token.
type Kind uint8

const (
	Open      Kind = iota + 1 // <name attrs>
	Close                     // </name>
	Singleton                 // <name attrs />
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}

// Token joins the non-blank parts with a single space and wraps them in
// the delimiters of kind. Blank parts are dropped first; a token needs at
// least one part left.
func Token(kind Kind, parts ...string) (string, error) {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return "", errors.New(errors.CodeEmptyTag).
			WithDetailf("%s token received %d blank part(s)", kind, len(parts))
	}

	inner := strings.Join(kept, " ")
	switch kind {
	case Open:
		return "<" + inner + ">", nil
	case Close:
		return "</" + inner + ">", nil
	case Singleton:
		return "<" + inner + " />", nil
	default:
		return "", errors.New(errors.CodeInvalidTagKind).
			WithDetailf("%d is not a valid kind of tag", uint8(kind))
	}
}
