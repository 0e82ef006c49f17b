package markup

import (
	"errors"
	"testing"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		parts []string
		want  string
	}{
		{"open", Open, []string{"hello"}, "<hello>"},
		{"singleton", Singleton, []string{"hello"}, "<hello />"},
		{"close", Close, []string{"hello"}, "</hello>"},
		{"several parts", Open, []string{"a", "b", "c"}, "<a b c>"},
		{"blank parts dropped", Open, []string{"div", "", "  ", `id="x"`}, `<div id="x">`},
		{"singleton with attributes", Singleton, []string{"img", `src="a.png"`}, `<img src="a.png" />`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Token(tt.kind, tt.parts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Token() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenErrors(t *testing.T) {
	if _, err := Token(Open); !errors.Is(err, ErrEmptyTag) {
		t.Errorf("no parts: got %v, want ErrEmptyTag", err)
	}
	if _, err := Token(Close, " ", "\t"); !errors.Is(err, ErrEmptyTag) {
		t.Errorf("blank parts: got %v, want ErrEmptyTag", err)
	}
	if _, err := Token(Kind(42), "div"); !errors.Is(err, ErrInvalidTagKind) {
		t.Errorf("bad kind: got %v, want ErrInvalidTagKind", err)
	}
	if _, err := Token(Kind(0), "div"); !errors.Is(err, ErrInvalidTagKind) {
		t.Errorf("zero kind: got %v, want ErrInvalidTagKind", err)
	}
}

func TestKindString(t *testing.T) {
	if Open.String() != "Open" || Close.String() != "Close" || Singleton.String() != "Singleton" {
		t.Error("unexpected kind names")
	}
	if Kind(9).String() != "Unknown" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}
