package template

import (
	"errors"
	"testing"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func render(t *testing.T, n node.Node) string {
	t.Helper()
	s, err := node.Render(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return s
}

func TestFillReplacesPlaceholders(t *testing.T) {
	tree := node.MustNew("div", Anchor("a"), node.MustNew("span", Anchor("b")))
	filled, err := Fill(tree, map[string]node.Node{
		"a": node.MustNew("p", "one"),
		"b": node.Raw("<i>two</i>"),
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	want := "<div><p>one</p><span><i>two</i></span></div>"
	if got := render(t, filled); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFillDoesNotMutateInput(t *testing.T) {
	tree := node.MustNew("div", Anchor("a"))
	if _, err := Fill(tree, map[string]node.Node{"a": node.MustNew("p")}); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if _, ok := tree.Children()[0].(*Placeholder); !ok {
		t.Errorf("input child replaced: %T", tree.Children()[0])
	}
}

func TestFillIsIdempotent(t *testing.T) {
	tree := node.MustNew("main", node.MustNew("header", Anchor("h")), Anchor("c"))
	placeholders := map[string]node.Node{
		"h": node.MustNew("h1", "Title"),
		"c": node.MustNew("p", "Body"),
	}

	once, err := Fill(tree, placeholders)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	twice, err := Fill(once, placeholders)
	if err != nil {
		t.Fatalf("second Fill: %v", err)
	}
	if a, b := render(t, once), render(t, twice); a != b {
		t.Errorf("refill changed output: %q != %q", a, b)
	}
}

func TestFillNestedPlaceholders(t *testing.T) {
	tree := node.MustNew("div", Anchor("outer"))
	filled, err := Fill(tree, map[string]node.Node{
		"outer": node.MustNew("section", Anchor("inner")),
		"inner": node.MustNew("em", "deep"),
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := "<div><section><em>deep</em></section></div>"
	if got := render(t, filled); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFillSharedReplacement(t *testing.T) {
	shared := node.MustNew("li", Anchor("label"))
	tree := node.MustNew("ul", Anchor("item"), Anchor("item"))
	filled, err := Fill(tree, map[string]node.Node{
		"item":  shared,
		"label": node.Raw("x"),
	})
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got, want := render(t, filled), "<ul><li>x</li><li>x</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, ok := shared.Children()[0].(*Placeholder); !ok {
		t.Error("shared replacement was mutated")
	}
}

func TestFillErrors(t *testing.T) {
	tests := []struct {
		name         string
		tree         node.Node
		placeholders map[string]node.Node
		want         error
	}{
		{
			name: "missing",
			tree: node.MustNew("div", Anchor("nope")),
			want: ErrUnresolvedPlaceholder,
		},
		{
			name:         "nil replacement",
			tree:         node.MustNew("div", Anchor("a")),
			placeholders: map[string]node.Node{"a": nil},
			want:         ErrUnresolvedPlaceholder,
		},
		{
			name:         "self cycle",
			tree:         node.MustNew("div", Anchor("a")),
			placeholders: map[string]node.Node{"a": node.MustNew("p", Anchor("a"))},
			want:         ErrPlaceholderCycle,
		},
		{
			name: "indirect cycle",
			tree: Anchor("a"),
			placeholders: map[string]node.Node{
				"a": node.MustNew("p", Anchor("b")),
				"b": node.MustNew("p", Anchor("a")),
			},
			want: ErrPlaceholderCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fill(tt.tree, tt.placeholders)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFillLeavesOtherNodes(t *testing.T) {
	raw := node.Raw("<b>as is</b>")
	got, err := Fill(raw, nil)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if got != raw {
		t.Errorf("got %v, want %v", got, raw)
	}
}

func TestUnfilledPlaceholderFailsToRender(t *testing.T) {
	tree := node.MustNew("div", node.MustNew("span", Anchor("x")))
	_, err := node.Render(tree)
	if !errors.Is(err, ErrUnresolvedPlaceholder) {
		t.Fatalf("got %v, want ErrUnresolvedPlaceholder", err)
	}
}
