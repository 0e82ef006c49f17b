package template

import (
	"testing"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "defaults",
			want: "<!DOCTYPE HTML><html><head><title>Welcome!</title></head>" +
				`<body><div class="container"></div></body></html>`,
		},
		{
			name: "title from context",
			opts: []Option{With("title", "Docs & Notes")},
			want: "<!DOCTYPE HTML><html><head><title>Docs &amp; Notes</title></head>" +
				`<body><div class="container"></div></body></html>`,
		},
		{
			name: "lang from context",
			opts: []Option{WithContext(Context{"lang": "fr", "title": "Bonjour"})},
			want: `<!DOCTYPE HTML><html lang="fr"><head><title>Bonjour</title></head>` +
				`<body><div class="container"></div></body></html>`,
		},
		{
			name: "empty lang omitted",
			opts: []Option{With("lang", "")},
			want: "<!DOCTYPE HTML><html><head><title>Welcome!</title></head>" +
				`<body><div class="container"></div></body></html>`,
		},
		{
			name: "custom body",
			opts: []Option{WithProducer("body", func(t *Template) (node.Node, error) {
				return node.New("div", node.Class("container"), node.MustNew("h1", t.Get("title")))
			})},
			want: "<!DOCTYPE HTML><html><head><title>Welcome!</title></head>" +
				`<body><div class="container"><h1>Welcome!</h1></div></body></html>`,
		},
		{
			name: "extended head",
			opts: []Option{WithProducer("head", func(t *Template) (node.Node, error) {
				title, err := LayoutHead(t)
				if err != nil {
					return nil, err
				}
				return node.New("div", title, node.MustNew("meta", node.Attr{Key: "charset", Value: "utf-8"}))
			})},
			want: `<!DOCTYPE HTML><html><head><div><title>Welcome!</title><meta charset="utf-8" /></div></head>` +
				`<body><div class="container"></div></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := NewLayout(tt.opts...)
			if err != nil {
				t.Fatalf("NewLayout: %v", err)
			}
			got, err := layout.Render()
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
