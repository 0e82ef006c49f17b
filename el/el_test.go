package el

import (
	"errors"
	"testing"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func mustRender(t *testing.T, n node.Node) string {
	t.Helper()
	s, err := node.Render(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return s
}

func TestElements(t *testing.T) {
	tests := []struct {
		name string
		got  node.Node
		want string
	}{
		{"div", Div(Class("a b"), "x"), `<div class="a b">x</div>`},
		{"anchor default", A("home"), `<a href="javascript:void(0)">home</a>`},
		{"anchor href", A(Href("/"), "home"), `<a href="/">home</a>`},
		{"img", Img(Src("/a.png"), Alt("A & B")), `<img src="/a.png" alt="A &amp; B" />`},
		{"link", LinkEl(Href("/s.css")), `<link rel="text/css" href="/s.css" />`},
		{"script is safe", Script("a < b"), `<script type="text/javascript">a < b</script>`},
		{"br", Br(), `<br />`},
		{"input flags", Input(Type("checkbox"), Checked()), `<input type="checkbox" checked />`},
		{"data", Span(Data("id", "7")), `<span data-id="7"></span>`},
		{"aria", Button(AriaExpanded(false)), `<button aria-expanded="false"></button>`},
		{"time", Time_("now"), `<time>now</time>`},
		{"custom", CustomElement("my-widget", "hi"), `<my-widget>hi</my-widget>`},
		{"html", Html(Body()), `<!DOCTYPE HTML><html><body></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.got); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassHelpersAccumulate(t *testing.T) {
	got := mustRender(t, Div(Class("card"), ClassIf(true, "active"), ClassIf(false, "hidden"), Class("card")))
	if want := `<div class="card active"></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrIf(t *testing.T) {
	if got, want := mustRender(t, P(AttrIf(false, ID("x")))), "<p></p>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := mustRender(t, P(AttrIf(true, ID("x")))), `<p id="x"></p>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConstructorsPanic(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, node.ErrMissingRequiredAttribute) {
			t.Fatalf("recovered %v, want ErrMissingRequiredAttribute", r)
		}
	}()
	Img()
}

func TestNewReturnsError(t *testing.T) {
	_, err := New("br", "child")
	if !errors.Is(err, node.ErrSingletonChildren) {
		t.Errorf("got %v, want ErrSingletonChildren", err)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Fatalf("IsVoidElement(\"br\") expected true")
	}
	if IsVoidElement("div") {
		t.Fatalf("IsVoidElement(\"div\") expected false")
	}
}

func TestConditionalHelpers(t *testing.T) {
	n := Span("ok")

	if If(true, n) != node.Node(n) {
		t.Fatalf("If(true) should return node")
	}
	if If(false, n) != nil {
		t.Fatalf("If(false) should return nil")
	}
	if IfElse(false, n, nil) != nil {
		t.Fatalf("IfElse(false) should return ifFalse")
	}
	if Unless(true, n) != nil {
		t.Fatalf("Unless(true) should return nil")
	}
	if When(false, func() node.Node { t.Fatal("When(false) called fn"); return nil }) != nil {
		t.Fatalf("When(false) should return nil")
	}

	got := mustRender(t, Div(If(false, n), "x"))
	if want := "<div>x</div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFragmentAndRange(t *testing.T) {
	items := []string{"a", "<b>"}
	list := Ul(Range(items, func(i int, s string) node.Node {
		return Li(Textf("%d:%s", i, s))
	}))
	if got, want := mustRender(t, list), "<ul><li>0:a</li><li>1:&lt;b&gt;</li></ul>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	frag := Fragment{"x & y", Raw("<hr />"), nil, 3}
	if got, want := mustRender(t, frag), "x &amp; y<hr />3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
