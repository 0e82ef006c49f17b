package main

import (
	"sort"
	"strings"

	. "github.com/vango-dev/htmlnode/el"
	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/pkg/node"
	"github.com/vango-dev/htmlnode/pkg/site"
	"github.com/vango-dev/htmlnode/pkg/template"
)

const stylesheet = `body{font-family:system-ui,sans-serif;margin:0}
.container{max-width:48rem;margin:2rem auto;padding:0 1rem}
nav a{margin-right:1rem}
td,th{padding:.25rem .75rem;text-align:left}`

// newSite returns the built-in documentation site.
func newSite(cfg *config.Config) *site.Site {
	s := site.New(template.Context{
		"title": cfg.Site.Title,
		"lang":  cfg.Site.Lang,
	})
	s.Handle("/", homePage)
	s.Handle("/about", aboutPage)
	s.Handle("/tags", tagsPage)
	s.Handle("/hello/{name}", helloPage)
	return s
}

// page wraps body in the site layout.
func page(ctx template.Context, body template.Producer) (node.Node, error) {
	return template.NewLayout(
		template.WithContext(ctx),
		template.WithProducer("head", head),
		template.WithProducer("body", body),
	)
}

func head(t *template.Template) (node.Node, error) {
	return Fragment{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		Title(t.Context().GetString("title")),
		StyleEl(Raw(stylesheet)),
	}, nil
}

func nav() *node.Tag {
	return Nav(
		A(Href("/"), "Home"),
		A(Href("/about"), "About"),
		A(Href("/tags"), "Tags"),
	)
}

func homePage(ctx template.Context) (node.Node, error) {
	return page(ctx, func(t *template.Template) (node.Node, error) {
		c := t.Context()
		return Div(Class("container"),
			nav(),
			H1(c.GetString("title")),
			P("Pages on this site are trees of Go values rendered to HTML."),
			Ul(
				Li(A(Href("/about"), "How it works")),
				Li(A(Href("/tags"), "Registered tag types")),
				Li(A(Href("/hello/world"), "A page with a route parameter")),
			),
		), nil
	})
}

func aboutPage(ctx template.Context) (node.Node, error) {
	return page(ctx, func(t *template.Template) (node.Node, error) {
		return Div(Class("container"),
			nav(),
			H2("How it works"),
			P("A template builds a base tree with named placeholders. ",
				"Producers build the trees that fill them, once per template."),
			Pre(Code(`layout, _ := template.NewLayout(template.With("title", "Docs"))
html, _ := layout.Render()`)),
		), nil
	})
}

func tagsPage(ctx template.Context) (node.Node, error) {
	return page(ctx, func(t *template.Template) (node.Node, error) {
		rows := Range(registeredTypes(), func(_ int, typ *node.Type) node.Node {
			return Tr(
				Td(Code(typ.Name)),
				Td(flags(typ)),
				Td(strings.Join(typ.RequiredAttributes, ", ")),
			)
		})
		return Div(Class("container"),
			nav(),
			H2("Registered tag types"),
			Table(
				Thead(Tr(Th("Tag"), Th("Flags"), Th("Requires"))),
				Tbody(rows),
			),
		), nil
	})
}

func helloPage(ctx template.Context) (node.Node, error) {
	return page(ctx, func(t *template.Template) (node.Node, error) {
		c := t.Context()
		return Div(Class("container"),
			nav(),
			H2("Hello, ", c.GetString("name"), "!"),
			If(c.GetString("greeting") != "", P(c.GetString("greeting"))),
		), nil
	})
}

// registeredTypes returns the types with special behavior in name order,
// without aliases.
func registeredTypes() []*node.Type {
	seen := make(map[*node.Type]bool)
	var types []*node.Type
	for _, name := range node.DefaultRegistry.Names() {
		typ := node.DefaultRegistry.Lookup(name)
		if seen[typ] || !special(typ) {
			continue
		}
		seen[typ] = true
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

func special(typ *node.Type) bool {
	return typ.Singleton || typ.Safe || typ.Doctype ||
		len(typ.DefaultAttributes) > 0 || len(typ.DefaultClasses) > 0 ||
		len(typ.RequiredAttributes) > 0
}

func flags(typ *node.Type) string {
	var out []string
	if typ.Singleton {
		out = append(out, "singleton")
	}
	if typ.Safe {
		out = append(out, "safe")
	}
	if typ.Doctype {
		out = append(out, "doctype")
	}
	return strings.Join(out, " ")
}
