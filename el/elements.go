// Element constructors. Each panics if the tag cannot be built; use New
// for an error return.
package el

import "github.com/vango-dev/htmlnode/pkg/node"

func Html(args ...any) *node.Tag {
	return build("html", args)
}
func Head(args ...any) *node.Tag {
	return build("head", args)
}
func Body(args ...any) *node.Tag {
	return build("body", args)
}
func Title(args ...any) *node.Tag {
	return build("title", args)
}
func Meta(args ...any) *node.Tag {
	return build("meta", args)
}
func LinkEl(args ...any) *node.Tag {
	return build("link", args)
}
func Base(args ...any) *node.Tag {
	return build("base", args)
}
func StyleEl(args ...any) *node.Tag {
	return build("style", args)
}
func Script(args ...any) *node.Tag {
	return build("script", args)
}
func Noscript(args ...any) *node.Tag {
	return build("noscript", args)
}
func Header(args ...any) *node.Tag {
	return build("header", args)
}
func Footer(args ...any) *node.Tag {
	return build("footer", args)
}
func Main(args ...any) *node.Tag {
	return build("main", args)
}
func Nav(args ...any) *node.Tag {
	return build("nav", args)
}
func Section(args ...any) *node.Tag {
	return build("section", args)
}
func Article(args ...any) *node.Tag {
	return build("article", args)
}
func Aside(args ...any) *node.Tag {
	return build("aside", args)
}
func Address(args ...any) *node.Tag {
	return build("address", args)
}
func H1(args ...any) *node.Tag {
	return build("h1", args)
}
func H2(args ...any) *node.Tag {
	return build("h2", args)
}
func H3(args ...any) *node.Tag {
	return build("h3", args)
}
func H4(args ...any) *node.Tag {
	return build("h4", args)
}
func H5(args ...any) *node.Tag {
	return build("h5", args)
}
func H6(args ...any) *node.Tag {
	return build("h6", args)
}
func Hgroup(args ...any) *node.Tag {
	return build("hgroup", args)
}
func Div(args ...any) *node.Tag {
	return build("div", args)
}
func P(args ...any) *node.Tag {
	return build("p", args)
}
func Span(args ...any) *node.Tag {
	return build("span", args)
}
func Pre(args ...any) *node.Tag {
	return build("pre", args)
}
func Blockquote(args ...any) *node.Tag {
	return build("blockquote", args)
}
func Ul(args ...any) *node.Tag {
	return build("ul", args)
}
func Ol(args ...any) *node.Tag {
	return build("ol", args)
}
func Li(args ...any) *node.Tag {
	return build("li", args)
}
func Dl(args ...any) *node.Tag {
	return build("dl", args)
}
func Dt(args ...any) *node.Tag {
	return build("dt", args)
}
func Dd(args ...any) *node.Tag {
	return build("dd", args)
}
func Hr(args ...any) *node.Tag {
	return build("hr", args)
}
func Figure(args ...any) *node.Tag {
	return build("figure", args)
}
func Figcaption(args ...any) *node.Tag {
	return build("figcaption", args)
}
func A(args ...any) *node.Tag {
	return build("a", args)
}
func Strong(args ...any) *node.Tag {
	return build("strong", args)
}
func Em(args ...any) *node.Tag {
	return build("em", args)
}
func B(args ...any) *node.Tag {
	return build("b", args)
}
func I(args ...any) *node.Tag {
	return build("i", args)
}
func U(args ...any) *node.Tag {
	return build("u", args)
}
func S(args ...any) *node.Tag {
	return build("s", args)
}
func Small(args ...any) *node.Tag {
	return build("small", args)
}
func Mark(args ...any) *node.Tag {
	return build("mark", args)
}
func Sub(args ...any) *node.Tag {
	return build("sub", args)
}
func Sup(args ...any) *node.Tag {
	return build("sup", args)
}
func Code(args ...any) *node.Tag {
	return build("code", args)
}
func Kbd(args ...any) *node.Tag {
	return build("kbd", args)
}
func Samp(args ...any) *node.Tag {
	return build("samp", args)
}
func Var(args ...any) *node.Tag {
	return build("var", args)
}
func Abbr(args ...any) *node.Tag {
	return build("abbr", args)
}
func Time_(args ...any) *node.Tag {
	return build("time", args)
}
func Cite(args ...any) *node.Tag {
	return build("cite", args)
}
func Q(args ...any) *node.Tag {
	return build("q", args)
}
func Dfn(args ...any) *node.Tag {
	return build("dfn", args)
}
func Ruby(args ...any) *node.Tag {
	return build("ruby", args)
}
func Rt(args ...any) *node.Tag {
	return build("rt", args)
}
func Rp(args ...any) *node.Tag {
	return build("rp", args)
}
func Bdi(args ...any) *node.Tag {
	return build("bdi", args)
}
func Bdo(args ...any) *node.Tag {
	return build("bdo", args)
}
func DataElement(args ...any) *node.Tag {
	return build("data", args)
}
func Br(args ...any) *node.Tag {
	return build("br", args)
}
func Wbr(args ...any) *node.Tag {
	return build("wbr", args)
}
func Form(args ...any) *node.Tag {
	return build("form", args)
}
func Input(args ...any) *node.Tag {
	return build("input", args)
}
func Textarea(args ...any) *node.Tag {
	return build("textarea", args)
}
func Select(args ...any) *node.Tag {
	return build("select", args)
}
func Option(args ...any) *node.Tag {
	return build("option", args)
}
func Optgroup(args ...any) *node.Tag {
	return build("optgroup", args)
}
func Button(args ...any) *node.Tag {
	return build("button", args)
}
func Label(args ...any) *node.Tag {
	return build("label", args)
}
func Fieldset(args ...any) *node.Tag {
	return build("fieldset", args)
}
func Legend(args ...any) *node.Tag {
	return build("legend", args)
}
func Datalist(args ...any) *node.Tag {
	return build("datalist", args)
}
func Output(args ...any) *node.Tag {
	return build("output", args)
}
func Progress(args ...any) *node.Tag {
	return build("progress", args)
}
func Meter(args ...any) *node.Tag {
	return build("meter", args)
}
func Table(args ...any) *node.Tag {
	return build("table", args)
}
func Thead(args ...any) *node.Tag {
	return build("thead", args)
}
func Tbody(args ...any) *node.Tag {
	return build("tbody", args)
}
func Tfoot(args ...any) *node.Tag {
	return build("tfoot", args)
}
func Tr(args ...any) *node.Tag {
	return build("tr", args)
}
func Th(args ...any) *node.Tag {
	return build("th", args)
}
func Td(args ...any) *node.Tag {
	return build("td", args)
}
func Caption(args ...any) *node.Tag {
	return build("caption", args)
}
func Colgroup(args ...any) *node.Tag {
	return build("colgroup", args)
}
func Col(args ...any) *node.Tag {
	return build("col", args)
}
func Img(args ...any) *node.Tag {
	return build("img", args)
}
func Picture(args ...any) *node.Tag {
	return build("picture", args)
}
func Source(args ...any) *node.Tag {
	return build("source", args)
}
func Video(args ...any) *node.Tag {
	return build("video", args)
}
func Audio(args ...any) *node.Tag {
	return build("audio", args)
}
func Track(args ...any) *node.Tag {
	return build("track", args)
}
func Iframe(args ...any) *node.Tag {
	return build("iframe", args)
}
func Embed(args ...any) *node.Tag {
	return build("embed", args)
}
func Object(args ...any) *node.Tag {
	return build("object", args)
}
func Param(args ...any) *node.Tag {
	return build("param", args)
}
func Canvas(args ...any) *node.Tag {
	return build("canvas", args)
}
func Svg(args ...any) *node.Tag {
	return build("svg", args)
}
func Map_(args ...any) *node.Tag {
	return build("map", args)
}
func Area(args ...any) *node.Tag {
	return build("area", args)
}
func Details(args ...any) *node.Tag {
	return build("details", args)
}
func Summary(args ...any) *node.Tag {
	return build("summary", args)
}
func Dialog(args ...any) *node.Tag {
	return build("dialog", args)
}
func Menu(args ...any) *node.Tag {
	return build("menu", args)
}
func TemplateEl(args ...any) *node.Tag {
	return build("template", args)
}
func Slot(args ...any) *node.Tag {
	return build("slot", args)
}
