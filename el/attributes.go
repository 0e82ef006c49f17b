package el

import (
	"strconv"
	"strings"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func attr(key string, value any) node.Attr {
	return node.Attr{Key: key, Value: value}
}

// flag renders as a bare attribute.
func flag(key string) node.Attr {
	return node.Attr{Key: key}
}

// Attr sets an arbitrary attribute.
func Attr(key string, value any) node.Attr {
	return attr(key, value)
}

// AttrIf sets a only when condition holds.
func AttrIf(condition bool, a node.Attr) node.Option {
	if !condition {
		return node.Attrs(nil)
	}
	return a
}

// Class seeds the class list. Defaults of the tag type stay in front and
// duplicates are dropped.
func Class(classes ...string) node.Option {
	return node.Class(classes)
}

// ClassIf seeds class only when condition holds.
func ClassIf(condition bool, class string) node.Option {
	return node.Class(map[string]bool{class: condition})
}

// Classes seeds the class list from a map of class name to enabled.
func Classes(classes map[string]bool) node.Option {
	return node.Class(classes)
}

func ID(id string) node.Attr          { return attr("id", id) }
func StyleAttr(style string) node.Attr { return attr("style", style) }
func TitleAttr(title string) node.Attr { return attr("title", title) }
func Lang(lang string) node.Attr       { return attr("lang", lang) }
func Dir(dir string) node.Attr         { return attr("dir", dir) }
func Role(role string) node.Attr       { return attr("role", role) }
func TabIndex(index int) node.Attr     { return attr("tabindex", index) }
func Hidden() node.Attr                { return flag("hidden") }

// Data sets data-<key>.
func Data(key, value string) node.Attr {
	return attr("data-"+key, value)
}

// Aria sets aria-<key>.
func Aria(key string, value any) node.Attr {
	if b, ok := value.(bool); ok {
		value = strconv.FormatBool(b)
	}
	return attr("aria-"+key, value)
}

func AriaLabel(label string) node.Attr    { return Aria("label", label) }
func AriaHidden(hidden bool) node.Attr    { return Aria("hidden", hidden) }
func AriaCurrent(value string) node.Attr  { return Aria("current", value) }
func AriaExpanded(expanded bool) node.Attr { return Aria("expanded", expanded) }

// Links and media.

func Href(url string) node.Attr      { return attr("href", url) }
func Target(target string) node.Attr { return attr("target", target) }
func Rel(rel string) node.Attr       { return attr("rel", rel) }
func Src(url string) node.Attr       { return attr("src", url) }
func Alt(text string) node.Attr      { return attr("alt", text) }
func Width(w int) node.Attr          { return attr("width", w) }
func Height(h int) node.Attr         { return attr("height", h) }
func Loading(mode string) node.Attr  { return attr("loading", mode) }
func Srcset(srcset string) node.Attr { return attr("srcset", srcset) }
func Controls() node.Attr            { return flag("controls") }
func Autoplay() node.Attr            { return flag("autoplay") }
func Loop() node.Attr                { return flag("loop") }

// Download marks a link as a download, optionally naming the file.
func Download(filename ...string) node.Attr {
	if len(filename) == 0 {
		return flag("download")
	}
	return attr("download", strings.Join(filename, ""))
}

// Forms.

func Name(name string) node.Attr           { return attr("name", name) }
func Value(value string) node.Attr         { return attr("value", value) }
func Type(t string) node.Attr              { return attr("type", t) }
func Placeholder(text string) node.Attr    { return attr("placeholder", text) }
func Action(url string) node.Attr          { return attr("action", url) }
func Method(method string) node.Attr       { return attr("method", method) }
func For(id string) node.Attr              { return attr("for", id) }
func Pattern(pattern string) node.Attr     { return attr("pattern", pattern) }
func MinLength(n int) node.Attr            { return attr("minlength", n) }
func MaxLength(n int) node.Attr            { return attr("maxlength", n) }
func Rows(n int) node.Attr                 { return attr("rows", n) }
func Cols(n int) node.Attr                 { return attr("cols", n) }
func Autocomplete(value string) node.Attr  { return attr("autocomplete", value) }
func Disabled() node.Attr                  { return flag("disabled") }
func Readonly() node.Attr                  { return flag("readonly") }
func Required() node.Attr                  { return flag("required") }
func Checked() node.Attr                   { return flag("checked") }
func Selected() node.Attr                  { return flag("selected") }
func Multiple() node.Attr                  { return flag("multiple") }
func Autofocus() node.Attr                 { return flag("autofocus") }

// Tables.

func Colspan(n int) node.Attr     { return attr("colspan", n) }
func Rowspan(n int) node.Attr     { return attr("rowspan", n) }
func Scope(scope string) node.Attr { return attr("scope", scope) }

// Document metadata and scripts.

func Charset(charset string) node.Attr   { return attr("charset", charset) }
func Content(content string) node.Attr   { return attr("content", content) }
func HttpEquiv(value string) node.Attr   { return attr("http-equiv", value) }
func Defer_() node.Attr                  { return flag("defer") }
func Async() node.Attr                   { return flag("async") }
func Crossorigin(value string) node.Attr { return attr("crossorigin", value) }
func Integrity(value string) node.Attr   { return attr("integrity", value) }
