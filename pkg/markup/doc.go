// Package markup holds the pure string-level building blocks of htmlnode:
// escaping, tag tokens and attribute formatting.
//
// Nothing here knows about trees. The node package composes these
// functions into element rendering.
//
// # Escaping
//
// EscapeText is applied to text children and converts &, < and >.
// EscapeAttr is applied to quoted attribute values and additionally
// converts both quote characters. Together they are the only defense
// against markup injection, so every value that reaches the output goes
// through one of them unless a tag is explicitly marked safe.
//
// # Attributes
//
// Attribute values are rendered by kind:
//
//	nil               -> key
//	true              -> key="key"
//	false             -> omitted
//	string            -> key="value"
//	[]string          -> key="a b c"
//	map[string]bool   -> key="<truthy keys, sorted>"
//	int, float, ...   -> key="15"
//	time.Time         -> key="2006-01-02T15:04:05Z"
//
// Any other kind fails with ErrUnsupportedAttributeValue.
package markup
