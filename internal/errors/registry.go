package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const (
	CodeSingletonChildren        = "H001"
	CodeMissingRequiredAttribute = "H002"
	CodeUnsupportedAttribute     = "H003"
	CodeEmptyTag                 = "H004"
	CodeInvalidTagKind           = "H005"
	CodeUnresolvedPlaceholder    = "H006"
	CodePlaceholderCycle         = "H007"

	CodeConfigNotFound = "H100"
	CodeConfigInvalid  = "H101"
	CodeConfigWrite    = "H102"

	CodePublishFailed = "H120"
	CodePageNotFound  = "H121"

	CodeInvalidArgs = "H140"
)

const docBase = "https://github.com/vango-dev/htmlnode/blob/main/docs/errors.md#"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Node and markup errors (H001-H099)
	// ============================================

	CodeSingletonChildren: {
		Category: CategoryNode,
		Message:  "Singleton tag cannot have children",
		Detail:   "Void elements such as img, br and input never contain children. Move the content to a sibling element.",
		DocURL:   docBase + "h001",
	},
	CodeMissingRequiredAttribute: {
		Category: CategoryNode,
		Message:  "Missing required attribute",
		Detail:   "The tag type declares attributes that must be present after defaults and caller attributes are merged.",
		DocURL:   docBase + "h002",
	},
	CodeUnsupportedAttribute: {
		Category: CategoryMarkup,
		Message:  "Unsupported attribute value",
		Detail:   "Attribute values must be nil, bool, string, []string, map[string]bool, a number, a time.Time, or a named type over a string, bool or number.",
		DocURL:   docBase + "h003",
	},
	CodeEmptyTag: {
		Category: CategoryMarkup,
		Message:  "Tag must have at least one non-empty part",
		Detail:   "A tag token needs a name; every part given was empty or whitespace.",
		DocURL:   docBase + "h004",
	},
	CodeInvalidTagKind: {
		Category: CategoryMarkup,
		Message:  "Invalid tag kind",
		Detail:   "Tag tokens are either open, close or singleton.",
		DocURL:   docBase + "h005",
	},
	CodeUnresolvedPlaceholder: {
		Category: CategoryTemplate,
		Message:  "Unresolved placeholder",
		Detail:   "A placeholder was rendered or filled without a matching producer.",
		DocURL:   docBase + "h006",
	},
	CodePlaceholderCycle: {
		Category: CategoryTemplate,
		Message:  "Placeholder cycle",
		Detail:   "A placeholder's replacement contains the same placeholder, directly or through other placeholders.",
		DocURL:   docBase + "h007",
	},

	// ============================================
	// Config errors (H100-H119)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "htmlnode.json not found",
		Detail:   "Run the command from a project directory or pass --config.",
		DocURL:   docBase + "h100",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "htmlnode.json could not be parsed or failed validation.",
		DocURL:   docBase + "h101",
	},
	CodeConfigWrite: {
		Category: CategoryConfig,
		Message:  "Failed to write configuration",
		Detail:   "htmlnode.json could not be written.",
		DocURL:   docBase + "h102",
	},

	// ============================================
	// Publish errors (H120-H139)
	// ============================================

	CodePublishFailed: {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "A rendered page could not be uploaded to the bucket.",
		DocURL:   docBase + "h120",
	},
	CodePageNotFound: {
		Category: CategoryPublish,
		Message:  "Page not found",
		Detail:   "No page is registered under the requested path.",
		DocURL:   docBase + "h121",
	},

	// ============================================
	// CLI errors (H140-H159)
	// ============================================

	CodeInvalidArgs: {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command received arguments it does not accept.",
		DocURL:   docBase + "h140",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
