package token

// HighlightToken mirrors the LSP semantic token types the server advertises.
type HighlightToken uint8

const (
	HighlightNamespace HighlightToken = iota
	HighlightClass
	HighlightEnum
	HighlightInterface
	HighlightType
	HighlightParameter
	HighlightVariable
	HighlightProperty
	HighlightEnumMember
	HighlightFunction
	HighlightMethod
	HighlightMacro
	HighlightKeyword
	HighlightComment
	HighlightString
	HighlightNumber
	HighlightOperator
)

var highlightNames = [...]string{
	HighlightNamespace:  "namespace",
	HighlightClass:      "class",
	HighlightEnum:       "enum",
	HighlightInterface:  "interface",
	HighlightType:       "type",
	HighlightParameter:  "parameter",
	HighlightVariable:   "variable",
	HighlightProperty:   "property",
	HighlightEnumMember: "enumMember",
	HighlightFunction:   "function",
	HighlightMethod:     "method",
	HighlightMacro:      "macro",
	HighlightKeyword:    "keyword",
	HighlightComment:    "comment",
	HighlightString:     "string",
	HighlightNumber:     "number",
	HighlightOperator:   "operator",
}

func (h HighlightToken) String() string {
	if int(h) < len(highlightNames) {
		return highlightNames[h]
	}
	return "unknown"
}

// HighlightModifier mirrors LSP semantic token modifiers. Invalid means "not refined yet".
type HighlightModifier uint8

const (
	ModifierInvalid HighlightModifier = iota
	ModifierDeclaration
	ModifierReadonly
	ModifierStatic
	ModifierDefaultLibrary
)

func (m HighlightModifier) String() string {
	switch m {
	case ModifierInvalid:
		return "invalid"
	case ModifierDeclaration:
		return "declaration"
	case ModifierReadonly:
		return "readonly"
	case ModifierStatic:
		return "static"
	case ModifierDefaultLibrary:
		return "defaultLibrary"
	}
	return "unknown"
}

// Highlight is the default semantic coloring attached to every token.
type Highlight struct {
	Token    HighlightToken
	Modifier HighlightModifier
}

// DefaultHighlight returns h with the modifier left unrefined.
func DefaultHighlight(h HighlightToken) Highlight {
	return Highlight{Token: h, Modifier: ModifierInvalid}
}
