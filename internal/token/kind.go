package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Comment is a line (//) or block (/* */) comment.
	Comment Kind = iota
	// Number is a numeric literal such as 42, 3.14 or 2.5f.
	Number
	// Reserved covers both keywords and operator symbols.
	Reserved
	// Identifier is any non-keyword word.
	Identifier
	// String is a quoted literal ("...", '...' or """...""").
	String
	// Directive is a preprocessor word such as #include.
	Directive
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Reserved:
		return "reserved"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Directive:
		return "directive"
	}
	return "unknown"
}
