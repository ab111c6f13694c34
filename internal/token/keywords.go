package token

var keywords = map[string]struct{}{
	"and": {}, "auto": {}, "bool": {}, "break": {}, "case": {}, "cast": {}, "catch": {},
	"class": {}, "const": {}, "continue": {}, "default": {}, "do": {}, "double": {},
	"else": {}, "enum": {}, "false": {}, "float": {}, "for": {}, "funcdef": {}, "if": {},
	"import": {}, "in": {}, "inout": {}, "int": {}, "interface": {}, "int8": {}, "int16": {},
	"int32": {}, "int64": {}, "is": {}, "mixin": {}, "namespace": {}, "not": {}, "null": {},
	"or": {}, "out": {}, "override": {}, "private": {}, "property": {}, "protected": {},
	"return": {}, "switch": {}, "true": {}, "try": {}, "typedef": {}, "uint": {},
	"uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "void": {}, "while": {},
	"xor": {},
	// abstract, explicit, external, function, final, from, get, set, shared, super and
	// this are contextual: the compiler recognises them, the lexer keeps them identifiers.
}

// IsKeyword reports whether word is a reserved keyword.
// Keywords are case-sensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Symbols lists every operator and punctuation literal, one to four characters long.
var Symbols = []string{
	"*", "**", "/", "%", "+", "-", "<=", "<", ">=", ">", "(", ")", "==", "!=", "?", ":", "=",
	"+=", "-=", "*=", "/=", "%=", "**=", "++", "--", "&", ",", "{", "}", ";", "|", "^", "~",
	"<<", ">>", ">>>", "&=", "|=", "^=", "<<=", ">>=", ">>>=", ".", "&&", "||", "!", "[", "]",
	"^^", "@", "::",
}
