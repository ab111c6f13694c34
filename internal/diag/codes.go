package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownToken       Code = 1001
	LexUnterminatedString Code = 1002

	// Синтаксические (парсер деклараций)
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedBrace   Code = 2002
	SynExpectName      Code = 2003

	// Семантические
	SemaInfo            Code = 3000
	SemaDuplicateSymbol Code = 3001

	// include-граф
	IncInfo      Code = 5000
	IncNotFound  Code = 5001
	IncCycle     Code = 5002
	IncMalformed Code = 5003

	// наблюдаемость
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownToken:       "Unknown token",
	LexUnterminatedString: "Unterminated string literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedBrace:      "Unclosed brace",
	SynExpectName:         "Expected a name",
	SemaInfo:              "Semantic information",
	SemaDuplicateSymbol:   "Duplicate declaration",
	IncInfo:               "Include information",
	IncNotFound:           "Included file not found",
	IncCycle:              "Circular include",
	IncMalformed:          "Malformed include directive",
	ObsTimings:            "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("INC%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
