package ast

import (
	"nvgtls/internal/source"
)

type DeclID uint32

const NoDeclID DeclID = 0

func (id DeclID) IsValid() bool { return id != NoDeclID }

type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclNamespace
	DeclClass
	DeclInterface
	DeclEnum
	DeclEnumValue
	DeclFuncdef
	DeclTypedef
	DeclImport
	DeclFunction
	DeclVariable
	DeclProperty
)

var declKindNames = [...]string{
	DeclInvalid:   "invalid",
	DeclNamespace: "namespace",
	DeclClass:     "class",
	DeclInterface: "interface",
	DeclEnum:      "enum",
	DeclEnumValue: "enum value",
	DeclFuncdef:   "funcdef",
	DeclTypedef:   "typedef",
	DeclImport:    "import",
	DeclFunction:  "function",
	DeclVariable:  "variable",
	DeclProperty:  "property",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return declKindNames[DeclInvalid]
}

// IsScope reports whether declarations of this kind own a member scope.
func (k DeclKind) IsScope() bool {
	switch k {
	case DeclNamespace, DeclClass, DeclInterface, DeclEnum:
		return true
	}
	return false
}

// IsCallable reports whether several declarations of this kind may share a name.
func (k DeclKind) IsCallable() bool {
	return k == DeclFunction || k == DeclImport
}

// Modifiers — битовая маска модификаторов декларации.
type Modifiers uint16

const (
	ModPrivate Modifiers = 1 << iota
	ModProtected
	ModShared
	ModExternal
	ModAbstract
	ModFinal
	ModConst
	ModOverride
	ModProperty
	ModMixin
)

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

// Decl — одна декларация верхнего уровня или член класса/namespace/enum.
type Decl struct {
	Kind      DeclKind
	Name      string
	NameLoc   source.Location
	Location  source.Location
	Type      string   // текст типа (возвращаемого для функций), "" у конструкторов
	Params    string   // текст списка параметров без скобок
	Bases     []string // базовые классы/интерфейсы
	Modifiers Modifiers
	Forward   bool // `class A;` без тела
	Parent    DeclID
	Children  []DeclID
}
