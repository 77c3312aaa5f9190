package ast

import (
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/types"
)

// FieldKind distinguishes FVAR, FLET and PARAM declarations, which
// spec §4.H gives identical typing rules but which name resolution
// (an external collaborator) still needs to tell apart when dispatching
// a Reference to one of them.
type FieldKind int

const (
	FVarDecl FieldKind = iota
	FLetDecl
	ParamDecl
)

// FieldOrParam is a field or parameter declaration (spec §4.H):
// `name [: Type] [= Init]`, with Type and Init each independently
// optional.
type FieldOrParam struct {
	Base
	Typed
	Kind    FieldKind
	Name    string
	TypeAnn types.Type // declared type, nil if omitted
	Init    Expr       // initializer, nil if omitted
}

// TypeDeclKind distinguishes TYPE, CLASS, ACTOR and TRAIT declarations.
type TypeDeclKind int

const (
	TypeKind TypeDeclKind = iota
	ClassKind
	ActorKind
	TraitKind
)

// TypeDecl is a type/class/actor/trait declaration: the enclosing
// context `this` (spec §4.D) and method partiality rules (spec §4.H)
// both key off of it.
type TypeDecl struct {
	Base
	Name       string
	Kind       TypeDeclKind
	TypeParams []string
	Fields     []*FieldOrParam
	Methods    []*MethodDecl
}

// IsTrait reports whether this declaration is a trait, which relaxes
// the partial-must-be-able-to-fail rule (spec §4.H rule 2).
func (d *TypeDecl) IsTrait() bool { return d.Kind == TraitKind }

// MethodDecl is a NEW/BE/FUN declaration (spec §3, §4.B, §4.H):
// `cap id[typeparams](params): Result ? = Body`. Body is nil for an
// abstract (interface) member.
type MethodDecl struct {
	Base
	Cap        capability.Cap
	MethodKind types.MethodKind
	ID         string
	TypeParams []string
	Params     []*FieldOrParam
	Result     types.Type // nil means None
	Partial    bool       // the `?` marker (spec glossary: Partial function)
	Body       Expr       // nil for an abstract member
}

// Program is the root of a single checked compilation unit: an
// ordered sequence of top-level type declarations.
type Program struct {
	Base
	Types []*TypeDecl
}
