// Package symbols is the minimal name-resolution collaborator spec.md
// §6 lists (`lookup(n, name)`): it resolves an identifier to a
// definition and tells the checker that definition's kind, so
// internal/check's reference-typing rule (spec §4.D) can dispatch on
// it. Full name resolution (imports, module loading, shadowing rules
// beyond lexical scoping) is out of scope for this module; this
// package only ships enough of it that the core has something real to
// consume, grounded on the teacher's internal/symbols scope-table
// shape (ScopeType/SymbolKind/Symbol).
package symbols

import (
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

// Kind is the definition kind spec §4.D dispatches a Reference on.
type Kind int

const (
	Package Kind = iota
	TypeSym
	ClassSym
	ActorSym
	FVar
	FLet
	Param
	NewMethod
	BeMethod
	FunMethod
	IDSeq // local bound by pattern/destructuring — spec §4.D, §9: stubbed
)

// Symbol is a single resolved definition.
type Symbol struct {
	Name     string
	Kind     Kind
	DefPos   token.Position // where this symbol was declared (def-before-use, spec §4.D)
	DeclType types.Type     // declared type: FVar/FLet/Param type, method signature, or a type's nominal
	Method   types.MethodSig
	// Exports holds a package symbol's member types, keyed by name,
	// for `package.Type` resolution (spec §4.D dot-on-package rule).
	Exports map[string]*Symbol
}

// Scope is a lexical scope: a flat symbol table with a link to its
// enclosing scope. Lookup walks outward until it finds a match or runs
// out of scopes, the usual lexical-scoping rule.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a root scope with no parent (the prelude/global
// scope a program's package-level declarations live in).
func NewScope() *Scope {
	return &Scope{symbols: make(map[string]*Symbol)}
}

// NewChild creates a scope nested inside s (a method body's parameter
// scope, for instance).
func (s *Scope) NewChild() *Scope {
	return &Scope{parent: s, symbols: make(map[string]*Symbol)}
}

// Define binds name to sym in this scope, overwriting any existing
// binding of the same name in this scope only (shadowing an outer
// scope's binding is allowed, matching ordinary lexical scoping).
func (s *Scope) Define(name string, sym *Symbol) {
	s.symbols[name] = sym
}

// Lookup resolves name by searching this scope and then its ancestors.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
