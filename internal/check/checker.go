// Package check is the expression type-checking pass itself: spec.md
// §4.A through §4.I, dispatched from a single recursive walk (§4.I)
// over a parsed, name-resolved internal/ast tree. Every other internal
// package it imports — internal/types, internal/subtype,
// internal/capability, internal/symbols, internal/diagnostics — is a
// narrow collaborator spec.md §6 calls out by name; this package is
// the only one that decides what a Lumen expression's type *is*.
package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// Checker walks a program and attaches a type to every expression
// node it can, reporting a diagnostic for every one it can't. It holds
// no scope of its own — scopes are threaded explicitly through the
// walk, one per type declaration and one per method body — only the
// diagnostic sink and the parent-link map the enclosing-of-kind
// queries (EnclosingTypeDecl/EnclosingLoop/EnclosingMethodBody) need,
// in place of storing a parent pointer on every node (spec §9).
type Checker struct {
	sink    *diagnostics.Sink
	parents ast.ParentMap
}

// New creates a Checker that reports diagnostics to sink.
func New(sink *diagnostics.Sink) *Checker {
	return &Checker{sink: sink}
}

// Check type-checks every type declaration in prog. global is the
// scope package-level names (other packages, prelude types) resolve
// against; name resolution that produced it is an external
// collaborator (spec §6).
func (c *Checker) Check(prog *ast.Program, global *symbols.Scope) {
	c.parents = ast.BuildParents(prog)

	typeScope := global.NewChild()
	for _, td := range prog.Types {
		typeScope.Define(td.Name, &symbols.Symbol{
			Name:     td.Name,
			Kind:     symbolKindOf(td.Kind),
			DefPos:   td.Pos(),
			DeclType: types.Nominal{Name: td.Name, Cap: capability.Tag},
		})
	}
	for _, td := range prog.Types {
		c.checkTypeDecl(td, typeScope)
	}
}

func symbolKindOf(k ast.TypeDeclKind) symbols.Kind {
	switch k {
	case ast.ClassKind:
		return symbols.ClassSym
	case ast.ActorKind:
		return symbols.ActorSym
	default:
		return symbols.TypeSym
	}
}

func (c *Checker) enclosingTypeDecl(n ast.Node) (*ast.TypeDecl, bool) {
	return ast.EnclosingTypeDecl(c.parents, n)
}

func (c *Checker) enclosingLoop(n ast.Node) (ast.Node, bool) {
	return ast.EnclosingLoop(c.parents, n)
}

func (c *Checker) enclosingMethodBody(n ast.Node) (*ast.MethodDecl, bool) {
	return ast.EnclosingMethodBody(c.parents, n)
}
