// Package ast is the resolved, parsed syntax tree the checker walks.
// Lexing, parsing and name resolution are out of scope for this module
// (spec.md §1 lists them as collaborators); this package only defines
// the node shapes those passes would produce and that internal/check
// consumes.
//
// Rather than the single kind-tagged node spec.md §3 describes, each
// node kind is its own Go type implementing a small interface — the
// idiomatic Go rendering of a closed sum type (spec.md §9). Parent
// links and enclosing-of-kind queries are *not* stored on nodes
// (spec §9 notes they "need not be stored in the node"); instead
// internal/check tracks the current type declaration, loop and method
// body as it walks, the way a recursive-descent visitor naturally does.
package ast

import (
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

// Node is the base interface every tree element implements.
type Node interface {
	Pos() token.Position
}

// Expr is a Node that synthesizes a type (spec §3's "type slot").
// Every expression kind embeds Typed to get Type/SetType for free.
type Expr interface {
	Node
	exprNode()
	Type() types.Type
	SetType(types.Type)
}

// Base carries the source position every node needs.
type Base struct {
	Position token.Position
}

// Pos returns the node's source position.
func (b Base) Pos() token.Position { return b.Position }

// Typed is embedded by every expression node to hold its attached
// type (spec invariant: after the pass visits a node, either it has a
// type attached or a diagnostic was reported for that subtree — §8 P1).
type Typed struct {
	typ types.Type
}

// Type returns the node's attached type, or nil if none has been
// attached yet (or the subtree failed to type).
func (t *Typed) Type() types.Type { return t.typ }

// SetType attaches a type to the node.
func (t *Typed) SetType(ty types.Type) { t.typ = ty }
