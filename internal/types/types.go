// Package types is the type-algebra data model described in spec.md §3:
// nominal types, right-cons tuples, unions, intersections, structural
// types, viewpoint-adapted arrows, and the three method-signature
// shapes (new/be/fun). A synthetic Error marker represents the "may
// fail" effect that partial functions and sequences propagate.
//
// This package owns the *shape* of types only. Subtyping lives in
// internal/subtype so the core can treat "is this a subtype of that"
// as a narrow, swappable collaborator the way spec.md §6 requires.
package types

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumenc/internal/capability"
)

// Type is implemented by every type-algebra node. It intentionally has
// no behaviour beyond printing: subtype/join/union logic lives outside
// the node so the algebra stays a plain data model, matching the
// teacher's separation of typesystem.Type (data) from analyzer (logic).
type Type interface {
	String() string
	isType()
}

// Nominal is a named type with optional package prefix, type
// arguments, a reference capability and an ephemerality flag (spec
// §3's NOMINAL(package?, name, typeargs, capability, ephemerality)).
type Nominal struct {
	Package    string // "" when unqualified
	Name       string
	TypeArgs   []Type
	Cap        capability.Cap
	Ephemeral  bool
}

func (n Nominal) isType() {}

func (n Nominal) String() string {
	var b strings.Builder
	if n.Package != "" {
		b.WriteString(n.Package)
		b.WriteByte('.')
	}
	b.WriteString(n.Name)
	if len(n.TypeArgs) > 0 {
		args := make([]string, len(n.TypeArgs))
		for i, a := range n.TypeArgs {
			args[i] = a.String()
		}
		b.WriteByte('[')
		b.WriteString(strings.Join(args, ", "))
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(n.Cap.String())
	if n.Ephemeral {
		b.WriteByte('^')
	}
	return strings.TrimSpace(b.String())
}

// Tuple is a binary, right-associative cons: an n-tuple is
// (t1, (t2, (t3, … tn))). Arity-1 tuples are never constructed as a
// Tuple — callers collapse them to the bare element type (spec §3).
type Tuple struct {
	Head Type
	Tail Type // either another Tuple, or the bare last element type
}

func (t Tuple) isType() {}

func (t Tuple) String() string {
	elems := Elements(t)
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Elements flattens a right-cons Tuple spine into its element types in
// order. It is the inverse of building one tuple_index call at a time.
func Elements(t Tuple) []Type {
	var out []Type
	out = append(out, t.Head)
	if tail, ok := t.Tail.(Tuple); ok {
		out = append(out, Elements(tail)...)
	} else {
		out = append(out, t.Tail)
	}
	return out
}

// Union is a binary union node; spec §4.A's type_union left-adds first
// (L becomes the left child, R the right).
type Union struct {
	Left, Right Type
}

func (u Union) isType() {}

func (u Union) String() string {
	return u.Left.String() + " | " + u.Right.String()
}

// Isect is a binary intersection node, the trait-composition
// counterpart to Union.
type Isect struct {
	Left, Right Type
}

func (i Isect) isType() {}

func (i Isect) String() string {
	return i.Left.String() + " & " + i.Right.String()
}

// Structural is an anonymous member-set type. It is recognized at call
// sites (spec §4.F) but this core never builds its member set — doing
// so is out of scope (dot/field access on a typed left is stubbed,
// spec §4.D).
type Structural struct {
	Name string // diagnostic label only, e.g. synthesized from a literal
}

func (s Structural) isType() {}

func (s Structural) String() string { return "{" + s.Name + "}" }

// Arrow is a viewpoint-adapted type (`T->U` under some receiver
// viewpoint). Viewpoint adaptation on assignment is a Non-goal (spec
// §1); Arrow exists only so the kind is representable and recognizable
// at call sites (spec §4.F).
type Arrow struct {
	From, To Type
}

func (a Arrow) isType() {}

func (a Arrow) String() string { return a.From.String() + "->" + a.To.String() }

// MethodKind distinguishes the three method-signature node kinds.
type MethodKind int

const (
	New MethodKind = iota
	Be
	Fun
)

func (k MethodKind) String() string {
	switch k {
	case New:
		return "new"
	case Be:
		return "be"
	default:
		return "fun"
	}
}

// MethodSig is the reshaped "function type" view of a NEW/BE/FUN
// declaration (spec §3): (cap, id, typeparams, types, result, throws,
// NONE), where Types holds parameter *types only*, in order.
type MethodSig struct {
	Kind       MethodKind
	Cap        capability.Cap
	ID         string
	TypeParams []string
	Types      []Type
	Result     Type // nil means None
	Throws     bool
}

func (m MethodSig) isType() {}

func (m MethodSig) String() string {
	params := make([]string, len(m.Types))
	for i, t := range m.Types {
		params[i] = t.String()
	}
	q := ""
	if m.Throws {
		q = "?"
	}
	result := "None"
	if m.Result != nil {
		result = m.Result.String()
	}
	return fmt.Sprintf("%s %s(%s)%s: %s", m.Kind, m.ID, strings.Join(params, ", "), q, result)
}

// errorMarker is the synthetic "this expression may fail" effect type
// (spec §3, §8 P2). There is exactly one instance, Error.
type errorMarker struct{}

func (errorMarker) isType() {}

func (errorMarker) String() string { return "$Error" }

// Error is the singleton synthetic marker denoting "this expression
// may abort by raising" (spec glossary: ERROR marker). It is attached
// to a node on its own only as the type of an `error` expression and of
// a sequence whose last element is one; elsewhere it appears as one
// branch of a Union.
var Error Type = errorMarker{}

// IsError reports whether t is exactly the Error marker.
func IsError(t Type) bool {
	_, ok := t.(errorMarker)
	return ok
}

// None is the unit/void nominal type, used as the result of
// statements/loops that have no value (if-without-else's missing
// branch, while/repeat's result, spec §4.G).
var None Type = Nominal{Name: "None"}

// IsNone reports whether t is the None nominal (by name only — this
// core does not distinguish None from a user type also named "None"
// since name resolution guarantees uniqueness upstream).
func IsNone(t Type) bool {
	n, ok := t.(Nominal)
	return ok && n.Package == "" && n.Name == "None" && len(n.TypeArgs) == 0
}
