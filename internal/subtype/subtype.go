// Package subtype is the nominal-type subtype engine that spec.md
// lists as an external collaborator (`is_subtype`, `is_eqtype`, §6).
// The core never reaches inside a type node to compare it structurally
// — it always goes through IsSubtype/IsEqType here, so the algebra in
// internal/types can change shape without the checker caring.
package subtype

import (
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/types"
)

// IsSubtype reports whether a is a subtype of b. Nil never matches
// anything: callers that might hold an absent type should check for
// nil before calling in (spec §4.A's join explicitly returns nothing
// when an operand is absent).
func IsSubtype(a, b types.Type) bool {
	if a == nil || b == nil {
		return false
	}

	// a's own union/intersection must be decomposed before b's: a Union
	// on the left needs each of its members checked against the whole
	// of b (letting b's decomposition below run once per member), not
	// against whichever single branch of b happened to match first —
	// otherwise (L1|R1) <: (L2|R2) only ever succeeds when L1 and R1
	// both happen to go through the *same* branch of b.
	switch at := a.(type) {
	case types.Union:
		// (L | R) <: T iff L <: T and R <: T.
		return IsSubtype(at.Left, b) && IsSubtype(at.Right, b)
	case types.Isect:
		// (L & R) <: T iff L <: T or R <: T.
		return IsSubtype(at.Left, b) || IsSubtype(at.Right, b)
	}

	switch bt := b.(type) {
	case types.Union:
		// T <: (L | R) iff T <: L or T <: R.
		return IsSubtype(a, bt.Left) || IsSubtype(a, bt.Right)
	case types.Isect:
		// T <: (L & R) iff T <: L and T <: R.
		return IsSubtype(a, bt.Left) && IsSubtype(a, bt.Right)
	}

	switch at := a.(type) {
	case types.Nominal:
		bt, ok := b.(types.Nominal)
		if !ok {
			return false
		}
		return nominalSubtype(at, bt)

	case types.Tuple:
		bt, ok := b.(types.Tuple)
		if !ok {
			return false
		}
		ea, eb := types.Elements(at), types.Elements(bt)
		if len(ea) != len(eb) {
			return false
		}
		for i := range ea {
			if !IsSubtype(ea[i], eb[i]) {
				return false
			}
		}
		return true

	case types.Structural:
		bt, ok := b.(types.Structural)
		return ok && at.Name == bt.Name

	case types.Arrow:
		bt, ok := b.(types.Arrow)
		if !ok {
			return false
		}
		// Functions are contravariant in their argument, covariant in
		// their result.
		return IsSubtype(bt.From, at.From) && IsSubtype(at.To, bt.To)

	case types.MethodSig:
		bt, ok := b.(types.MethodSig)
		return ok && methodSigEqual(at, bt)

	default:
		// The Error marker and any future singleton marker types are
		// only ever subtypes of themselves (reached when not wrapped
		// in a Union, e.g. for an `error` expression, whose attached
		// type is Error alone).
		return a == b
	}
}

// IsEqType reports whether a and b are mutual subtypes.
func IsEqType(a, b types.Type) bool {
	return IsSubtype(a, b) && IsSubtype(b, a)
}

func nominalSubtype(a, b types.Nominal) bool {
	if a.Package != b.Package {
		return false
	}
	if a.Name != b.Name {
		// Literal-polymorphism widening (e.g. IntLiteral <: Arithmetic):
		// only applies to bare, unqualified, non-generic builtin names.
		if a.Package != "" || len(a.TypeArgs) != 0 || len(b.TypeArgs) != 0 {
			return false
		}
		return types.IsBuiltinSubtype(a.Name, b.Name) && capability.IsSubCap(a.Cap, b.Cap)
	}
	if len(a.TypeArgs) != len(b.TypeArgs) {
		return false
	}
	for i := range a.TypeArgs {
		if !IsEqType(a.TypeArgs[i], b.TypeArgs[i]) {
			return false
		}
	}
	return capability.IsSubCap(a.Cap, b.Cap)
}

func methodSigEqual(a, b types.MethodSig) bool {
	if a.Kind != b.Kind || a.ID != b.ID || len(a.Types) != len(b.Types) {
		return false
	}
	for i := range a.Types {
		if !IsEqType(a.Types[i], b.Types[i]) {
			return false
		}
	}
	if (a.Result == nil) != (b.Result == nil) {
		return false
	}
	if a.Result != nil && !IsEqType(a.Result, b.Result) {
		return false
	}
	return a.Throws == b.Throws
}
