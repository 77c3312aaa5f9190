package check

import (
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/subtype"
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

// isBuiltin reports whether t widens to the builtin type named name
// (spec §4.A's type_builtin membership test).
func isBuiltin(t types.Type, name string) bool {
	if t == nil {
		return false
	}
	return subtype.IsSubtype(t, types.Builtin(name))
}

func isBool(t types.Type) bool      { return isBuiltin(t, "Bool") }
func isInteger(t types.Type) bool   { return isBuiltin(t, "Integer") }
func isArithmetic(t types.Type) bool { return isBuiltin(t, "Arithmetic") }

// boolOrInt reports whether t is Bool or an integer type, reporting a
// diagnostic at pos and returning false otherwise (spec §4.A's
// type_int_or_bool, shared by `not` and the logical operators).
func (c *Checker) boolOrInt(pos token.Position, t types.Type) bool {
	if isBool(t) || isInteger(t) {
		return true
	}
	return c.sink.Error(pos, diagnostics.ErrOperator, "expected Bool or an integer type")
}

// typeSuper computes the join of a and b (spec §4.A's type_super):
// whichever operand the other is a subtype of, or nil when neither
// side subsumes the other.
func typeSuper(a, b types.Type) types.Type {
	if a == nil || b == nil {
		return nil
	}
	if subtype.IsSubtype(a, b) {
		return b
	}
	if subtype.IsSubtype(b, a) {
		return a
	}
	return nil
}

// typeUnion builds the result type of a branching construct (spec
// §4.A's type_union): the join when one branch subsumes the other,
// otherwise an explicit Union of both.
func typeUnion(a, b types.Type) types.Type {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if j := typeSuper(a, b); j != nil {
		return j
	}
	return types.Union{Left: a, Right: b}
}

// tupleIndex resolves `left.N` against a tuple's flattened element
// list (spec §4.A's tuple_index).
func tupleIndex(t types.Type, i int64) (types.Type, bool) {
	tt, ok := t.(types.Tuple)
	if !ok {
		return nil, false
	}
	elems := types.Elements(tt)
	if i < 0 || int(i) >= len(elems) {
		return nil, false
	}
	return elems[i], true
}

// containsError reports whether t is, or unions in, the Error marker
// (spec §8 P2's propagation rule).
func containsError(t types.Type) bool {
	if types.IsError(t) {
		return true
	}
	if u, ok := t.(types.Union); ok {
		return containsError(u.Left) || containsError(u.Right)
	}
	return false
}

// stripError returns t with its Error branch removed, if t is a
// two-member Union with Error as one side; otherwise it returns t
// unchanged.
func stripError(t types.Type) types.Type {
	if u, ok := t.(types.Union); ok {
		if types.IsError(u.Left) {
			return u.Right
		}
		if types.IsError(u.Right) {
			return u.Left
		}
	}
	return t
}
