package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkTuple types a tuple literal (spec §4.F): a single element
// collapses to its own type; two or more build a right-cons
// types.Tuple over the element types in order.
func (c *Checker) checkTuple(x *ast.TupleExpr) bool {
	if len(x.Elements) == 0 {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "tuple must have at least one element")
	}
	elemTypes := make([]types.Type, len(x.Elements))
	for i, el := range x.Elements {
		t := el.Type()
		if t == nil {
			return false
		}
		elemTypes[i] = t
	}
	if len(elemTypes) == 1 {
		x.SetType(elemTypes[0])
		return true
	}
	tup := elemTypes[len(elemTypes)-1]
	for i := len(elemTypes) - 2; i >= 0; i-- {
		tup = types.Tuple{Head: elemTypes[i], Tail: tup}
	}
	x.SetType(tup)
	return true
}

// checkSeq types a sequence (spec §4.F): the last element's type,
// unioned with Error if any element can fail (left as is when the last
// element's type already contains Error).
func (c *Checker) checkSeq(x *ast.Seq) bool {
	if len(x.Elements) == 0 {
		x.SetType(types.None)
		return true
	}
	anyError := false
	for _, el := range x.Elements {
		t := el.Type()
		if t == nil {
			return false
		}
		if containsError(t) {
			anyError = true
		}
	}
	last := x.Elements[len(x.Elements)-1].Type()
	result := last
	if anyError && !containsError(last) {
		result = types.Union{Left: last, Right: types.Error}
	}
	x.SetType(result)
	return true
}

// checkCall types a function call (spec §4.F): dispatch on the
// callee's type. A method signature requires the call-site receiver
// capability be a subtype of the method's formal one; the result is
// the signature's result slot, unioned with the Error marker when the
// callee is partial — a call to a partial method can itself fail,
// folding that effect into the enclosing sequence the same way a bare
// `error` expression does (SPEC_FULL.md §4, supplementing spec.md's
// §4.F TODO on call-site partiality propagation). A tuple type can
// never be called. Argument-type matching against the signature's
// parameter types remains a documented TODO (spec §4.F), left
// unimplemented to match the original's own stated gap. Calling a union, intersection, nominal, structural or
// arrow value is apply-/create-sugar, stubbed the same as every other
// "not implemented" kind.
func (c *Checker) checkCall(x *ast.Call) bool {
	ct := x.Callee.Type()
	if ct == nil {
		return false
	}
	switch sig := ct.(type) {
	case types.MethodSig:
		recvCap := capability.Ref
		if m, ok := c.enclosingMethodBody(x); ok {
			recvCap = capability.ForReceiver(m.Cap)
		}
		funCap := capability.ForFun(sig.Cap)
		if !capability.IsSubCap(recvCap, funCap) {
			return c.sink.Error(x.Pos(), diagnostics.ErrCapability,
				"receiver capability is not a subtype of method capability")
		}
		result := sig.Result
		if result == nil {
			result = types.None
		}
		if sig.Throws {
			result = types.Union{Left: result, Right: types.Error}
		}
		x.SetType(result)
		return true

	case types.Tuple:
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "can't call a tuple type")

	default:
		return c.sink.Error(x.Pos(), diagnostics.ErrUnimplemented,
			"calling a '%s' value is not implemented", ct)
	}
}
