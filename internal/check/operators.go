package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/subtype"
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkArithmetic types `*`, `/`, `%`, `+` (spec §4.E's arithmetic-pair
// template): probe each side's arithmetic membership, then join the
// two probe results (nil on a non-arithmetic operand collapses the
// join to nil too, giving one unified failure path).
func (c *Checker) checkArithmetic(x *ast.Arithmetic) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	j := typeSuper(arithmeticProbe(lt), arithmeticProbe(rt))
	if j == nil {
		return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "left and right side must have related arithmetic types")
	}
	x.SetType(j)
	return true
}

// checkMinus types `-x` (Right nil, unary negation) and `x - y`
// (binary subtraction, the arithmetic-pair template) — spec §4.E.
func (c *Checker) checkMinus(x *ast.Minus) bool {
	lt := x.Left.Type()
	if lt == nil {
		return false
	}
	if x.Right == nil {
		if !isArithmetic(lt) {
			return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "must have an arithmetic type")
		}
		x.SetType(lt)
		return true
	}
	rt := x.Right.Type()
	if rt == nil {
		return false
	}
	j := typeSuper(arithmeticProbe(lt), arithmeticProbe(rt))
	if j == nil {
		return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "left and right side must have related arithmetic types")
	}
	x.SetType(j)
	return true
}

// checkShift types `<<`/`>>` (spec §4.E): both sides must pass
// integer-membership; the result is the left side's type.
func (c *Checker) checkShift(x *ast.Shift) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	if !isInteger(lt) || !isInteger(rt) {
		return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "left and right side must have integer types")
	}
	x.SetType(lt)
	return true
}

// arithOrRelated is the shared compare/order algorithm (spec §4.E):
// the preferred path is the arithmetic-pair template; when either side
// isn't arithmetic, fall back to requiring the right side be a subtype
// of the left. The result itself is always Bool at the call sites
// below — only success/failure matters here.
func (c *Checker) arithOrRelated(pos token.Position, lt, rt types.Type) bool {
	if isArithmetic(lt) && isArithmetic(rt) {
		if typeSuper(lt, rt) == nil {
			return c.sink.Error(pos, diagnostics.ErrOperator, "left and right side must have related arithmetic types")
		}
		return true
	}
	// TODO: the fallback accepts any right-subtype-of-left pair with no
	// Comparable/Ordered constraint on the left side's type — wiring
	// that needs trait-instance membership tracking in internal/symbols.
	if !subtype.IsSubtype(rt, lt) {
		return c.sink.Error(pos, diagnostics.ErrOperator, "right side must be a subtype of left side")
	}
	return true
}

// checkCompare types `==`/`!=` (spec §4.E).
func (c *Checker) checkCompare(x *ast.Compare) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	if !c.arithOrRelated(x.Pos(), lt, rt) {
		return false
	}
	x.SetType(types.Builtin("Bool"))
	return true
}

// checkOrder types `<`/`<=`/`>=`/`>` (spec §4.E) — same algorithm as
// compare, per spec's text, which gives them one shared paragraph.
func (c *Checker) checkOrder(x *ast.Order) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	if !c.arithOrRelated(x.Pos(), lt, rt) {
		return false
	}
	x.SetType(types.Builtin("Bool"))
	return true
}

// checkIdentity types `is`/`isnt` (spec §4.E): the two sides' types
// need only be related, either direction; the result is Bool.
func (c *Checker) checkIdentity(x *ast.Identity) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	if typeSuper(lt, rt) == nil {
		return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "left and right side must have related types")
	}
	x.SetType(types.Builtin("Bool"))
	return true
}

// checkLogical types `and`/`or`/`xor` (spec §4.E): both sides must be
// bool-or-integer and related; the result is their join. The bitwise
// vs. logical reading is resolved entirely by the operand types, never
// by the operator itself.
func (c *Checker) checkLogical(x *ast.Logical) bool {
	lt, rt := x.Left.Type(), x.Right.Type()
	if lt == nil || rt == nil {
		return false
	}
	j := typeSuper(boolOrIntProbe(lt), boolOrIntProbe(rt))
	if j == nil {
		return c.sink.Error(x.Pos(), diagnostics.ErrOperator, "left and right side must have related integer or boolean types")
	}
	x.SetType(j)
	return true
}

// checkNot types unary `not` (spec §4.E): the operand must be Bool or
// an integer type; the result is the operand's own type.
func (c *Checker) checkNot(x *ast.Not) bool {
	t := x.X.Type()
	if t == nil {
		return false
	}
	if !c.boolOrInt(x.X.Pos(), t) {
		return false
	}
	x.SetType(t)
	return true
}

func arithmeticProbe(t types.Type) types.Type {
	if isArithmetic(t) {
		return t
	}
	return nil
}

func boolOrIntProbe(t types.Type) types.Type {
	if isBool(t) || isInteger(t) {
		return t
	}
	return nil
}
