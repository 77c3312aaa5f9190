package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkExpr is the dispatcher (spec §4.I): it first recursively types
// every child so each component function can simply read
// child.Type(), then dispatches on e's own concrete kind. A failing
// child does not stop its siblings from being visited — every subtree
// gets a chance to report its own diagnostic, matching spec §9's
// "never stop at the first error" rule.
func (c *Checker) checkExpr(e ast.Expr, scope *symbols.Scope) bool {
	if e == nil {
		return true
	}
	for _, child := range ast.Children(e) {
		if ce, ok := child.(ast.Expr); ok {
			c.checkExpr(ce, scope)
		}
	}

	switch x := e.(type) {
	case *ast.IntLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral:
		return c.checkLiteral(e)
	case *ast.This:
		return c.checkThis(x)
	case *ast.Reference:
		return c.checkReference(x, scope)
	case *ast.DotIndex:
		return c.checkDotIndex(x)
	case *ast.DotName:
		return c.checkDotName(x, scope)
	case *ast.Qualify:
		return c.sink.Error(x.Pos(), diagnostics.ErrUnimplemented, "qualified type construction is not implemented")

	case *ast.Arithmetic:
		return c.checkArithmetic(x)
	case *ast.Minus:
		return c.checkMinus(x)
	case *ast.Shift:
		return c.checkShift(x)
	case *ast.Compare:
		return c.checkCompare(x)
	case *ast.Order:
		return c.checkOrder(x)
	case *ast.Identity:
		return c.checkIdentity(x)
	case *ast.Logical:
		return c.checkLogical(x)
	case *ast.Not:
		return c.checkNot(x)

	case *ast.TupleExpr:
		return c.checkTuple(x)
	case *ast.Seq:
		return c.checkSeq(x)
	case *ast.Call:
		return c.checkCall(x)

	case *ast.If:
		return c.checkIf(x)
	case *ast.While:
		return c.checkWhile(x)
	case *ast.Repeat:
		return c.checkRepeat(x)
	case *ast.Continue:
		return c.checkContinue(x)
	case *ast.Break:
		return c.checkBreak(x)
	case *ast.Return:
		return c.checkReturn(x)
	case *ast.ErrorExpr:
		if !c.requireLastInSequence(x, "error") {
			return false
		}
		x.SetType(types.Error)
		return true

	case *ast.ArrayExpr, *ast.ObjectExpr, *ast.ForExpr, *ast.TryExpr, *ast.VarExpr, *ast.LetExpr, *ast.ConsumeExpr:
		return c.sink.Error(e.Pos(), diagnostics.ErrUnimplemented, "%T is not implemented", e)

	default:
		return c.sink.Error(e.Pos(), diagnostics.ErrUnimplemented, "unrecognized expression kind %T", e)
	}
}
