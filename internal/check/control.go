package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/subtype"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkIf types an if/then/else expression (spec §4.G): the condition
// must be Bool; the result is the union of the branches (their join
// when one subsumes the other), or of the then branch and None when
// there is no else branch.
func (c *Checker) checkIf(x *ast.If) bool {
	ct := x.Cond.Type()
	if ct == nil {
		return false
	}
	if !isBool(ct) {
		return c.sink.Error(x.Cond.Pos(), diagnostics.ErrOperator, "if condition must be Bool")
	}
	tt := x.Then.Type()
	if tt == nil {
		return false
	}
	if x.Else == nil {
		x.SetType(typeUnion(tt, types.None))
		return true
	}
	et := x.Else.Type()
	if et == nil {
		return false
	}
	x.SetType(typeUnion(tt, et))
	return true
}

// checkWhile types a while-loop (spec §4.G): condition must be Bool;
// result is None.
func (c *Checker) checkWhile(x *ast.While) bool {
	ct := x.Cond.Type()
	if ct == nil {
		return false
	}
	if !isBool(ct) {
		return c.sink.Error(x.Cond.Pos(), diagnostics.ErrOperator, "while condition must be Bool")
	}
	if x.Body.Type() == nil {
		return false
	}
	x.SetType(types.None)
	return true
}

// checkRepeat types a repeat-loop (spec §4.G): condition (checked
// after the body) must be Bool; result is None.
func (c *Checker) checkRepeat(x *ast.Repeat) bool {
	if x.Body.Type() == nil {
		return false
	}
	ct := x.Cond.Type()
	if ct == nil {
		return false
	}
	if !isBool(ct) {
		return c.sink.Error(x.Cond.Pos(), diagnostics.ErrOperator, "repeat condition must be Bool")
	}
	x.SetType(types.None)
	return true
}

// requireLastInSequence enforces spec §4.G's sequence-position rule,
// shared by continue, break, return and error: each must be the final
// element of its immediately containing Seq. An expression with no
// containing Seq (it is the entire body) trivially satisfies this.
func (c *Checker) requireLastInSequence(n ast.Expr, what string) bool {
	parent, ok := ast.ParentOf(c.parents, n)
	if !ok {
		return true
	}
	seq, ok := parent.(*ast.Seq)
	if !ok {
		return true
	}
	idx := -1
	for i, el := range seq.Elements {
		if el == n {
			idx = i
			break
		}
	}
	if idx < 0 || idx == len(seq.Elements)-1 {
		return true
	}
	return c.sink.ErrorWithSecondary(n.Pos(), diagnostics.ErrSequence,
		"'"+what+"' must be the last expression in a sequence",
		seq.Elements[idx+1].Pos(), "unreachable code follows here")
}

// checkContinue types `continue` (spec §4.G): legal only inside a
// loop, and only as the last expression of its sequence.
func (c *Checker) checkContinue(x *ast.Continue) bool {
	if _, ok := c.enclosingLoop(x); !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "'continue' must be in a loop")
	}
	if !c.requireLastInSequence(x, "continue") {
		return false
	}
	x.SetType(types.None)
	return true
}

// checkBreak types `break` (spec §4.G): legal only inside a loop, and
// only as the last expression of its sequence.
func (c *Checker) checkBreak(x *ast.Break) bool {
	if _, ok := c.enclosingLoop(x); !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "'break' must be in a loop")
	}
	if !c.requireLastInSequence(x, "break") {
		return false
	}
	x.SetType(types.None)
	return true
}

// checkReturn types `return` (spec §4.G): legal only inside a method
// body and only as the last expression of its sequence; what a
// returned value must be a subtype of depends on the enclosing
// method's kind — a NEW forbids return outright, a BE requires None,
// a FUN requires its declared result.
func (c *Checker) checkReturn(x *ast.Return) bool {
	m, ok := c.enclosingMethodBody(x)
	if !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "'return' must be inside a method body")
	}
	if m.MethodKind == types.New {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "cannot return in a constructor")
	}
	if !c.requireLastInSequence(x, "return") {
		return false
	}

	var vt types.Type = types.None
	if x.Value != nil {
		vt = x.Value.Type()
		if vt == nil {
			return false
		}
	}

	if m.MethodKind == types.Be {
		if !subtype.IsSubtype(vt, types.None) {
			return c.sink.Error(x.Pos(), diagnostics.ErrSubtype, "body of a return in a behaviour must have type None")
		}
		x.SetType(types.None)
		return true
	}

	want := m.Result
	if want == nil {
		want = types.None
	}
	if !subtype.IsSubtype(vt, want) {
		return c.sink.Error(x.Pos(), diagnostics.ErrSubtype,
			"returned type '%s' is not a subtype of declared result '%s'", vt, want)
	}
	x.SetType(types.None)
	return true
}
