package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

// pos builds a synthetic (line, column) position for a test fixture;
// line order matters for def-before-use tests, column never does.
func pos(line int) token.Position { return token.Position{Line: line, Column: 1} }

// intLit, boolLit build already-typed literal leaves so a test can
// build an expression tree directly in the shape checkExpr's
// post-order walk expects without running a full literal pass first.
func intLit(line int) *ast.IntLiteral {
	n := &ast.IntLiteral{Base: ast.Base{Position: pos(line)}, Value: 1}
	n.SetType(types.Nominal{Name: "IntLiteral"})
	return n
}

func boolLit(line int, v bool) *ast.BoolLiteral {
	n := &ast.BoolLiteral{Base: ast.Base{Position: pos(line)}, Value: v}
	n.SetType(types.Builtin("Bool"))
	return n
}

// methodFixture wraps body in a single FUN method of a single class
// declaration, runs the checker over it, and returns the body's
// synthesized type plus every diagnostic the run produced. configure,
// if given, adjusts the method (Result, Partial, Cap, Params, ...)
// before the run.
func methodFixture(body ast.Expr, configure func(*ast.MethodDecl)) (types.Type, []diagnostics.Diagnostic) {
	m := &ast.MethodDecl{
		Base:       ast.Base{Position: pos(1)},
		MethodKind: types.Fun,
		ID:         "m",
		Body:       body,
	}
	if configure != nil {
		configure(m)
	}
	td := &ast.TypeDecl{
		Base:    ast.Base{Position: pos(1)},
		Name:    "T",
		Kind:    ast.ClassKind,
		Methods: []*ast.MethodDecl{m},
	}
	prog := &ast.Program{Base: ast.Base{Position: pos(1)}, Types: []*ast.TypeDecl{td}}

	sink := diagnostics.NewSink()
	New(sink).Check(prog, symbols.NewScope())
	return body.Type(), sink.Diagnostics()
}

// hasCode reports whether diags contains one diagnostic of code code.
func hasCode(diags []diagnostics.Diagnostic, code diagnostics.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}
