package check

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// referenceFixture wires x as a method body and pre-populates the
// global scope with whatever symbols the caller needs before running
// the full check pass.
func referenceFixture(x ast.Expr, define func(global *symbols.Scope)) (types.Type, []diagnostics.Diagnostic) {
	m := &ast.MethodDecl{Base: ast.Base{Position: pos(10)}, MethodKind: types.Fun, ID: "m", Body: x}
	td := &ast.TypeDecl{Base: ast.Base{Position: pos(1)}, Name: "T", Kind: ast.ClassKind, Methods: []*ast.MethodDecl{m}}
	prog := &ast.Program{Base: ast.Base{Position: pos(1)}, Types: []*ast.TypeDecl{td}}

	global := symbols.NewScope()
	if define != nil {
		define(global)
	}
	sink := diagnostics.NewSink()
	New(sink).Check(prog, global)
	return x.Type(), sink.Diagnostics()
}

func TestCheckReferenceUndeclaredFails(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "nope"}
	_, diags := referenceFixture(ref, nil)
	if !hasCode(diags, diagnostics.ErrScope) {
		t.Fatalf("an undeclared reference should report ErrScope, got %v", diags)
	}
}

func TestCheckReferenceResolvesDeclaredType(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "x"}
	ty, diags := referenceFixture(ref, func(g *symbols.Scope) {
		g.Define("x", &symbols.Symbol{Name: "x", Kind: symbols.FVar, DefPos: pos(1), DeclType: types.Builtin("Bool")})
	})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n, ok := ty.(types.Nominal); !ok || n.Name != "Bool" {
		t.Errorf("a reference should attach its symbol's declared type, got %v", ty)
	}
}

func TestCheckReferenceRejectsUseBeforeDeclaration(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "x"}
	_, diags := referenceFixture(ref, func(g *symbols.Scope) {
		g.Define("x", &symbols.Symbol{Name: "x", Kind: symbols.FVar, DefPos: pos(20), DeclType: types.Builtin("Bool")})
	})
	if !hasCode(diags, diagnostics.ErrScope) {
		t.Fatalf("a reference used before its own declaration should report ErrScope, got %v", diags)
	}
	for _, d := range diags {
		if d.Code == diagnostics.ErrScope && d.Secondary == nil {
			t.Errorf("the def-before-use diagnostic should carry a secondary location pointing at the declaration")
		}
	}
}

func TestCheckReferenceIDSeqIsUnimplemented(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "x"}
	_, diags := referenceFixture(ref, func(g *symbols.Scope) {
		g.Define("x", &symbols.Symbol{Name: "x", Kind: symbols.IDSeq, DefPos: pos(1)})
	})
	if !hasCode(diags, diagnostics.ErrUnimplemented) {
		t.Fatalf("a pattern-bound local reference should report ErrUnimplemented, got %v", diags)
	}
}

func TestCheckReferencePackageOnlyLegalAsDotPrefix(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "pkg"}
	_, diags := referenceFixture(ref, func(g *symbols.Scope) {
		g.Define("pkg", &symbols.Symbol{Name: "pkg", Kind: symbols.Package, DefPos: pos(1)})
	})
	if !hasCode(diags, diagnostics.ErrScope) {
		t.Fatalf("a bare package reference should report ErrScope, got %v", diags)
	}
}

func TestCheckReferencePackageAsDotPrefixSucceeds(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "pkg"}
	dot := &ast.DotName{Base: ast.Base{Position: pos(10)}, Left: ref, Name: "Widget"}
	_, diags := referenceFixture(dot, func(g *symbols.Scope) {
		g.Define("pkg", &symbols.Symbol{
			Name: "pkg", Kind: symbols.Package, DefPos: pos(1),
			Exports: map[string]*symbols.Symbol{"Widget": {Name: "Widget"}},
		})
	})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := dot.Type().(types.Nominal); !ok {
		t.Errorf("package.Type should resolve to a qualified nominal, got %v", dot.Type())
	}
}

func TestCheckDotNameUnknownPackageMemberFails(t *testing.T) {
	ref := &ast.Reference{Base: ast.Base{Position: pos(10)}, Name: "pkg"}
	dot := &ast.DotName{Base: ast.Base{Position: pos(10)}, Left: ref, Name: "Missing"}
	_, diags := referenceFixture(dot, func(g *symbols.Scope) {
		g.Define("pkg", &symbols.Symbol{Name: "pkg", Kind: symbols.Package, DefPos: pos(1), Exports: map[string]*symbols.Symbol{}})
	})
	if !hasCode(diags, diagnostics.ErrScope) {
		t.Fatalf("referencing an unexported package member should report ErrScope, got %v", diags)
	}
}

func TestCheckDotNameMemberAccessOnTypedLeftIsUnimplemented(t *testing.T) {
	dot := &ast.DotName{Base: ast.Base{Position: pos(10)}, Left: intLit(9), Name: "field"}
	_, diags := referenceFixture(dot, nil)
	if !hasCode(diags, diagnostics.ErrUnimplemented) {
		t.Fatalf("member access on a typed, non-package left should report ErrUnimplemented, got %v", diags)
	}
}
