package check

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

func TestCheckFieldOrParamNeedsTypeOrInit(t *testing.T) {
	f := &ast.FieldOrParam{Base: ast.Base{Position: pos(1)}, Kind: ast.FVarDecl, Name: "x"}
	sink := diagnostics.NewSink()
	c := New(sink)
	c.parents = ast.BuildParents(f)
	if c.checkFieldOrParam(f, symbols.NewScope()) {
		t.Errorf("a field with neither a type nor an initializer should fail")
	}
	if !hasCode(sink.Diagnostics(), diagnostics.ErrShape) {
		t.Errorf("expected ErrShape, got %v", sink.Diagnostics())
	}
}

func TestCheckFieldOrParamInitOnlyAttachesInitType(t *testing.T) {
	f := &ast.FieldOrParam{Base: ast.Base{Position: pos(1)}, Kind: ast.FVarDecl, Name: "x", Init: intLit(1)}
	sink := diagnostics.NewSink()
	c := New(sink)
	c.parents = ast.BuildParents(f)
	if !c.checkFieldOrParam(f, symbols.NewScope()) {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	if n, ok := f.Type().(types.Nominal); !ok || n.Name != "IntLiteral" {
		t.Errorf("with no declared type, the field should attach its initializer's type, got %v", f.Type())
	}
}

func TestCheckFieldOrParamDeclaredTypeWinsOverInit(t *testing.T) {
	declared := types.Builtin("Arithmetic")
	f := &ast.FieldOrParam{Base: ast.Base{Position: pos(1)}, Kind: ast.FVarDecl, Name: "x", TypeAnn: declared, Init: intLit(1)}
	sink := diagnostics.NewSink()
	c := New(sink)
	c.parents = ast.BuildParents(f)
	if !c.checkFieldOrParam(f, symbols.NewScope()) {
		t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
	}
	if n, ok := f.Type().(types.Nominal); !ok || n.Name != "Arithmetic" {
		t.Errorf("the field should attach the declared type, not the initializer's, got %v", f.Type())
	}
}

func TestCheckFieldOrParamRejectsInitNotSubtypeOfDeclared(t *testing.T) {
	declared := types.Builtin("String")
	f := &ast.FieldOrParam{Base: ast.Base{Position: pos(1)}, Kind: ast.FVarDecl, Name: "x", TypeAnn: declared, Init: intLit(1)}
	sink := diagnostics.NewSink()
	c := New(sink)
	c.parents = ast.BuildParents(f)
	if c.checkFieldOrParam(f, symbols.NewScope()) {
		t.Errorf("an IntLiteral initializer is not a subtype of String")
	}
	if !hasCode(sink.Diagnostics(), diagnostics.ErrSubtype) {
		t.Errorf("expected ErrSubtype, got %v", sink.Diagnostics())
	}
}

func TestCheckMethodDeclAbstractMemberOfTraitSucceeds(t *testing.T) {
	m := &ast.MethodDecl{Base: ast.Base{Position: pos(1)}, MethodKind: types.Fun, ID: "m"}
	td := &ast.TypeDecl{Base: ast.Base{Position: pos(1)}, Name: "T", Kind: ast.TraitKind, Methods: []*ast.MethodDecl{m}}
	sink := diagnostics.NewSink()
	New(sink).Check(&ast.Program{Types: []*ast.TypeDecl{td}}, symbols.NewScope())
	if len(sink.Diagnostics()) != 0 {
		t.Errorf("an abstract member of a trait should not report a diagnostic, got %v", sink.Diagnostics())
	}
}

func TestCheckMethodDeclAbstractMemberOfClassSucceeds(t *testing.T) {
	_, diags := methodFixtureAbstract(ast.ClassKind)
	if len(diags) != 0 {
		t.Fatalf("an abstract member of a class should not report a diagnostic, got %v", diags)
	}
}

func methodFixtureAbstract(kind ast.TypeDeclKind) (types.Type, []diagnostics.Diagnostic) {
	m := &ast.MethodDecl{Base: ast.Base{Position: pos(1)}, MethodKind: types.Fun, ID: "m"}
	td := &ast.TypeDecl{Base: ast.Base{Position: pos(1)}, Name: "T", Kind: kind, Methods: []*ast.MethodDecl{m}}
	sink := diagnostics.NewSink()
	New(sink).Check(&ast.Program{Types: []*ast.TypeDecl{td}}, symbols.NewScope())
	return nil, sink.Diagnostics()
}

func TestCheckMethodDeclBodyAlwaysErrorsFails(t *testing.T) {
	_, diags := methodFixture(&ast.ErrorExpr{Base: ast.Base{Position: pos(1)}}, nil)
	if !hasCode(diags, diagnostics.ErrPartiality) {
		t.Fatalf("a body that always errors should report ErrPartiality, got %v", diags)
	}
}

func TestCheckMethodDeclPartialBodyMustBeAbleToFail(t *testing.T) {
	_, diags := methodFixture(intLit(1), func(m *ast.MethodDecl) { m.Partial = true })
	if !hasCode(diags, diagnostics.ErrPartiality) {
		t.Fatalf("a partial method whose body can never fail should report ErrPartiality, got %v", diags)
	}
}

func TestCheckMethodDeclNonPartialBodyMustNotFail(t *testing.T) {
	// The ErrorExpr must be last in its own Seq to satisfy the
	// sequence-position rule; nesting it gives the outer Seq a body
	// that can fail (Union{IntLiteral, Error}) without always failing.
	inner := &ast.Seq{Base: ast.Base{Position: pos(1)}, Elements: []ast.Expr{
		intLit(1), &ast.ErrorExpr{Base: ast.Base{Position: pos(1)}},
	}}
	outer := &ast.Seq{Base: ast.Base{Position: pos(1)}, Elements: []ast.Expr{inner, intLit(2)}}
	_, diags := methodFixture(outer, nil)
	if !hasCode(diags, diagnostics.ErrPartiality) {
		t.Fatalf("a non-partial method whose body can fail should report ErrPartiality, got %v", diags)
	}
}

func TestCheckMethodDeclPartialTraitMemberNeedNotFail(t *testing.T) {
	m := &ast.MethodDecl{
		Base: ast.Base{Position: pos(1)}, MethodKind: types.Fun, ID: "m",
		Partial: true, Body: intLit(1),
	}
	td := &ast.TypeDecl{Base: ast.Base{Position: pos(1)}, Name: "T", Kind: ast.TraitKind, Methods: []*ast.MethodDecl{m}}
	sink := diagnostics.NewSink()
	New(sink).Check(&ast.Program{Types: []*ast.TypeDecl{td}}, symbols.NewScope())
	if len(sink.Diagnostics()) != 0 {
		t.Errorf("a trait relaxes the partial-must-fail rule, got %v", sink.Diagnostics())
	}
}

func TestCheckMethodDeclResultMustEqualExactlyOutsideTrait(t *testing.T) {
	// IntLiteral + IntLiteral joins back to IntLiteral val, which is an
	// eqtype of the declared result, so rule 4's exact-equality check
	// outside a trait passes.
	body := &ast.Arithmetic{
		Base: ast.Base{Position: pos(1)}, Op: ast.Add,
		Left: intLit(1), Right: intLit(1),
	}
	_, diags := methodFixture(body, func(m *ast.MethodDecl) {
		m.Result = types.Nominal{Name: "IntLiteral", Cap: capability.Val}
	})
	if len(diags) != 0 {
		t.Fatalf("IntLiteral+IntLiteral joins back to IntLiteral so this should succeed, got %v", diags)
	}
}

func TestCheckMethodDeclPartialResultUnionsWithError(t *testing.T) {
	inner := &ast.Seq{Base: ast.Base{Position: pos(1)}, Elements: []ast.Expr{
		intLit(1), &ast.ErrorExpr{Base: ast.Base{Position: pos(1)}},
	}}
	outer := &ast.Seq{Base: ast.Base{Position: pos(1)}, Elements: []ast.Expr{inner, intLit(2)}}
	_, diags := methodFixture(outer, func(m *ast.MethodDecl) {
		m.Partial = true
		m.Result = types.Nominal{Name: "IntLiteral", Cap: capability.Val}
	})
	if len(diags) != 0 {
		t.Fatalf("a partial method's declared result should be checked against body|Error, got %v", diags)
	}
}
