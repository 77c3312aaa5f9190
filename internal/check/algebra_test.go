package check

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

func TestCheckArithmeticJoinsRelatedOperands(t *testing.T) {
	x := &ast.Arithmetic{Base: ast.Base{Position: pos(1)}, Op: ast.Add, Left: intLit(1), Right: intLit(1)}
	ty, diags := methodFixture(x, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	n, ok := ty.(types.Nominal)
	if !ok || n.Name != "IntLiteral" {
		t.Errorf("x+y on two IntLiterals should join to IntLiteral, got %v", ty)
	}
}

func TestCheckArithmeticRejectsUnrelatedOperands(t *testing.T) {
	left := intLit(1)
	right := &ast.StringLiteral{Base: ast.Base{Position: pos(1)}, Value: "s"}
	right.SetType(types.Builtin("String"))
	x := &ast.Arithmetic{Base: ast.Base{Position: pos(1)}, Op: ast.Add, Left: left, Right: right}
	_, diags := methodFixture(x, nil)
	if !hasCode(diags, diagnostics.ErrOperator) {
		t.Fatalf("expected an ErrOperator diagnostic, got %v", diags)
	}
}

func TestCheckMinusUnaryRequiresArithmetic(t *testing.T) {
	b := boolLit(1, true)
	x := &ast.Minus{Base: ast.Base{Position: pos(1)}, Left: b}
	_, diags := methodFixture(x, nil)
	if !hasCode(diags, diagnostics.ErrOperator) {
		t.Fatalf("unary minus on Bool should fail, got %v", diags)
	}
}

func TestCheckShiftRequiresBothSidesInteger(t *testing.T) {
	x := &ast.Shift{Base: ast.Base{Position: pos(1)}, Op: ast.Shl, Left: intLit(1), Right: intLit(1)}
	ty, diags := methodFixture(x, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n, ok := ty.(types.Nominal); !ok || n.Name != "IntLiteral" {
		t.Errorf("shift result should be the left side's type, got %v", ty)
	}
}

func TestCheckCompareFallsBackToRightSubtypeOfLeft(t *testing.T) {
	x := &ast.Compare{Base: ast.Base{Position: pos(1)}, Op: ast.Eq, Left: boolLit(1, true), Right: boolLit(1, false)}
	ty, diags := methodFixture(x, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n, ok := ty.(types.Nominal); !ok || n.Name != "Bool" {
		t.Errorf("compare should always type as Bool, got %v", ty)
	}
}

func TestCheckOrderRejectsUnrelatedNonArithmeticOperands(t *testing.T) {
	x := &ast.Order{
		Base: ast.Base{Position: pos(1)}, Op: ast.Lt,
		Left:  boolLit(1, true),
		Right: intLit(1),
	}
	_, diags := methodFixture(x, nil)
	if !hasCode(diags, diagnostics.ErrOperator) {
		t.Fatalf("ordering Bool against IntLiteral should fail, got %v", diags)
	}
}

func TestCheckLogicalJoinsBoolOrInt(t *testing.T) {
	x := &ast.Logical{Base: ast.Base{Position: pos(1)}, Op: ast.And, Left: boolLit(1, true), Right: boolLit(1, false)}
	ty, diags := methodFixture(x, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n, ok := ty.(types.Nominal); !ok || n.Name != "Bool" {
		t.Errorf("and of two Bools should join to Bool, got %v", ty)
	}
}

func TestCheckNotRejectsNonBoolNonInt(t *testing.T) {
	s := &ast.StringLiteral{Base: ast.Base{Position: pos(1)}, Value: "s"}
	s.SetType(types.Builtin("String"))
	x := &ast.Not{Base: ast.Base{Position: pos(1)}, X: s}
	_, diags := methodFixture(x, nil)
	if !hasCode(diags, diagnostics.ErrOperator) {
		t.Fatalf("not on a String should fail, got %v", diags)
	}
}

func TestTypeUnionCollapsesWhenOneSideSubsumes(t *testing.T) {
	intLitT := types.Nominal{Name: "IntLiteral"}
	arithmetic := types.Builtin("Arithmetic")
	got := typeUnion(intLitT, arithmetic)
	n, ok := got.(types.Nominal)
	if !ok || n.Name != "Arithmetic" {
		t.Errorf("typeUnion should collapse to the supertype when one subsumes the other, got %v", got)
	}
}

func TestTypeUnionBuildsExplicitUnionOtherwise(t *testing.T) {
	a := types.Builtin("Bool")
	b := types.Builtin("String")
	got, ok := typeUnion(a, b).(types.Union)
	if !ok {
		t.Fatalf("typeUnion of unrelated types should build a Union, got %T", got)
	}
	left, lok := got.Left.(types.Nominal)
	right, rok := got.Right.(types.Nominal)
	if !lok || !rok || left.Name != "Bool" || right.Name != "String" {
		t.Errorf("typeUnion(a, b) should preserve operand order, got %v", got)
	}
}

func TestTupleIndexOutOfBounds(t *testing.T) {
	tup := types.Tuple{Head: types.Builtin("Bool"), Tail: types.Builtin("String")}
	if _, ok := tupleIndex(tup, 2); ok {
		t.Errorf("index 2 of a 2-tuple should be out of bounds")
	}
	if _, ok := tupleIndex(tup, -1); ok {
		t.Errorf("a negative index should be out of bounds")
	}
	el, ok := tupleIndex(tup, 1)
	n, nok := el.(types.Nominal)
	if !ok || !nok || n.Name != "String" {
		t.Errorf("tupleIndex(tup, 1) = %v, %v, want String, true", el, ok)
	}
}

func TestContainsErrorAndStripError(t *testing.T) {
	plain := types.Builtin("Bool")
	if containsError(plain) {
		t.Errorf("a plain Bool should not contain Error")
	}
	withErr := types.Union{Left: plain, Right: types.Error}
	if !containsError(withErr) {
		t.Errorf("a Union with Error on the right should contain Error")
	}
	if stripped, ok := stripError(withErr).(types.Nominal); !ok || stripped.Name != "Bool" {
		t.Errorf("stripError should remove the Error branch, got %v", stripError(withErr))
	}
	if stripped, ok := stripError(plain).(types.Nominal); !ok || stripped.Name != "Bool" {
		t.Errorf("stripError on a non-Union should be a no-op, got %v", stripError(plain))
	}
}

func TestCheckDotIndexRejectsNonTuple(t *testing.T) {
	left := intLit(1)
	x := &ast.DotIndex{Base: ast.Base{Position: pos(1)}, Left: left, Index: 0}
	_, diags := methodFixture(x, nil)
	if !hasCode(diags, diagnostics.ErrShape) {
		t.Fatalf("indexing a non-tuple should report ErrShape, got %v", diags)
	}
}

func TestCheckDotIndexResolvesTuplePosition(t *testing.T) {
	tupleLit := &ast.TupleExpr{
		Base:     ast.Base{Position: pos(1)},
		Elements: []ast.Expr{intLit(1), boolLit(1, true)},
	}
	x := &ast.DotIndex{Base: ast.Base{Position: pos(2)}, Left: tupleLit, Index: 1}
	ty, diags := methodFixture(x, nil)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n, ok := ty.(types.Nominal); !ok || n.Name != "Bool" {
		t.Errorf(".1 of (Int, Bool) should be Bool, got %v", ty)
	}
}

func TestCheckThisOutsideTypeDeclFails(t *testing.T) {
	sink := diagnostics.NewSink()
	x := &ast.This{Base: ast.Base{Position: pos(1)}}
	c := New(sink)
	c.parents = ast.BuildParents(x)
	if c.checkThis(x) {
		t.Errorf("'this' outside a type declaration should fail")
	}
	if !hasCode(sink.Diagnostics(), diagnostics.ErrShape) {
		t.Errorf("expected ErrShape, got %v", sink.Diagnostics())
	}
}

func TestCheckThisAttachesEnclosingTypeUnderReceiverCap(t *testing.T) {
	this := &ast.This{Base: ast.Base{Position: pos(2)}}
	m := &ast.MethodDecl{
		Base: ast.Base{Position: pos(1)}, MethodKind: types.Fun, ID: "m",
		Cap: capability.Iso, Body: this,
	}
	td := &ast.TypeDecl{Base: ast.Base{Position: pos(1)}, Name: "T", Kind: ast.ClassKind, Methods: []*ast.MethodDecl{m}}
	prog := &ast.Program{Base: ast.Base{Position: pos(1)}, Types: []*ast.TypeDecl{td}}

	sink := diagnostics.NewSink()
	New(sink).Check(prog, symbols.NewScope())

	ty, ok := this.Type().(types.Nominal)
	if !ok {
		t.Fatalf("this should type as a Nominal, got %v", this.Type())
	}
	if ty.Name != "T" || ty.Cap != capability.Iso {
		t.Errorf("this should carry the enclosing type's name and the method's receiver cap, got %v", ty)
	}
}
