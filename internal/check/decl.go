package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/subtype"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkTypeDecl checks every field initializer and method body of a
// type declaration (spec §4.H). Fields and methods are both defined in
// the type's scope before any of them is checked, so methods can call
// each other and a field initializer can reference a sibling field
// regardless of declaration order — though a forward-referencing
// initializer still trips the ordinary def-before-use rule (spec
// §4.D), since initializers still run top to bottom.
func (c *Checker) checkTypeDecl(td *ast.TypeDecl, outer *symbols.Scope) {
	scope := outer.NewChild()

	for _, f := range td.Fields {
		kind := symbols.FVar
		if f.Kind == ast.FLetDecl {
			kind = symbols.FLet
		}
		scope.Define(f.Name, &symbols.Symbol{
			Name: f.Name, Kind: kind, DefPos: f.Pos(), DeclType: f.TypeAnn,
		})
	}
	for _, m := range td.Methods {
		scope.Define(m.ID, &symbols.Symbol{
			Name: m.ID, Kind: methodSymbolKind(m.MethodKind), DefPos: m.Pos(),
			DeclType: methodSignature(m),
		})
	}

	for _, f := range td.Fields {
		c.checkFieldOrParam(f, scope)
	}
	for _, m := range td.Methods {
		c.checkMethodDecl(m, td, scope)
	}
}

// checkFieldOrParam types an FVAR/FLET/PARAM declaration (spec §4.H):
//  1. no type and no initializer is an error;
//  2. an initializer with no declared type attaches the initializer's type;
//  3. both present requires the initializer be a subtype of the declared
//     type, and attaches the declared type (not the initializer's);
//  4. a declared type with no initializer simply attaches that type.
func (c *Checker) checkFieldOrParam(f *ast.FieldOrParam, scope *symbols.Scope) bool {
	if f.TypeAnn == nil && f.Init == nil {
		return c.sink.Error(f.Pos(), diagnostics.ErrShape, "field/param needs a type or an initialiser")
	}
	if f.Init == nil {
		f.SetType(f.TypeAnn)
		return true
	}
	if !c.checkExpr(f.Init, scope) {
		return false
	}
	it := f.Init.Type()
	if it == nil {
		return false
	}
	if f.TypeAnn == nil {
		f.SetType(it)
		return true
	}
	if !subtype.IsSubtype(it, f.TypeAnn) {
		return c.sink.Error(f.Pos(), diagnostics.ErrSubtype, "field/param initialiser is not a subtype of the field/param type")
	}
	f.SetType(f.TypeAnn)
	return true
}

// lastChildOf returns the node spec §4.H rule 1's secondary diagnostic
// points at: a Seq body's last element, or the body itself when it
// isn't a Seq.
func lastChildOf(body ast.Expr) ast.Expr {
	if seq, ok := body.(*ast.Seq); ok && len(seq.Elements) > 0 {
		return seq.Elements[len(seq.Elements)-1]
	}
	return body
}

// checkMethodDecl checks one NEW/BE/FUN declaration's body (spec
// §4.H). An abstract member (nil Body) succeeds outright, in a trait
// or any other type declaration. Otherwise,
// in order:
//  1. a body that types as exactly Error always fails;
//  2. a partial method's body must be able to fail (unless the
//     enclosing type is a trait);
//  3. a non-partial method's body must not be able to fail;
//  4. when a result is declared, the body (widened by Error when
//     partial) must be a subtype of it, and — outside a trait — the
//     body with Error stripped must equal the declared result exactly.
func (c *Checker) checkMethodDecl(m *ast.MethodDecl, td *ast.TypeDecl, typeScope *symbols.Scope) bool {
	if m.Body == nil {
		return true
	}

	scope := typeScope.NewChild()
	for _, p := range m.Params {
		scope.Define(p.Name, &symbols.Symbol{
			Name: p.Name, Kind: symbols.Param, DefPos: p.Pos(), DeclType: p.TypeAnn,
		})
	}
	for _, p := range m.Params {
		c.checkFieldOrParam(p, scope)
	}

	if !c.checkExpr(m.Body, scope) {
		return false
	}
	bt := m.Body.Type()
	if bt == nil {
		return false
	}

	if types.IsError(bt) {
		last := lastChildOf(m.Body)
		return c.sink.ErrorWithSecondary(m.Pos(), diagnostics.ErrPartiality,
			"function body always results in an error",
			last.Pos(), "this expression always errors")
	}

	canFail := containsError(bt)
	if m.Partial {
		if !td.IsTrait() && !canFail {
			return c.sink.Error(m.Pos(), diagnostics.ErrPartiality, "function body is not partial but the function is")
		}
	} else if canFail {
		return c.sink.Error(m.Pos(), diagnostics.ErrPartiality, "function body is partial but the function is not")
	}

	if m.Result == nil {
		return true
	}

	want := m.Result
	if m.Partial {
		want = types.Union{Left: m.Result, Right: types.Error}
	}
	if !subtype.IsSubtype(bt, want) {
		return c.sink.Error(m.Pos(), diagnostics.ErrSubtype,
			"'%s' body type '%s' is not a subtype of declared result '%s'", m.ID, bt, want)
	}
	if !td.IsTrait() {
		if !subtype.IsEqType(stripError(bt), m.Result) {
			return c.sink.Error(m.Pos(), diagnostics.ErrSubtype, "function body is more specific than the result type")
		}
	}
	return true
}
