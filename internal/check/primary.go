package check

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// checkLiteral attaches a nominal named after the literal's own kind
// (spec §4.D): literal nodes stay polymorphic until something narrows
// them, so IntLiteral is its own type, not "Integer" — the builtin
// subtype table (internal/types) is what lets the arithmetic family
// recognize one as "an Arithmetic" anyway.
func (c *Checker) checkLiteral(e ast.Expr) bool {
	switch e.(type) {
	case *ast.IntLiteral:
		e.SetType(types.Nominal{Name: "IntLiteral", Cap: capability.Val})
	case *ast.FloatLiteral:
		e.SetType(types.Nominal{Name: "FloatLiteral", Cap: capability.Val})
	case *ast.StringLiteral:
		e.SetType(types.Nominal{Name: "String", Cap: capability.Val})
	case *ast.BoolLiteral:
		e.SetType(types.Nominal{Name: "Bool", Cap: capability.Val})
	default:
		return false
	}
	return true
}

// checkThis types a `this` expression as the enclosing type applied to
// its own type parameters, under the enclosing method's declared
// receiver capability (spec §4.D).
func (c *Checker) checkThis(x *ast.This) bool {
	td, ok := c.enclosingTypeDecl(x)
	if !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "'this' used outside of a type declaration")
	}
	recvCap := capability.Ref
	if m, ok := c.enclosingMethodBody(x); ok {
		recvCap = capability.ForReceiver(m.Cap)
	}
	args := make([]types.Type, len(td.TypeParams))
	for i, p := range td.TypeParams {
		args[i] = types.Nominal{Name: p, Cap: capability.Tag}
	}
	x.SetType(types.Nominal{Name: td.Name, TypeArgs: args, Cap: recvCap})
	return true
}

// checkReference resolves a bare identifier against scope (spec
// §4.D). A package name is only legal as the left of a dot; a
// field/parameter/local reference used earlier in the source than its
// own declaration is the def-before-use violation spec §4.D names.
func (c *Checker) checkReference(x *ast.Reference, scope *symbols.Scope) bool {
	sym, ok := scope.Lookup(x.Name)
	if !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrScope, "can't find declaration of '%s'", x.Name)
	}

	switch sym.Kind {
	case symbols.Package:
		parent, _ := ast.ParentOf(c.parents, x)
		if _, isDot := parent.(*ast.DotName); !isDot {
			return c.sink.Error(x.Pos(), diagnostics.ErrScope,
				"a package can only appear as a prefix to a type")
		}
		return true

	case symbols.FVar, symbols.FLet, symbols.Param, symbols.IDSeq:
		if x.Pos().Less(sym.DefPos) {
			return c.sink.ErrorWithSecondary(x.Pos(), diagnostics.ErrScope,
				fmt.Sprintf("declaration of '%s' appears after use", x.Name),
				sym.DefPos, fmt.Sprintf("declaration of '%s' appears here", x.Name))
		}
		if sym.Kind == symbols.IDSeq {
			// Open Question (spec §9): local type inference is not yet
			// implemented. Def-before-use is still enforced above.
			return c.sink.Error(x.Pos(), diagnostics.ErrUnimplemented,
				"reference to local '%s' is not implemented", x.Name)
		}
		x.SetType(sym.DeclType)
		return true

	default:
		x.SetType(sym.DeclType)
		return true
	}
}

// checkDotIndex resolves `left.N`, a tuple-position access (spec
// §4.D, via the §4.A tuple_index helper).
func (c *Checker) checkDotIndex(x *ast.DotIndex) bool {
	lt := x.Left.Type()
	if lt == nil {
		return false
	}
	if _, ok := lt.(types.Tuple); !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "member by position can only be used on a tuple")
	}
	t, ok := tupleIndex(lt, x.Index)
	if !ok {
		return c.sink.Error(x.Pos(), diagnostics.ErrShape, "tuple index is out of bounds")
	}
	x.SetType(t)
	return true
}

// checkDotName resolves `left.name`: a package-qualified type lookup
// when left names a package, field/method access otherwise (stubbed —
// spec §4.D marks member access on a typed left out of scope for this
// revision).
func (c *Checker) checkDotName(x *ast.DotName, scope *symbols.Scope) bool {
	if ref, ok := x.Left.(*ast.Reference); ok {
		if sym, ok := scope.Lookup(ref.Name); ok && sym.Kind == symbols.Package {
			member, ok := sym.Exports[x.Name]
			if !ok {
				return c.sink.Error(x.Pos(), diagnostics.ErrScope,
					"can't find type '%s' in package '%s'", x.Name, ref.Name)
			}
			x.SetType(types.Qualified(ref.Name, member.Name))
			return true
		}
	}
	if x.Left.Type() == nil {
		return false
	}
	return c.sink.Error(x.Pos(), diagnostics.ErrUnimplemented,
		"member access on '%s' is not implemented", x.Left.Type())
}
