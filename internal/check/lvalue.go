package check

import "github.com/lumen-lang/lumenc/internal/ast"

// isLValue reports whether e can appear on the left of an assignment
// (spec §4.C): a bare reference, a dot access by index or name, or a
// tuple every one of whose elements is itself an l-value.
func isLValue(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Reference:
		return true
	case *ast.DotIndex:
		return true
	case *ast.DotName:
		return true
	case *ast.TupleExpr:
		for _, el := range x.Elements {
			if !isLValue(el) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
