package check

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/types"
)

// methodSymbolKind maps a types.MethodKind to the symbol kind a
// reference to that method resolves as.
func methodSymbolKind(k types.MethodKind) symbols.Kind {
	switch k {
	case types.New:
		return symbols.NewMethod
	case types.Be:
		return symbols.BeMethod
	default:
		return symbols.FunMethod
	}
}

// methodSignature builds the "function type" view of a method
// declaration (spec §4.B): capability, id, type parameters, parameter
// types in declaration order, result (None when the declaration omits
// one), and the throws flag — the body is dropped entirely, since a
// signature is what a call site checks against, never how the method
// is implemented.
func methodSignature(m *ast.MethodDecl) types.MethodSig {
	paramTypes := make([]types.Type, len(m.Params))
	for i, p := range m.Params {
		paramTypes[i] = p.TypeAnn
	}
	result := m.Result
	if result == nil {
		result = types.None
	}
	return types.MethodSig{
		Kind:       m.MethodKind,
		Cap:        m.Cap,
		ID:         m.ID,
		TypeParams: append([]string(nil), m.TypeParams...),
		Types:      paramTypes,
		Result:     result,
		Throws:     m.Partial,
	}
}
