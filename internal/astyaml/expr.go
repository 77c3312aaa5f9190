package astyaml

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/ast"
)

// decodeExpr decodes one expression node (spec.md §4's node kinds,
// §4.I's dispatcher table, and the explicit "not implemented" stub
// kinds of §9) by its "kind" tag.
func (d *decoder) decodeExpr(m map[string]any) (ast.Expr, error) {
	pos := d.nextPos(m)
	base := ast.Base{Position: pos}
	kind := strField(m, "kind")

	switch kind {
	case "IntLiteral":
		return &ast.IntLiteral{Base: base, Value: int64(intOrZero(m, "value"))}, nil
	case "FloatLiteral":
		return &ast.FloatLiteral{Base: base, Value: floatOrZero(m, "value")}, nil
	case "StringLiteral":
		return &ast.StringLiteral{Base: base, Value: strField(m, "value")}, nil
	case "BoolLiteral":
		return &ast.BoolLiteral{Base: base, Value: boolField(m, "value")}, nil
	case "This":
		return &ast.This{Base: base}, nil
	case "Reference":
		return &ast.Reference{Base: base, Name: strField(m, "name")}, nil

	case "DotIndex":
		left, err := d.decodeChildExpr(m, "left")
		if err != nil {
			return nil, err
		}
		idx, _ := intField(m, "index")
		return &ast.DotIndex{Base: base, Left: left, Index: int64(idx)}, nil

	case "DotName":
		left, err := d.decodeChildExpr(m, "left")
		if err != nil {
			return nil, err
		}
		return &ast.DotName{Base: base, Left: left, Name: strField(m, "name")}, nil

	case "Qualify":
		return &ast.Qualify{Base: base}, nil

	case "Arithmetic":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op, err := arithOp(strField(m, "op"))
		if err != nil {
			return nil, err
		}
		return &ast.Arithmetic{Base: base, Op: op, Left: l, Right: r}, nil

	case "Minus":
		l, err := d.decodeChildExpr(m, "left")
		if err != nil {
			return nil, err
		}
		var r ast.Expr
		if _, ok := mapField(m, "right"); ok {
			r, err = d.decodeChildExpr(m, "right")
			if err != nil {
				return nil, err
			}
		}
		return &ast.Minus{Base: base, Left: l, Right: r}, nil

	case "Shift":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op := ast.Shl
		if strField(m, "op") == ">>" {
			op = ast.Shr
		}
		return &ast.Shift{Base: base, Op: op, Left: l, Right: r}, nil

	case "Compare":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op := ast.Eq
		if strField(m, "op") == "!=" {
			op = ast.NotEq
		}
		return &ast.Compare{Base: base, Op: op, Left: l, Right: r}, nil

	case "Order":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op, err := orderOp(strField(m, "op"))
		if err != nil {
			return nil, err
		}
		return &ast.Order{Base: base, Op: op, Left: l, Right: r}, nil

	case "Identity":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op := ast.Is
		if strField(m, "op") == "isnt" {
			op = ast.Isnt
		}
		return &ast.Identity{Base: base, Op: op, Left: l, Right: r}, nil

	case "Logical":
		l, r, err := d.decodeBinary(m)
		if err != nil {
			return nil, err
		}
		op, err := logicalOp(strField(m, "op"))
		if err != nil {
			return nil, err
		}
		return &ast.Logical{Base: base, Op: op, Left: l, Right: r}, nil

	case "Not":
		x, err := d.decodeChildExpr(m, "x")
		if err != nil {
			return nil, err
		}
		return &ast.Not{Base: base, X: x}, nil

	case "Tuple":
		els, err := d.decodeExprList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Base: base, Elements: els}, nil

	case "Seq":
		els, err := d.decodeExprList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.Seq{Base: base, Elements: els}, nil

	case "Call":
		callee, err := d.decodeChildExpr(m, "callee")
		if err != nil {
			return nil, err
		}
		args, err := d.decodeExprList(m, "args")
		if err != nil {
			return nil, err
		}
		return &ast.Call{Base: base, Callee: callee, Args: args}, nil

	case "If":
		cond, err := d.decodeChildExpr(m, "cond")
		if err != nil {
			return nil, err
		}
		then, err := d.decodeChildExpr(m, "then")
		if err != nil {
			return nil, err
		}
		var els ast.Expr
		if _, ok := mapField(m, "else"); ok {
			els, err = d.decodeChildExpr(m, "else")
			if err != nil {
				return nil, err
			}
		}
		return &ast.If{Base: base, Cond: cond, Then: then, Else: els}, nil

	case "While":
		cond, err := d.decodeChildExpr(m, "cond")
		if err != nil {
			return nil, err
		}
		body, err := d.decodeChildExpr(m, "body")
		if err != nil {
			return nil, err
		}
		return &ast.While{Base: base, Cond: cond, Body: body}, nil

	case "Repeat":
		body, err := d.decodeChildExpr(m, "body")
		if err != nil {
			return nil, err
		}
		cond, err := d.decodeChildExpr(m, "cond")
		if err != nil {
			return nil, err
		}
		return &ast.Repeat{Base: base, Body: body, Cond: cond}, nil

	case "Continue":
		return &ast.Continue{Base: base}, nil
	case "Break":
		return &ast.Break{Base: base}, nil

	case "Return":
		var v ast.Expr
		if _, ok := mapField(m, "value"); ok {
			var err error
			v, err = d.decodeChildExpr(m, "value")
			if err != nil {
				return nil, err
			}
		}
		return &ast.Return{Base: base, Value: v}, nil

	case "Error":
		return &ast.ErrorExpr{Base: base}, nil

	case "Array":
		els, err := d.decodeExprList(m, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayExpr{Base: base, Elements: els}, nil
	case "Object":
		return &ast.ObjectExpr{Base: base}, nil
	case "For":
		iter, err := d.decodeChildExpr(m, "iterable")
		if err != nil {
			return nil, err
		}
		body, err := d.decodeChildExpr(m, "body")
		if err != nil {
			return nil, err
		}
		return &ast.ForExpr{Base: base, Iterable: iter, Body: body}, nil
	case "Try":
		body, err := d.decodeChildExpr(m, "body")
		if err != nil {
			return nil, err
		}
		var els ast.Expr
		if _, ok := mapField(m, "else"); ok {
			els, err = d.decodeChildExpr(m, "else")
			if err != nil {
				return nil, err
			}
		}
		return &ast.TryExpr{Base: base, Body: body, Else: els}, nil
	case "Var":
		init, err := d.optionalChildExpr(m, "init")
		if err != nil {
			return nil, err
		}
		return &ast.VarExpr{Base: base, Name: strField(m, "name"), Init: init}, nil
	case "Let":
		init, err := d.optionalChildExpr(m, "init")
		if err != nil {
			return nil, err
		}
		return &ast.LetExpr{Base: base, Name: strField(m, "name"), Init: init}, nil
	case "Consume":
		x, err := d.decodeChildExpr(m, "x")
		if err != nil {
			return nil, err
		}
		return &ast.ConsumeExpr{Base: base, X: x}, nil

	default:
		return nil, fmt.Errorf("astyaml: unknown expression kind %q", kind)
	}
}

func (d *decoder) decodeChildExpr(m map[string]any, key string) (ast.Expr, error) {
	cm, ok := mapField(m, key)
	if !ok {
		return nil, fmt.Errorf("astyaml: expression is missing %q", key)
	}
	return d.decodeExpr(cm)
}

func (d *decoder) optionalChildExpr(m map[string]any, key string) (ast.Expr, error) {
	cm, ok := mapField(m, key)
	if !ok {
		return nil, nil
	}
	return d.decodeExpr(cm)
}

func (d *decoder) decodeBinary(m map[string]any) (ast.Expr, ast.Expr, error) {
	l, err := d.decodeChildExpr(m, "left")
	if err != nil {
		return nil, nil, err
	}
	r, err := d.decodeChildExpr(m, "right")
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (d *decoder) decodeExprList(m map[string]any, key string) ([]ast.Expr, error) {
	items, _ := listField(m, key)
	out := make([]ast.Expr, 0, len(items))
	for _, it := range items {
		em, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("astyaml: element of %q is not a mapping", key)
		}
		e, err := d.decodeExpr(em)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func arithOp(s string) (ast.ArithOp, error) {
	switch s {
	case "*":
		return ast.Mul, nil
	case "/":
		return ast.Div, nil
	case "%":
		return ast.Mod, nil
	case "+":
		return ast.Add, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown arithmetic operator %q", s)
	}
}

func orderOp(s string) (ast.OrderOp, error) {
	switch s {
	case "<":
		return ast.Lt, nil
	case "<=":
		return ast.Le, nil
	case ">=":
		return ast.Ge, nil
	case ">":
		return ast.Gt, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown order operator %q", s)
	}
}

func logicalOp(s string) (ast.LogicalOp, error) {
	switch s {
	case "and":
		return ast.And, nil
	case "or":
		return ast.Or, nil
	case "xor":
		return ast.Xor, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown logical operator %q", s)
	}
}
