package ast

// Children enumerates a node's immediate children in evaluation order.
// It is the one place that knows each kind's shape; every other
// traversal (parent-linking, enclosing-of-kind queries) builds on top
// of it instead of re-deriving the same switch.
func Children(n Node) []Node {
	var out []Node
	add := func(child Node) {
		if child == nil {
			return
		}
		out = append(out, child)
	}

	switch x := n.(type) {
	case *DotIndex:
		add(x.Left)
	case *DotName:
		add(x.Left)
	case *Arithmetic:
		add(x.Left)
		add(x.Right)
	case *Minus:
		add(x.Left)
		add(x.Right)
	case *Shift:
		add(x.Left)
		add(x.Right)
	case *Compare:
		add(x.Left)
		add(x.Right)
	case *Order:
		add(x.Left)
		add(x.Right)
	case *Identity:
		add(x.Left)
		add(x.Right)
	case *Logical:
		add(x.Left)
		add(x.Right)
	case *Not:
		add(x.X)
	case *TupleExpr:
		for _, e := range x.Elements {
			add(e)
		}
	case *Seq:
		for _, e := range x.Elements {
			add(e)
		}
	case *Call:
		add(x.Callee)
		for _, a := range x.Args {
			add(a)
		}
	case *If:
		add(x.Cond)
		add(x.Then)
		add(x.Else)
	case *While:
		add(x.Cond)
		add(x.Body)
	case *Repeat:
		add(x.Body)
		add(x.Cond)
	case *Return:
		add(x.Value)
	case *ArrayExpr:
		for _, e := range x.Elements {
			add(e)
		}
	case *ForExpr:
		add(x.Iterable)
		add(x.Body)
	case *TryExpr:
		add(x.Body)
		add(x.Else)
	case *VarExpr:
		add(x.Init)
	case *LetExpr:
		add(x.Init)
	case *ConsumeExpr:
		add(x.X)
	case *FieldOrParam:
		add(x.Init)
	case *MethodDecl:
		for _, p := range x.Params {
			add(p)
		}
		add(x.Body)
	case *TypeDecl:
		for _, f := range x.Fields {
			add(f)
		}
		for _, m := range x.Methods {
			add(m)
		}
	case *Program:
		for _, t := range x.Types {
			add(t)
		}
	}
	return out
}

// ParentMap maps a node to its immediate parent. Spec §9 notes parent
// links "need not be stored in the node" — this is that light
// traversal helper, built once from Children before a check pass runs.
type ParentMap map[Node]Node

// BuildParents walks root and records every descendant's parent.
func BuildParents(root Node) ParentMap {
	pm := make(ParentMap)
	var walk func(n Node)
	walk = func(n Node) {
		for _, c := range Children(n) {
			pm[c] = n
			walk(c)
		}
	}
	walk(root)
	return pm
}

// EnclosingTypeDecl returns the nearest ancestor TypeDecl of n, if any
// (spec §4.D's "find the enclosing type declaration" for `this`).
func EnclosingTypeDecl(pm ParentMap, n Node) (*TypeDecl, bool) {
	for cur := pm[n]; cur != nil; cur = pm[cur] {
		if td, ok := cur.(*TypeDecl); ok {
			return td, true
		}
	}
	return nil, false
}

// EnclosingLoop returns the nearest ancestor While or Repeat of n, if
// any (spec §4.G's continue/break "must be in a loop" rule).
func EnclosingLoop(pm ParentMap, n Node) (Node, bool) {
	for cur := pm[n]; cur != nil; cur = pm[cur] {
		switch cur.(type) {
		case *While, *Repeat:
			return cur, true
		}
	}
	return nil, false
}

// EnclosingMethodBody returns the nearest ancestor MethodDecl whose
// body contains n (spec §4.G's "return must be inside a method body").
func EnclosingMethodBody(pm ParentMap, n Node) (*MethodDecl, bool) {
	for cur := pm[n]; cur != nil; cur = pm[cur] {
		if m, ok := cur.(*MethodDecl); ok {
			return m, true
		}
	}
	return nil, false
}

// ParentOf returns n's immediate parent, if recorded.
func ParentOf(pm ParentMap, n Node) (Node, bool) {
	p, ok := pm[n]
	return p, ok
}
