// Package astyaml decodes a YAML-encoded AST fixture into an
// internal/ast tree the checker can walk. This module ships no Lumen
// lexer or parser (spec.md §1/§6 lists them as collaborators out of
// scope), so this is the frontend cmd/lumenc actually has in hand: a
// serialized tree
// shape, not Lumen surface syntax, decoded with the same
// gopkg.in/yaml.v3 dependency internal/config already carries.
//
// Nodes are tagged with a "kind" field mirroring the Go type name
// (spec.md §3's "kind tag drawn from a closed set"); positions default
// to a synthetic, strictly increasing (line, column) derived from
// decode order so def-before-use fixtures work without hand-numbering
// every node, but any node may set explicit "line"/"col" fields to
// exercise the use-before-declaration diagnostic (spec §4.D).
package astyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/capability"
	"github.com/lumen-lang/lumenc/internal/token"
	"github.com/lumen-lang/lumenc/internal/types"
)

type decoder struct {
	line int
}

func (d *decoder) nextPos(m map[string]any) token.Position {
	d.line++
	pos := token.Position{Line: d.line, Column: 1}
	if l, ok := intField(m, "line"); ok {
		pos.Line = l
	}
	if c, ok := intField(m, "col"); ok {
		pos.Column = c
	}
	return pos
}

// DecodeProgram parses a YAML document into a checkable *ast.Program.
func DecodeProgram(data []byte) (*ast.Program, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("astyaml: %w", err)
	}
	d := &decoder{}
	return d.decodeProgram(raw)
}

func (d *decoder) decodeProgram(m map[string]any) (*ast.Program, error) {
	pos := d.nextPos(m)
	prog := &ast.Program{Base: ast.Base{Position: pos}}
	items, _ := listField(m, "types")
	for _, it := range items {
		tm, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("astyaml: type declaration entry is not a mapping")
		}
		td, err := d.decodeTypeDecl(tm)
		if err != nil {
			return nil, err
		}
		prog.Types = append(prog.Types, td)
	}
	return prog, nil
}

func (d *decoder) decodeTypeDecl(m map[string]any) (*ast.TypeDecl, error) {
	pos := d.nextPos(m)
	kind, err := declKind(strField(m, "declkind"))
	if err != nil {
		return nil, err
	}
	td := &ast.TypeDecl{
		Base:       ast.Base{Position: pos},
		Name:       strField(m, "name"),
		Kind:       kind,
		TypeParams: stringList(m, "typeparams"),
	}
	fields, _ := listField(m, "fields")
	for _, f := range fields {
		fm, ok := f.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("astyaml: field entry is not a mapping")
		}
		fp, err := d.decodeFieldOrParam(fm, ast.FVarDecl)
		if err != nil {
			return nil, err
		}
		td.Fields = append(td.Fields, fp)
	}
	methods, _ := listField(m, "methods")
	for _, mm := range methods {
		methMap, ok := mm.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("astyaml: method entry is not a mapping")
		}
		md, err := d.decodeMethodDecl(methMap)
		if err != nil {
			return nil, err
		}
		td.Methods = append(td.Methods, md)
	}
	return td, nil
}

func declKind(s string) (ast.TypeDeclKind, error) {
	switch s {
	case "", "type":
		return ast.TypeKind, nil
	case "class":
		return ast.ClassKind, nil
	case "actor":
		return ast.ActorKind, nil
	case "trait":
		return ast.TraitKind, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown declkind %q", s)
	}
}

func (d *decoder) decodeFieldOrParam(m map[string]any, fallback ast.FieldKind) (*ast.FieldOrParam, error) {
	pos := d.nextPos(m)
	kind := fallback
	switch strField(m, "fieldkind") {
	case "flet":
		kind = ast.FLetDecl
	case "fvar":
		kind = ast.FVarDecl
	case "param":
		kind = ast.ParamDecl
	}
	fp := &ast.FieldOrParam{
		Base: ast.Base{Position: pos},
		Kind: kind,
		Name: strField(m, "name"),
	}
	if tm, ok := mapField(m, "type"); ok {
		t, err := d.decodeType(tm)
		if err != nil {
			return nil, err
		}
		fp.TypeAnn = t
	}
	if im, ok := mapField(m, "init"); ok {
		e, err := d.decodeExpr(im)
		if err != nil {
			return nil, err
		}
		fp.Init = e
	}
	return fp, nil
}

func (d *decoder) decodeMethodDecl(m map[string]any) (*ast.MethodDecl, error) {
	pos := d.nextPos(m)
	mk, err := methodKind(strField(m, "methodkind"))
	if err != nil {
		return nil, err
	}
	cap, err := parseCap(strField(m, "cap"))
	if err != nil {
		return nil, err
	}
	md := &ast.MethodDecl{
		Base:       ast.Base{Position: pos},
		Cap:        cap,
		MethodKind: mk,
		ID:         strField(m, "id"),
		TypeParams: stringList(m, "typeparams"),
		Partial:    boolField(m, "partial"),
	}
	params, _ := listField(m, "params")
	for _, p := range params {
		pm, ok := p.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("astyaml: param entry is not a mapping")
		}
		fp, err := d.decodeFieldOrParam(pm, ast.ParamDecl)
		if err != nil {
			return nil, err
		}
		md.Params = append(md.Params, fp)
	}
	if rm, ok := mapField(m, "result"); ok {
		t, err := d.decodeType(rm)
		if err != nil {
			return nil, err
		}
		md.Result = t
	}
	if bm, ok := mapField(m, "body"); ok {
		e, err := d.decodeExpr(bm)
		if err != nil {
			return nil, err
		}
		md.Body = e
	}
	return md, nil
}

func methodKind(s string) (types.MethodKind, error) {
	switch s {
	case "new":
		return types.New, nil
	case "be":
		return types.Be, nil
	case "", "fun":
		return types.Fun, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown methodkind %q", s)
	}
}

func parseCap(s string) (capability.Cap, error) {
	switch s {
	case "", "ref":
		return capability.Ref, nil
	case "iso":
		return capability.Iso, nil
	case "trn":
		return capability.Trn, nil
	case "val":
		return capability.Val, nil
	case "box":
		return capability.Box, nil
	case "tag":
		return capability.Tag, nil
	default:
		return 0, fmt.Errorf("astyaml: unknown capability %q", s)
	}
}
