package astyaml

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/types"
)

// decodeType decodes a type-algebra node (spec.md §3): Nominal, Tuple,
// Union, Isect, Structural, or the Error marker. Arrow and the method-signature kinds are
// never written by hand in a fixture — the checker synthesizes those
// itself (spec §4.B, §4.D's `this`) — so they have no YAML spelling.
func (d *decoder) decodeType(m map[string]any) (types.Type, error) {
	switch strField(m, "kind") {
	case "", "Nominal":
		cap, err := parseCap(strField(m, "cap"))
		if err != nil {
			return nil, err
		}
		n := types.Nominal{
			Package:   strField(m, "package"),
			Name:      strField(m, "name"),
			Cap:       cap,
			Ephemeral: boolField(m, "ephemeral"),
		}
		argItems, _ := listField(m, "typeargs")
		for _, a := range argItems {
			am, ok := a.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("astyaml: type argument is not a mapping")
			}
			at, err := d.decodeType(am)
			if err != nil {
				return nil, err
			}
			n.TypeArgs = append(n.TypeArgs, at)
		}
		return n, nil

	case "Tuple":
		elems, _ := listField(m, "elements")
		if len(elems) < 2 {
			return nil, fmt.Errorf("astyaml: Tuple type needs at least 2 elements")
		}
		ts := make([]types.Type, len(elems))
		for i, e := range elems {
			em, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("astyaml: tuple element type is not a mapping")
			}
			t, err := d.decodeType(em)
			if err != nil {
				return nil, err
			}
			ts[i] = t
		}
		tup := ts[len(ts)-1]
		for i := len(ts) - 2; i >= 0; i-- {
			tup = types.Tuple{Head: ts[i], Tail: tup}
		}
		return tup, nil

	case "Union":
		l, r, err := d.decodeBinaryType(m)
		if err != nil {
			return nil, err
		}
		return types.Union{Left: l, Right: r}, nil

	case "Isect":
		l, r, err := d.decodeBinaryType(m)
		if err != nil {
			return nil, err
		}
		return types.Isect{Left: l, Right: r}, nil

	case "Structural":
		return types.Structural{Name: strField(m, "name")}, nil

	case "Error":
		return types.Error, nil

	default:
		return nil, fmt.Errorf("astyaml: unknown type kind %q", strField(m, "kind"))
	}
}

func (d *decoder) decodeBinaryType(m map[string]any) (types.Type, types.Type, error) {
	lm, ok := mapField(m, "left")
	if !ok {
		return nil, nil, fmt.Errorf("astyaml: binary type is missing \"left\"")
	}
	rm, ok := mapField(m, "right")
	if !ok {
		return nil, nil, fmt.Errorf("astyaml: binary type is missing \"right\"")
	}
	l, err := d.decodeType(lm)
	if err != nil {
		return nil, nil, err
	}
	r, err := d.decodeType(rm)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
