package types

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/capability"
)

func TestTupleElementsFlattensRightConsSpine(t *testing.T) {
	tup := Tuple{
		Head: Builtin("IntLiteral"),
		Tail: Tuple{
			Head: Builtin("Bool"),
			Tail: Builtin("String"),
		},
	}
	elems := Elements(tup)
	if len(elems) != 3 {
		t.Fatalf("Elements(tup) has %d elements, want 3", len(elems))
	}
	want := []string{"IntLiteral", "Bool", "String"}
	for i, w := range want {
		if n, ok := elems[i].(Nominal); !ok || n.Name != w {
			t.Errorf("elems[%d] = %v, want nominal %q", i, elems[i], w)
		}
	}
}

func TestIsErrorOnlyMatchesTheSingleton(t *testing.T) {
	if !IsError(Error) {
		t.Errorf("IsError(Error) = false, want true")
	}
	if IsError(Builtin("IntLiteral")) {
		t.Errorf("IsError(IntLiteral) = true, want false")
	}
	if IsError(Union{Left: Builtin("Bool"), Right: Error}) {
		t.Errorf("IsError should not look inside a Union")
	}
}

func TestIsNoneMatchesOnlyTheUnqualifiedNominal(t *testing.T) {
	if !IsNone(None) {
		t.Errorf("IsNone(None) = false, want true")
	}
	if IsNone(Nominal{Package: "pkg", Name: "None"}) {
		t.Errorf("IsNone should require an unqualified name")
	}
	if IsNone(Nominal{Name: "None", TypeArgs: []Type{Builtin("Bool")}}) {
		t.Errorf("IsNone should require no type arguments")
	}
}

func TestNominalStringIncludesCapAndEphemerality(t *testing.T) {
	n := Nominal{Name: "Widget", Cap: capability.Iso, Ephemeral: true}
	if got, want := n.String(), "Widget iso^"; got != want {
		t.Errorf("Nominal.String() = %q, want %q", got, want)
	}
}

func TestIsBuiltinSubtype(t *testing.T) {
	tests := []struct {
		name, super string
		want        bool
	}{
		{"IntLiteral", "Arithmetic", true},
		{"IntLiteral", "Integer", true},
		{"IntLiteral", "FloatLiteral", false},
		{"FloatLiteral", "Arithmetic", true},
		{"FloatLiteral", "Integer", false},
		{"Bool", "Bool", true},
		{"Bool", "Arithmetic", false},
	}
	for _, tt := range tests {
		if got := IsBuiltinSubtype(tt.name, tt.super); got != tt.want {
			t.Errorf("IsBuiltinSubtype(%q, %q) = %v, want %v", tt.name, tt.super, got, tt.want)
		}
	}
}
