package types

import "github.com/lumen-lang/lumenc/internal/capability"

// Builtin constructs a tag-capability nominal naming one of the
// well-known builtin types the algebra helpers test membership against
// (spec §4.A's type_builtin: "Bool", "Integer", "Arithmetic", ...). Tag
// is used because membership checks never care about the capability
// side of the builtin name itself — only the operand's.
func Builtin(name string) Type {
	return Nominal{Name: name, Cap: capability.Tag}
}

// Qualified constructs a package-qualified nominal (spec §4.D's
// package.Type lookup result).
func Qualified(pkg, name string) Type {
	return Nominal{Package: pkg, Name: name, Cap: capability.Tag}
}

// literalSupertypes records which builtin names a literal's own
// nominal name widens to. Literal nodes (spec §4.D) attach a nominal
// named after their own kind ("IntLiteral", "FloatLiteral") rather
// than a concrete machine type, because at this pass no target type
// has narrowed them yet — the real nominal-subtype engine (an external
// collaborator, spec §6) is what would normally encode this
// polymorphism; this table stands in for exactly the slice of it the
// arithmetic/comparison family (spec §4.E) needs to recognize a
// literal as "an Arithmetic" or "an Integer".
var literalSupertypes = map[string]map[string]bool{
	"IntLiteral":   {"IntLiteral": true, "Arithmetic": true, "Integer": true},
	"FloatLiteral": {"FloatLiteral": true, "Arithmetic": true},
	"Bool":         {"Bool": true},
	"String":       {"String": true},
}

// IsBuiltinSubtype reports whether the builtin nominal named `name` is
// considered a subtype of the builtin nominal named `super`, per the
// table above.
func IsBuiltinSubtype(name, super string) bool {
	if name == super {
		return true
	}
	supers, ok := literalSupertypes[name]
	if !ok {
		return false
	}
	return supers[super]
}
