package config

// Version is the current lumenc version.
// Set at build time via -ldflags, or left at this default for dev builds.
var Version = "0.1.0"

const SourceFileExt = ".lum"

// SourceFileExtensions are all recognized Lumen source file extensions.
var SourceFileExtensions = []string{".lum", ".lumen"}

// HasSourceExt reports whether path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates the process is running under `go test`. It
// defaults to false and nothing in this module sets it.
var IsTestMode = false

// Builtin type names the checker's membership predicates widen literals
// towards (internal/check/algebra.go, internal/types/builtin.go).
const (
	ArithmeticTypeName = "Arithmetic"
	IntegerTypeName    = "Integer"
	BoolTypeName       = "Bool"
	StringTypeName     = "String"
	NoneTypeName       = "None"
)
