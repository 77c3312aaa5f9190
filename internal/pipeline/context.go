package pipeline

import (
	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
)

// Context is the value threaded through a Pipeline's stages, the
// generalized analogue of the teacher's PipelineContext (there: source
// text plus whatever the lexer/parser/analyzer stage attached to it;
// here: an already name-resolvable Program, since this module's scope
// stops at the checker — lexing and parsing remain a collaborator per
// spec.md §6).
type Context struct {
	// Path identifies the unit being checked, for diagnostics and for
	// RunFiles' per-file report rows.
	Path string

	// Program is the tree ResolveProcessor and CheckProcessor operate
	// over. A loader (cmd/lumenc, or a test) populates this before the
	// pipeline runs; this module does not itself parse source text.
	Program *ast.Program

	// Imports names the other packages this Program's DotName
	// expressions may qualify into, and what each one exports.
	// ResolveProcessor turns this into Package-kind symbols in Global.
	Imports map[string]map[string]*symbols.Symbol

	Global *symbols.Scope
	Sink   *diagnostics.Sink
	Err    error
}

// NewContext starts a fresh Context for one file's Program.
func NewContext(path string, program *ast.Program) *Context {
	return &Context{Path: path, Program: program}
}
