// Package diagnostics is the push-only error sink spec.md §7 requires:
// diagnostics are reported in place, never as exceptions, and a failing
// node returns FATAL while the walker keeps visiting sibling subtrees
// to surface as many diagnostics as possible per run (spec §9).
package diagnostics

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/token"
)

// Code groups diagnostics the way spec.md §7 enumerates them.
type Code string

const (
	// Scope: undeclared identifier, use-before-declaration, package misuse.
	ErrScope Code = "E1"
	// Shape: wrong kind in context.
	ErrShape Code = "E2"
	// Subtype: initializer/assign/return/body not a subtype of expected.
	ErrSubtype Code = "E3"
	// Operator: operand kind/relation violations.
	ErrOperator Code = "E4"
	// Capability: receiver capability not a subtype of the method's.
	ErrCapability Code = "E5"
	// Partiality: declared-partial/body-can-fail mismatch.
	ErrPartiality Code = "E6"
	// Sequence position: continue/break/return/error not last in sequence.
	ErrSequence Code = "E7"
	// Unimplemented: an explicitly stubbed AST kind.
	ErrUnimplemented Code = "E9"
)

// Severity distinguishes a diagnostic that stops the current subtree
// from being typed (Fatal, spec's AST_FATAL) from one that is reported
// but does not itself prevent a type from being attached.
type Severity int

const (
	Fatal Severity = iota
	Recoverable
)

// Diagnostic is a single reported error with its primary location and
// an optional secondary location (def-before-use's definition site,
// a sequence's offending successor, a partial body's failing child —
// spec §7's "companion location").
type Diagnostic struct {
	Code      Code
	Severity  Severity
	Pos       token.Position
	Message   string
	Secondary *Located
}

// Located pairs a message with a position, for the secondary half of a
// dual-position diagnostic.
type Located struct {
	Pos     token.Position
	Message string
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: [%s] %s", d.Pos, d.Code, d.Message)
	if d.Secondary != nil {
		s += fmt.Sprintf("\n%s: [%s] %s", d.Secondary.Pos, d.Code, d.Secondary.Message)
	}
	return s
}

// Sink collects diagnostics in report order. It is intentionally not
// safe for concurrent writes from multiple goroutines checking the
// same file (the core is single-threaded per spec §5); concurrent
// multi-file checking (SPEC_FULL §3.5) gives each file its own Sink.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error appends a fatal, single-position diagnostic and always
// returns false, so call sites can write `return s.Error(...)`.
func (s *Sink) Error(pos token.Position, code Code, format string, args ...any) bool {
	s.diags = append(s.diags, Diagnostic{
		Code:     code,
		Severity: Fatal,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
	return false
}

// ErrorWithSecondary appends a dual-position diagnostic (spec §7's
// "companion location" cases: use-before-def, sequence position).
func (s *Sink) ErrorWithSecondary(pos token.Position, code Code, msg string, secPos token.Position, secMsg string) bool {
	s.diags = append(s.diags, Diagnostic{
		Code:     code,
		Severity: Fatal,
		Pos:      pos,
		Message:  msg,
		Secondary: &Located{
			Pos:     secPos,
			Message: secMsg,
		},
	})
	return false
}

// Recoverable appends a diagnostic that does not by itself invalidate
// the subtree's type.
func (s *Sink) Recoverable(pos token.Position, code Code, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Code:     code,
		Severity: Recoverable,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns all diagnostics reported so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// HasFatal reports whether any Fatal-severity diagnostic was reported.
func (s *Sink) HasFatal() bool {
	for _, d := range s.diags {
		if d.Severity == Fatal {
			return true
		}
	}
	return false
}
