// Package checksvc exposes the checker behind a gRPC boundary, so an
// editor or CI system can run it without shelling out to the CLI —
// grounded on the teacher's own internal/evaluator/builtins_grpc.go,
// which hand-builds a grpc.ServiceDesc around a dynamic protoreflect
// descriptor instead of depending on generated .pb.go stubs. This
// package does the same thing one layer up: it serves the language's
// own type checker instead of a user script's handler.
//
// checksvc.proto documents the wire shape; no protoc-generated Go
// code backs it. Messages cross the wire as google.protobuf.Struct —
// CheckFile's Go-level request/response types (below) are converted
// to and from a Struct by responseToStruct/requestFromStruct.
package checksvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lumen-lang/lumenc/internal/ast"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/pipeline"
)

// Diagnostic is the wire-shaped view of a diagnostics.Diagnostic
// (checksvc.proto's Diagnostic message).
type Diagnostic struct {
	Code             string
	Message          string
	Line, Column     uint32
	SecondaryMessage string
	SecondaryLine    uint32
	SecondaryColumn  uint32
}

// CheckRequest is the Go-level view of checksvc.proto's CheckRequest.
type CheckRequest struct {
	RequestID string
	Path      string
	Program   *ast.Program
}

// CheckResponse is the Go-level view of checksvc.proto's CheckResponse.
type CheckResponse struct {
	RequestID   string
	Diagnostics []Diagnostic
}

// ProgramDecoder turns the opaque "program" field of a wire request
// into a checkable *ast.Program. This module ships no Lumen
// lexer/parser (spec.md's scope stops at the checker), so the default
// decoder reports that gap explicitly rather than guessing at a wire
// format; a real frontend supplies its own decoder to Server.
type ProgramDecoder func(programField any) (*ast.Program, error)

func defaultDecoder(any) (*ast.Program, error) {
	return nil, fmt.Errorf("checksvc: no program decoder configured (parsing is out of scope for this module)")
}

// Server implements the CheckService RPC by running the same
// pipeline.Pipeline the CLI does, over a Program the caller already
// supplied pre-decoded, or that Decode turns the wire payload into.
type Server struct {
	Decode ProgramDecoder
}

// NewServer returns a Server ready to register with a grpc.Server via
// RegisterCheckServiceServer.
func NewServer(decode ProgramDecoder) *Server {
	if decode == nil {
		decode = defaultDecoder
	}
	return &Server{Decode: decode}
}

// CheckFile runs the checker over req.Program and reports every
// diagnostic the run produced, tagging the response with req's
// request ID (or a freshly minted one) so logs on both sides of the
// RPC correlate.
func (s *Server) CheckFile(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	id := req.RequestID
	if id == "" {
		id = uuid.New().String()
	}

	pc := pipeline.NewContext(req.Path, req.Program)
	pc = pipeline.New(pipeline.ResolveProcessor{}, pipeline.CheckProcessor{}, pipeline.ReportProcessor{}).Run(pc)
	if pc.Err != nil {
		return nil, fmt.Errorf("checksvc: %s: %w", req.Path, pc.Err)
	}

	resp := &CheckResponse{RequestID: id}
	for _, d := range pc.Sink.Diagnostics() {
		resp.Diagnostics = append(resp.Diagnostics, toWireDiagnostic(d))
	}
	return resp, nil
}

func toWireDiagnostic(d diagnostics.Diagnostic) Diagnostic {
	wd := Diagnostic{
		Code:    string(d.Code),
		Message: d.Message,
		Line:    uint32(d.Pos.Line),
		Column:  uint32(d.Pos.Column),
	}
	if d.Secondary != nil {
		wd.SecondaryMessage = d.Secondary.Message
		wd.SecondaryLine = uint32(d.Secondary.Pos.Line)
		wd.SecondaryColumn = uint32(d.Secondary.Pos.Column)
	}
	return wd
}
