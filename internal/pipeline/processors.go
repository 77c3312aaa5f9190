package pipeline

import (
	"fmt"
	"sort"

	"github.com/lumen-lang/lumenc/internal/check"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/symbols"
)

// ResolveProcessor builds the global scope a Program's top-level
// references resolve against: one Package symbol per entry in
// ctx.Imports, exporting the type symbols named there. It is the
// "name resolution" collaborator spec.md §6 lists as out of scope for
// the core itself, shipped here so the core has something real to
// consume.
type ResolveProcessor struct{}

func (ResolveProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}
	ctx.Global = symbols.NewScope()
	for name, exports := range ctx.Imports {
		ctx.Global.Define(name, &symbols.Symbol{
			Name:    name,
			Kind:    symbols.Package,
			Exports: exports,
		})
	}
	return ctx
}

// CheckProcessor runs internal/check's post-order walk (spec.md §4.I)
// over ctx.Program, using ctx.Global as the outer scope.
type CheckProcessor struct{}

func (CheckProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}
	if ctx.Program == nil {
		ctx.Err = fmt.Errorf("pipeline: %s: no program to check", ctx.Path)
		return ctx
	}
	if ctx.Global == nil {
		ctx.Global = symbols.NewScope()
	}
	ctx.Sink = diagnostics.NewSink()
	check.New(ctx.Sink).Check(ctx.Program, ctx.Global)
	return ctx
}

// ReportProcessor sorts the collected diagnostics into source order.
// The checker visits children before parents (post-order), so two
// sibling subtrees' diagnostics can otherwise arrive out of the order
// a reader expects them printed in.
type ReportProcessor struct{}

func (ReportProcessor) Process(ctx *Context) *Context {
	if ctx.Sink == nil {
		return ctx
	}
	diags := ctx.Sink.Diagnostics()
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Pos.Less(diags[j].Pos)
	})
	return ctx
}
