// Package pipeline chains the stages a checking run passes through,
// grounded on the shape of the teacher's internal/pipeline/pipeline.go
// (an ordered list of Processors, each rewriting a Context for the
// next stage), adapted to stop early on a Fatal diagnostic instead of
// always running every stage: there's nothing for a later stage —
// typically ReportProcessor, whose only job is cosmetic ordering — to
// usefully add once a stage's Sink already holds a Fatal diagnostic
// (internal/diagnostics' own Fatal/Recoverable split, spec.md §9).
// Nothing reported so far is ever dropped by stopping early: the Sink
// already holds every diagnostic a prior stage recorded.
package pipeline

// Processor is one stage of a checking run.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed sequence of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from its stages, in run order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run threads initial through each stage in turn, stopping before the
// next one once the current stage leaves ctx.Sink holding a Fatal
// diagnostic. A Sink with only Recoverable diagnostics, or no Sink yet
// (a Resolve-only failure reported via ctx.Err, which each Processor
// already checks for itself on entry), still lets every remaining
// stage run.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
		if ctx.Sink != nil && ctx.Sink.HasFatal() {
			break
		}
	}
	return ctx
}
