package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProgramLoader resolves a file path to the Context RunFiles should
// run the standard resolve/check/report pipeline over. Lexing and
// parsing a real Lumen source file live outside this module's scope
// (spec.md §6); ProgramLoader is the seam a real frontend plugs into —
// cmd/lumenc and tests both wire one that already has a Program in
// hand.
type ProgramLoader func(path string) (*Context, error)

// RunFiles checks every path concurrently, one goroutine per file,
// bounded by GOMAXPROCS — the core itself stays single-threaded and
// synchronous per spec.md §5; concurrency lives one layer up, across
// independent files, mirroring the teacher's module loader resolving
// sibling files concurrently (SPEC_FULL.md §3.5).
func RunFiles(ctx context.Context, load ProgramLoader, paths []string) (*Report, error) {
	stages := New(ResolveProcessor{}, CheckProcessor{}, ReportProcessor{})
	results := make([]FileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fc, err := load(path)
			if err != nil {
				results[i] = FileReport{Path: path, Err: err.Error()}
				return nil
			}
			fc = stages.Run(fc)
			if fc.Err != nil {
				results[i] = FileReport{Path: path, Err: fc.Err.Error()}
				return nil
			}
			results[i] = FileReport{Path: path, Diagnostics: fc.Sink.Diagnostics()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{Files: results}, nil
}
