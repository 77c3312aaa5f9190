// Command lumenc drives the Lumen expression checker: it loads a
// pre-resolved program (spec.md §6's lexer/parser/name-resolution
// collaborators are out of this module's scope — see
// internal/astyaml for the serialized-AST format this binary actually
// reads), runs internal/pipeline over it, and prints every
// diagnostic. Subcommand dispatch is hand-rolled string matching over
// os.Args, grounded on the teacher's cmd/funxy/main.go (handleHelp,
// handleBuild, ... each a small "does this subcommand apply" function)
// rather than a flag-package command tree the teacher never reaches
// for either.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/mattn/go-isatty"
	"google.golang.org/grpc"

	"github.com/lumen-lang/lumenc/internal/astyaml"
	"github.com/lumen-lang/lumenc/internal/checkcache"
	"github.com/lumen-lang/lumenc/internal/checksvc"
	"github.com/lumen-lang/lumenc/internal/config"
	"github.com/lumen-lang/lumenc/internal/diagnostics"
	"github.com/lumen-lang/lumenc/internal/pipeline"
)

func main() {
	// Catch panics the same way the teacher's cmd/funxy/main.go does:
	// report them as an internal error rather than a raw Go stack
	// trace, unless DEBUG=1 asks for the full trace.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "check":
		err = runCheck(os.Args[2:])
	case "describe":
		err = runDescribe(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "lumenc: unknown subcommand %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumenc: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  lumenc check [-config=lumenc.yaml] [-cache] [-history=path] <file.lum.yaml>...
  lumenc describe [path/to/checksvc.proto]
  lumenc serve [-addr=:7777]`)
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a lumenc.yaml project config")
	useCache := fs.Bool("cache", false, "skip re-checking files unchanged since the last run")
	historyPath := fs.String("history", "", "write a YAML run history to this path")
	cacheDBPath := fs.String("cache-db", ".lumenc-cache/check.db", "sqlite database backing -cache")
	archivePath := fs.String("archive", "", "a txtar archive bundling several *.lum.yaml fixtures")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	var archiveFiles map[string][]byte
	if *archivePath != "" {
		entries, err := pipeline.LoadArchive(*archivePath)
		if err != nil {
			return err
		}
		archiveFiles = make(map[string][]byte, len(entries))
		for _, e := range entries {
			archiveFiles[e.Name] = e.Data
			paths = append(paths, e.Name)
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("check: no input files")
	}

	opts := config.Default()
	if *configPath != "" {
		var err error
		opts, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if opts.Color != nil {
		color = *opts.Color
	}

	var report *pipeline.Report
	var err error
	if *useCache {
		report, err = runCheckedWithCache(*cacheDBPath, archiveFiles, paths)
	} else {
		report, err = pipeline.RunFiles(context.Background(), fileLoader(archiveFiles), paths)
	}
	if err != nil {
		return err
	}

	for _, f := range report.Files {
		if f.Err != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f.Path, f.Err)
			continue
		}
		for _, d := range f.Diagnostics {
			printDiagnostic(f.Path, d, color)
		}
	}
	if *historyPath != "" {
		if err := report.WriteYAML(*historyPath); err != nil {
			return err
		}
	}
	if report.HasFatal() {
		os.Exit(1)
	}
	return nil
}

// fileLoader returns a pipeline.ProgramLoader that reads an
// astyaml-encoded fixture into a checkable Context, either from an
// in-memory txtar archive (fromArchive, when -archive was given) or
// straight off disk. This module ships no Lumen lexer or parser
// (spec.md §1/§6); internal/astyaml's doc comment explains why this
// binary reads a serialized tree instead of Lumen surface syntax.
func fileLoader(fromArchive map[string][]byte) pipeline.ProgramLoader {
	return func(path string) (*pipeline.Context, error) {
		data, err := readFileOrArchive(fromArchive, path)
		if err != nil {
			return nil, err
		}
		prog, err := astyaml.DecodeProgram(data)
		if err != nil {
			return nil, err
		}
		return pipeline.NewContext(path, prog), nil
	}
}

func readFileOrArchive(fromArchive map[string][]byte, path string) ([]byte, error) {
	if fromArchive != nil {
		data, ok := fromArchive[path]
		if !ok {
			return nil, fmt.Errorf("archive entry %q not found", path)
		}
		return data, nil
	}
	return os.ReadFile(path)
}

// runCheckedWithCache checks each path sequentially, consulting
// checkcache first and only running the real pipeline on a miss. It
// trades RunFiles' concurrent fan-out (SPEC_FULL.md §3.5) for a
// straightforward read-through cache: the cache itself already
// serializes on its single sqlite handle, so nothing is lost by
// running this path's checks one file at a time.
func runCheckedWithCache(dbPath string, fromArchive map[string][]byte, paths []string) (*pipeline.Report, error) {
	cache, err := checkcache.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer cache.Close()
	runID, err := cache.NewRun()
	if err != nil {
		return nil, err
	}

	stages := pipeline.New(pipeline.ResolveProcessor{}, pipeline.CheckProcessor{}, pipeline.ReportProcessor{})
	report := &pipeline.Report{}
	for _, path := range paths {
		data, err := readFileOrArchive(fromArchive, path)
		if err != nil {
			report.Files = append(report.Files, pipeline.FileReport{Path: path, Err: err.Error()})
			continue
		}
		hash := checkcache.HashContent(data)
		if diags, hit, err := cache.Lookup(path, hash); err == nil && hit {
			report.Files = append(report.Files, pipeline.FileReport{Path: path, Diagnostics: diags, Cached: true})
			continue
		}
		prog, err := astyaml.DecodeProgram(data)
		if err != nil {
			report.Files = append(report.Files, pipeline.FileReport{Path: path, Err: err.Error()})
			continue
		}
		ctx := stages.Run(pipeline.NewContext(path, prog))
		if ctx.Err != nil {
			report.Files = append(report.Files, pipeline.FileReport{Path: path, Err: ctx.Err.Error()})
			continue
		}
		diags := ctx.Sink.Diagnostics()
		if err := cache.Store(runID, path, hash, diags); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, pipeline.FileReport{Path: path, Diagnostics: diags})
	}
	return report, nil
}

func printDiagnostic(path string, d diagnostics.Diagnostic, color bool) {
	const (
		red   = "\x1b[31m"
		reset = "\x1b[0m"
	)
	if color {
		fmt.Printf("%s: %s[%s]%s %s\n", d.Pos, red, d.Code, reset, d.Message)
	} else {
		fmt.Printf("%s:%s: [%s] %s\n", path, d.Pos, d.Code, d.Message)
	}
	if d.Secondary != nil {
		fmt.Printf("  %s: %s\n", d.Secondary.Pos, d.Secondary.Message)
	}
}

func runDescribe(args []string) error {
	protoPath := "internal/checksvc/checksvc.proto"
	if len(args) > 0 {
		protoPath = args[0]
	}
	out, err := checksvc.Describe(protoPath)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", ":7777", "listen address for the check service")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		return err
	}
	srv := grpc.NewServer()
	checksvc.RegisterCheckServiceServer(srv, checksvc.NewServer(nil))
	fmt.Fprintf(os.Stderr, "lumenc: serving CheckService on %s\n", *addr)
	return srv.Serve(lis)
}
