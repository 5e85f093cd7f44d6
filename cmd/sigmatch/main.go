package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/sigmatch/internal/cli"
	"github.com/toyz/sigmatch/internal/utils"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Module providing pkg/sigmatch in generated imports, for forks and vendored copies (defaults to the go.mod module when it ships pkg/sigmatch)")
		verboseFlag = flag.Bool("verbose", false, "Enable detailed output and the pre-generation lint pass")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		cleanFlag   = flag.Bool("clean", false, "Delete generated signature-match test files instead of generating")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "sigmatch Test Generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go files with //sigmatch:: directives and generates\n")
		fmt.Fprintf(os.Stderr, "signature-match tests asserting that D-Bus introspection documents and the\n")
		fmt.Fprintf(os.Stderr, "Go types representing their payloads agree.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/atspi        Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                  # Generate tests for every annotated package\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./pkg/...    # Generate with per-case lint output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...          # Delete generated test files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("sigmatch")

	if *cleanFlag {
		cleaner := cli.NewCleaner()
		removed, err := cleaner.Clean(args)
		if err != nil {
			diagnostics.Error("Clean failed: %v", err)
			os.Exit(1)
		}
		for _, path := range removed {
			diagnostics.List("removed %s", path)
		}
		diagnostics.Success("%d generated file(s) removed", len(removed))
		return
	}

	config := cli.Config{
		Directories: args,
		ModuleName:  *moduleFlag,
		Verbose:     *verboseFlag,
	}

	generator := cli.NewGenerator(config, diagnostics)
	if err := generator.Generate(); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	summary := generator.Summary()
	diagnostics.Success("%d test file(s) generated from %d match case(s) in %d package(s)",
		len(summary.GeneratedFiles), summary.CasesFound, summary.PackagesProcessed)
	for _, file := range summary.GeneratedFiles {
		diagnostics.List("%s", file)
	}
}
