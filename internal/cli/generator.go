package cli

import (
	"os"
	"path/filepath"

	"github.com/toyz/sigmatch/internal/annotations"
	"github.com/toyz/sigmatch/internal/errors"
	"github.com/toyz/sigmatch/internal/generator"
	"github.com/toyz/sigmatch/internal/models"
	"github.com/toyz/sigmatch/internal/utils"
	"github.com/toyz/sigmatch/pkg/sigmatch"
)

// Generator drives the scan → parse → generate → write pipeline
type Generator struct {
	scanner     *Scanner
	renderer    *generator.Generator
	diagnostics *utils.DiagnosticSystem
	config      Config
	summary     Summary
}

// Summary reports what a generation run did
type Summary struct {
	PackagesProcessed int
	CasesFound        int
	GeneratedFiles    []string
}

// NewGenerator creates a generator driver
func NewGenerator(config Config, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:     NewScanner(),
		renderer:    generator.New(),
		diagnostics: diagnostics,
		config:      config,
	}
}

// Summary returns the results of the last Generate run
func (g *Generator) Summary() Summary {
	return g.summary
}

// Generate scans the configured directories and writes one signature-match
// test file per package that carries directives
func (g *Generator) Generate() error {
	g.summary = Summary{}

	libraryImport := g.libraryImportPath()
	g.renderer = generator.NewWithImport(libraryImport)
	g.diagnostics.Verbose("generated tests import %s", libraryImport)

	dirs, err := g.scanner.ExpandDirectories(g.config.Directories)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := g.generatePackage(dir); err != nil {
			return err
		}
	}

	return nil
}

// libraryImportPath decides which resolver library import the generated
// tests carry. An explicit -module wins; otherwise a surrounding module that
// ships pkg/sigmatch itself (a fork or vendored copy) redirects the import,
// and anything else keeps the canonical path.
func (g *Generator) libraryImportPath() string {
	if g.config.ModuleName != "" {
		return g.config.ModuleName + "/pkg/sigmatch"
	}

	goModPath, err := utils.FindGoModFile(".")
	if err != nil {
		g.diagnostics.Verbose("no go.mod found: %v", err)
		return generator.DefaultLibraryImport
	}
	moduleName, err := utils.ParseModuleName(goModPath)
	if err != nil {
		g.diagnostics.Warn("could not resolve module from go.mod: %v", err)
		return generator.DefaultLibraryImport
	}

	info, err := os.Stat(filepath.Join(filepath.Dir(goModPath), "pkg", "sigmatch"))
	if err != nil || !info.IsDir() {
		return generator.DefaultLibraryImport
	}
	return moduleName + "/pkg/sigmatch"
}

// generatePackage handles one package directory
func (g *Generator) generatePackage(dir string) error {
	spec, err := g.scanner.ScanPackage(dir)
	if err != nil {
		return err
	}
	if len(spec.Cases) == 0 {
		g.diagnostics.Verbose("%s: no sigmatch directives", dir)
		return nil
	}

	g.summary.PackagesProcessed++
	g.summary.CasesFound += len(spec.Cases)
	g.diagnostics.Info("%s: %d match case(s) in package %s", dir, len(spec.Cases), spec.PackageName)

	if g.config.Verbose {
		for _, c := range spec.Cases {
			g.lintCase(dir, c)
		}
	}

	source, err := g.renderer.GenerateTestFile(*spec)
	if err != nil {
		return err
	}

	outPath := filepath.Join(dir, generator.GeneratedFileName)
	formatted, err := utils.FormatGeneratedSource(outPath, []byte(source))
	if err != nil {
		return errors.Wrapf(errors.GenerationErrorCode, err, "formatting %s", outPath)
	}

	if err := os.WriteFile(outPath, formatted, 0644); err != nil {
		return errors.Wrapf(errors.FileSystemErrorCode, err, "writing %s", outPath)
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, outPath)
	g.diagnostics.Verbose("wrote %s", outPath)
	return nil
}

// lintCase resolves the declared signature right now and flags problems
// early. Advisory only; the generated test remains the authoritative check,
// and a malformed declared type string is deliberately not an error here.
func (g *Generator) lintCase(dir string, c models.MatchCase) {
	xmlPath := filepath.Join(dir, c.XMLPath)

	var sig sigmatch.Signature
	var err error
	switch c.Kind {
	case annotations.MethodReturnDirective:
		sig, err = sigmatch.MethodReturnSignature(xmlPath, c.Interface, c.Member)
	case annotations.SignalArgDirective:
		sig, err = sigmatch.SignalBodySignature(xmlPath, c.Interface, c.Member, c.Arg)
	default:
		sig, err = sigmatch.EventBodySignature(xmlPath, c.Interface, c.Member)
	}
	if err != nil {
		g.diagnostics.Warn("%s: %s will fail: %v", c.Location, c.TestName, err)
		return
	}
	if err := sig.Validate(); err != nil {
		g.diagnostics.Warn("%s: declared signature for %s %s does not parse: %v",
			c.Location, c.Interface, c.Member, err)
		return
	}
	g.diagnostics.Verbose("%s resolves to %s", c.TestName, sig)
}
