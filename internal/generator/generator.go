// Package generator renders signature-match test files from scanned match
// cases.
package generator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/toyz/sigmatch/internal/annotations"
	"github.com/toyz/sigmatch/internal/errors"
	"github.com/toyz/sigmatch/internal/models"
)

// Generator renders test files for packages with sigmatch directives
type Generator struct {
	template      *template.Template
	libraryImport string
}

// New creates a generator referencing the canonical library import path
func New() *Generator {
	return NewWithImport(DefaultLibraryImport)
}

// NewWithImport creates a generator whose output imports the resolver
// library from importPath instead of the canonical one
func NewWithImport(importPath string) *Generator {
	if importPath == "" {
		importPath = DefaultLibraryImport
	}
	return &Generator{
		template:      template.Must(template.New("testfile").Parse(testFileTemplate)),
		libraryImport: importPath,
	}
}

// fileView is the template root
type fileView struct {
	Header        string
	PackageName   string
	LibraryImport string
	Cases         []caseView
}

// caseView is one test function in the template
type caseView struct {
	TestName   string
	TypeExpr   string
	Interface  string
	Member     string
	MemberKind string
	Call       string
}

// GenerateTestFile renders the test source for one package. The output is
// unformatted; callers run it through the formatter before writing.
func (g *Generator) GenerateTestFile(spec models.PackageSpec) (string, error) {
	if spec.PackageName == "" {
		return "", errors.Newf(errors.GenerationErrorCode,
			"package in %s has no package name", spec.Dir)
	}
	if len(spec.Cases) == 0 {
		return "", errors.Newf(errors.GenerationErrorCode,
			"no match cases to generate for package %s", spec.PackageName)
	}

	view := fileView{
		Header:        GeneratedHeader,
		PackageName:   spec.PackageName,
		LibraryImport: g.libraryImport,
	}

	seen := make(map[string]annotations.SourceLocation)
	for _, c := range spec.Cases {
		if prev, dup := seen[c.TestName]; dup {
			return "", errors.Newf(errors.GenerationErrorCode,
				"%s: duplicate test name %s (first declared at %s)", c.Location, c.TestName, prev).
				WithHint("give one of the directives an explicit -Test name")
		}
		seen[c.TestName] = c.Location

		view.Cases = append(view.Cases, caseView{
			TestName:   c.TestName,
			TypeExpr:   c.TypeExpr,
			Interface:  c.Interface,
			Member:     c.Member,
			MemberKind: c.MemberKind(),
			Call:       resolverCall(c),
		})
	}

	var out strings.Builder
	if err := g.template.Execute(&out, view); err != nil {
		return "", errors.Wrapf(errors.TemplateErrorCode, err,
			"rendering test file for package %s", spec.PackageName)
	}
	return out.String(), nil
}

// resolverCall builds the Go expression invoking the resolver that backs the
// directive kind
func resolverCall(c models.MatchCase) string {
	switch c.Kind {
	case annotations.SignalArgDirective:
		return fmt.Sprintf("sigmatch.SignalBodySignature(%q, %q, %q, %q)",
			c.XMLPath, c.Interface, c.Member, c.Arg)
	case annotations.MethodReturnDirective:
		return fmt.Sprintf("sigmatch.MethodReturnSignature(%q, %q, %q)",
			c.XMLPath, c.Interface, c.Member)
	default:
		return fmt.Sprintf("sigmatch.EventBodySignature(%q, %q, %q)",
			c.XMLPath, c.Interface, c.Member)
	}
}
