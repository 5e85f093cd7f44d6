package cli

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/sigmatch/internal/annotations"
	"github.com/toyz/sigmatch/internal/errors"
	"github.com/toyz/sigmatch/internal/generator"
	"github.com/toyz/sigmatch/internal/models"
)

// Scanner finds //sigmatch:: directives in Go source trees
type Scanner struct {
	fset   *token.FileSet
	parser *annotations.Parser
}

// NewScanner creates a scanner using the default directive schemas
func NewScanner() *Scanner {
	return &Scanner{
		fset:   token.NewFileSet(),
		parser: annotations.NewParser(annotations.DefaultRegistry()),
	}
}

// ExpandDirectories resolves the directory arguments, expanding "./..."
// patterns into every subdirectory containing Go files. Hidden directories,
// vendor and testdata are skipped.
func (s *Scanner) ExpandDirectories(patterns []string) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			base := strings.TrimSuffix(pattern, "/...")
			if base == "" {
				base = "."
			}
			err := filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					return nil
				}
				name := d.Name()
				if path != base && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
					name == "vendor" || name == "testdata") {
					return filepath.SkipDir
				}
				if hasGoFiles(path) && !seen[path] {
					seen[path] = true
					dirs = append(dirs, path)
				}
				return nil
			})
			if err != nil {
				return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "scanning %s", pattern)
			}
		} else {
			if !seen[pattern] {
				seen[pattern] = true
				dirs = append(dirs, pattern)
			}
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// ScanPackage parses the Go files in dir and collects their sigmatch
// directives. Returns a spec with no cases when the package has none.
func (s *Scanner) ScanPackage(dir string) (*models.PackageSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "reading directory %s", dir)
	}

	spec := &models.PackageSpec{Dir: dir}
	named := false

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		// Never rescan our own output.
		if name == generator.GeneratedFileName {
			continue
		}

		directives, packageName, err := s.scanFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		// The generated file must land in the package that declared the
		// directives; a directory mixing foo and foo_test files can list a
		// non-contributing file first.
		if len(directives) > 0 && !named {
			spec.PackageName = packageName
			named = true
		} else if spec.PackageName == "" {
			spec.PackageName = packageName
		}

		for _, d := range directives {
			matchCase, err := buildMatchCase(d)
			if err != nil {
				return nil, err
			}
			spec.Cases = append(spec.Cases, matchCase)
		}
	}

	return spec, nil
}

// scanFile parses one Go file and returns its directives in source order.
// The package name of test files keeps any _test suffix so generated code
// lands in the right package.
func (s *Scanner) scanFile(path string) ([]*annotations.ParsedDirective, string, error) {
	file, err := parser.ParseFile(s.fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, "", errors.Wrapf(errors.DirectiveSyntaxErrorCode, err, "parsing %s", path)
	}

	// Map doc comment groups to the type declaration they document, so a
	// directive attached to a type can default -Type to it.
	targets := make(map[*ast.CommentGroup]string)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Doc == nil || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			if typeSpec, ok := spec.(*ast.TypeSpec); ok {
				targets[genDecl.Doc] = typeSpec.Name.Name
				break
			}
		}
	}

	var directives []*annotations.ParsedDirective
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !annotations.IsDirective(comment.Text) {
				continue
			}
			pos := s.fset.Position(comment.Slash)
			location := annotations.SourceLocation{
				File:   pos.Filename,
				Line:   pos.Line,
				Column: pos.Column,
			}
			parsed, err := s.parser.ParseDirective(comment.Text, location)
			if err != nil {
				return nil, "", err
			}
			parsed.Target = targets[group]
			directives = append(directives, parsed)
		}
	}

	return directives, file.Name.Name, nil
}

// buildMatchCase converts a validated directive into generation metadata,
// resolving the defaulted parameters
func buildMatchCase(d *annotations.ParsedDirective) (models.MatchCase, error) {
	typeExpr := d.Get("Type", d.Target)
	if typeExpr == "" {
		return models.MatchCase{}, errors.Newf(errors.DirectiveValidationErrorCode,
			"%s: directive names no -Type and is not attached to a type declaration", d.Location).
			WithHint("attach the //sigmatch:: comment to a type, or pass -Type explicitly")
	}

	member := d.Get("Signal")
	arg := ""
	switch d.Kind {
	case annotations.MethodReturnDirective:
		member = d.Get("Method")
	case annotations.SignalArgDirective:
		arg = d.Get("Arg")
	}

	testName := d.Get("Test")
	if testName == "" {
		testName = models.DefaultTestName(d.Kind, d.Get("Interface"), member, arg)
	}

	return models.MatchCase{
		Kind:      d.Kind,
		TestName:  testName,
		TypeExpr:  typeExpr,
		XMLPath:   d.Get("XML"),
		Interface: d.Get("Interface"),
		Member:    member,
		Arg:       arg,
		Location:  d.Location,
	}, nil
}

// hasGoFiles reports whether dir directly contains at least one Go file
func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return true
		}
	}
	return false
}
