package generator

// Template for one generated signature-match test file. One file per
// package; one test function per match case.

// GeneratedFileName is the fixed name of the test file written into each
// annotated package
const GeneratedFileName = "autogen_sigmatch_test.go"

// GeneratedHeader is the first line of every generated file; the cleaner
// refuses to delete files that do not start with it
const GeneratedHeader = "// Code generated by sigmatch. DO NOT EDIT."

// DefaultLibraryImport is the import path of the resolver library referenced
// by generated tests. Forks and vendored copies redirect it through the
// CLI's module resolution.
const DefaultLibraryImport = "github.com/toyz/sigmatch/pkg/sigmatch"

const testFileTemplate = `{{.Header}}
//
// Signature-match tests for package {{.PackageName}}.
// Regenerate with: sigmatch ./...

package {{.PackageName}}

import (
	"testing"

	"{{.LibraryImport}}"
)
{{range .Cases}}
// {{.TestName}} checks {{.Interface}} {{.MemberKind}} {{.Member}} against {{.TypeExpr}}.
func {{.TestName}}(t *testing.T) {
	sig, err := {{.Call}}
	if err != nil {
		t.Fatalf("resolving declared signature: %v", err)
	}
	if want := sigmatch.MustSignatureOf({{.TypeExpr}}{}); sig != want {
		t.Errorf("protocol declares %s, Go type {{.TypeExpr}} declares %s", sig, want)
	}
}
{{end}}`
