package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/sigmatch/internal/generator"
	"github.com/toyz/sigmatch/internal/utils"
)

const cacheXML = `<node>
  <interface name="org.a11y.atspi.Cache">
    <signal name="AddAccessible">
      <arg name="nodeAdded" type="((so)(so)(so)a(so)assusau)"/>
    </signal>
  </interface>
</node>`

func newTestDiagnostics(level utils.DiagnosticLevel) (*utils.DiagnosticSystem, *bytes.Buffer) {
	diagnostics := utils.NewDiagnosticSystem(level)
	out := &bytes.Buffer{}
	diagnostics.SetOutput(out, out)
	return diagnostics, out
}

func writeAnnotatedPackage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "cache.go", annotatedSource)
	writeFile(t, dir, "xml/Cache.xml", cacheXML)
	return dir
}

func TestGenerateWritesTestFile(t *testing.T) {
	dir := writeAnnotatedPackage(t)
	diagnostics, _ := newTestDiagnostics(utils.DiagnosticError)

	driver := NewGenerator(Config{
		Directories: []string{dir},
		ModuleName:  "github.com/toyz/sigmatch",
	}, diagnostics)
	require.NoError(t, driver.Generate())

	summary := driver.Summary()
	assert.Equal(t, 1, summary.PackagesProcessed)
	assert.Equal(t, 2, summary.CasesFound)

	outPath := filepath.Join(dir, generator.GeneratedFileName)
	require.Equal(t, []string{outPath}, summary.GeneratedFiles)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	source := string(content)

	assert.True(t, strings.HasPrefix(source, generator.GeneratedHeader))
	assert.Contains(t, source, "package atspi")
	assert.Contains(t, source, "func TestCacheAddAccessibleNodeAddedSignature(t *testing.T)")
	assert.Contains(t, source,
		`sigmatch.SignalBodySignature("xml/Cache.xml", "org.a11y.atspi.Cache", "AddAccessible", "nodeAdded")`)
	assert.Contains(t, source, "func TestStateChanged(t *testing.T)")
}

func TestGenerateQualifiesImportForForkModule(t *testing.T) {
	dir := writeAnnotatedPackage(t)
	diagnostics, _ := newTestDiagnostics(utils.DiagnosticError)

	driver := NewGenerator(Config{
		Directories: []string{dir},
		ModuleName:  "example.com/fork",
	}, diagnostics)
	require.NoError(t, driver.Generate())

	content, err := os.ReadFile(filepath.Join(dir, generator.GeneratedFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"example.com/fork/pkg/sigmatch"`)
	assert.NotContains(t, string(content), `"github.com/toyz/sigmatch/pkg/sigmatch"`)
}

func TestGenerateSkipsPackagesWithoutDirectives(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.go", "package plain\n\nvar X = 1\n")
	diagnostics, _ := newTestDiagnostics(utils.DiagnosticError)

	driver := NewGenerator(Config{
		Directories: []string{dir},
		ModuleName:  "github.com/toyz/sigmatch",
	}, diagnostics)
	require.NoError(t, driver.Generate())

	assert.Equal(t, 0, driver.Summary().PackagesProcessed)
	_, err := os.Stat(filepath.Join(dir, generator.GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateVerboseWarnsOnUnresolvableDirective(t *testing.T) {
	dir := t.TempDir()
	// The directive points at an interface the document does not declare.
	writeFile(t, dir, "cache.go", annotatedSource)
	writeFile(t, dir, "xml/Cache.xml", `<node><interface name="org.other"/></node>`)
	writeFile(t, dir, "xml/Event.xml", `<node><interface name="org.other"/></node>`)
	diagnostics, out := newTestDiagnostics(utils.DiagnosticVerbose)

	driver := NewGenerator(Config{
		Directories: []string{dir},
		ModuleName:  "github.com/toyz/sigmatch",
		Verbose:     true,
	}, diagnostics)
	require.NoError(t, driver.Generate())

	// Linting is advisory; the file is still written.
	_, err := os.Stat(filepath.Join(dir, generator.GeneratedFileName))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "will fail")
}

func TestCleanRemovesOnlyGeneratedFiles(t *testing.T) {
	generated := writeAnnotatedPackage(t)
	diagnostics, _ := newTestDiagnostics(utils.DiagnosticError)
	driver := NewGenerator(Config{
		Directories: []string{generated},
		ModuleName:  "github.com/toyz/sigmatch",
	}, diagnostics)
	require.NoError(t, driver.Generate())

	// A hand-written file that happens to use the reserved name.
	handWritten := t.TempDir()
	writeFile(t, handWritten, generator.GeneratedFileName,
		"package atspi\n\nimport \"testing\"\n\nfunc TestKeep(t *testing.T) {}\n")

	removed, err := NewCleaner().Clean([]string{generated, handWritten})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(generated, generator.GeneratedFileName)}, removed)

	_, err = os.Stat(filepath.Join(generated, generator.GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(handWritten, generator.GeneratedFileName))
	assert.NoError(t, err)
}

func TestCleanWithNothingToRemove(t *testing.T) {
	removed, err := NewCleaner().Clean([]string{t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, removed)
}
