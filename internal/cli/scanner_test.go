package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/sigmatch/internal/annotations"
	"github.com/toyz/sigmatch/internal/errors"
)

const annotatedSource = `package atspi

import "github.com/toyz/sigmatch/pkg/sigmatch"

// CacheItem mirrors the wire layout of one accessibility cache entry.
//
//sigmatch::signal_arg -XML=xml/Cache.xml -Interface=org.a11y.atspi.Cache -Signal=AddAccessible -Arg=nodeAdded
type CacheItem struct {
	Object sigmatch.ObjectPath
}

//sigmatch::event -Type=EventBody -XML=xml/Event.xml -Interface=org.a11y.atspi.Event.Object -Signal=StateChanged -Test=TestStateChanged
type EventBody struct{}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanPackage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cache.go", annotatedSource)

	spec, err := NewScanner().ScanPackage(dir)
	require.NoError(t, err)

	assert.Equal(t, "atspi", spec.PackageName)
	require.Len(t, spec.Cases, 2)

	first := spec.Cases[0]
	assert.Equal(t, annotations.SignalArgDirective, first.Kind)
	// -Type defaults to the annotated type declaration.
	assert.Equal(t, "CacheItem", first.TypeExpr)
	assert.Equal(t, "nodeAdded", first.Arg)
	assert.Equal(t, "TestCacheAddAccessibleNodeAddedSignature", first.TestName)

	second := spec.Cases[1]
	assert.Equal(t, annotations.EventDirective, second.Kind)
	assert.Equal(t, "EventBody", second.TypeExpr)
	assert.Equal(t, "TestStateChanged", second.TestName)
}

func TestScanPackageWithoutDirectives(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.go", "package plain\n\n// just a comment\nvar X = 1\n")

	spec, err := NewScanner().ScanPackage(dir)
	require.NoError(t, err)
	assert.Empty(t, spec.Cases)
	assert.Equal(t, "plain", spec.PackageName)
}

func TestScanPackageRejectsDetachedDirectiveWithoutType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loose.go", `package loose

//sigmatch::event -XML=xml/Event.xml -Interface=org.a11y.atspi.Event.Object -Signal=StateChanged
var x = 1
`)

	_, err := NewScanner().ScanPackage(dir)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.DirectiveValidationErrorCode))
}

func TestScanPackageNameFollowsDirectives(t *testing.T) {
	dir := t.TempDir()
	// Sorts ahead of cache.go but belongs to the external test package.
	writeFile(t, dir, "aaa_fixtures_test.go", "package atspi_test\n")
	writeFile(t, dir, "cache.go", annotatedSource)

	spec, err := NewScanner().ScanPackage(dir)
	require.NoError(t, err)
	assert.Equal(t, "atspi", spec.PackageName)
	assert.Len(t, spec.Cases, 2)
}

func TestScanPackageSkipsGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cache.go", annotatedSource)
	writeFile(t, dir, "autogen_sigmatch_test.go", "package atspi\n")

	spec, err := NewScanner().ScanPackage(dir)
	require.NoError(t, err)
	assert.Len(t, spec.Cases, 2)
}

func TestExpandDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/a.go", "package a\n")
	writeFile(t, root, "a/b/b.go", "package b\n")
	writeFile(t, root, "a/testdata/skip.go", "package skip\n")
	writeFile(t, root, "a/.hidden/skip.go", "package skip\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))

	dirs, err := NewScanner().ExpandDirectories([]string{root + "/..."})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
	}, dirs)
}

func TestExpandDirectoriesPassesPlainDirsThrough(t *testing.T) {
	dirs, err := NewScanner().ExpandDirectories([]string{"./pkg/atspi", "./pkg/atspi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"./pkg/atspi"}, dirs)
}
