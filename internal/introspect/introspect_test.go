package introspect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/sigmatch/internal/errors"
)

const cacheXML = `<node>
  <interface name="org.a11y.atspi.Cache">
    <method name="GetItems">
      <arg direction="out" name="nodes" type="a((so)(so)(so)a(so)assusau)"/>
    </method>
    <signal name="AddAccessible">
      <arg name="nodeAdded" type="((so)(so)(so)a(so)assusau)"/>
    </signal>
  </interface>
  <interface name="org.a11y.atspi.Application">
    <method name="GetLocale">
      <arg direction="in" name="lctype" type="u"/>
      <arg direction="out" name="locale" type="s"/>
    </method>
    <signal name="GetLocale"/>
  </interface>
</node>`

func TestParsePreservesDeclarationOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(cacheXML))
	require.NoError(t, err)

	require.Len(t, doc.Interfaces, 2)
	assert.Equal(t, "org.a11y.atspi.Cache", doc.Interfaces[0].Name)
	assert.Equal(t, "org.a11y.atspi.Application", doc.Interfaces[1].Name)

	cache := doc.Interfaces[0]
	require.Len(t, cache.Methods, 1)
	require.Len(t, cache.Methods[0].Args, 1)
	assert.Equal(t, "out", cache.Methods[0].Args[0].Direction)
	assert.Equal(t, "a((so)(so)(so)a(so)assusau)", cache.Methods[0].Args[0].Type)

	require.Len(t, cache.Signals, 1)
	assert.Equal(t, "nodeAdded", cache.Signals[0].Args[0].Name)
	assert.Empty(t, cache.Signals[0].Args[0].Direction)
}

func TestInterfaceLookup(t *testing.T) {
	doc, err := Parse(strings.NewReader(cacheXML))
	require.NoError(t, err)

	iface, err := doc.Interface("org.a11y.atspi.Cache")
	require.NoError(t, err)
	assert.Equal(t, "org.a11y.atspi.Cache", iface.Name)

	// Exact and case-sensitive.
	_, err = doc.Interface("org.a11y.atspi.cache")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.InterfaceNotFoundErrorCode))

	_, err = doc.Interface("org.a11y.atspi.Component")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.InterfaceNotFoundErrorCode))
	assert.Contains(t, err.Error(), "org.a11y.atspi.Component")
}

func TestMemberLookupIsScopedPerCollection(t *testing.T) {
	doc, err := Parse(strings.NewReader(cacheXML))
	require.NoError(t, err)

	app, err := doc.Interface("org.a11y.atspi.Application")
	require.NoError(t, err)

	// A method and a signal share the name GetLocale; each lookup only
	// sees its own collection.
	method, err := app.Method("GetLocale")
	require.NoError(t, err)
	assert.Len(t, method.Args, 2)

	signal, err := app.Signal("GetLocale")
	require.NoError(t, err)
	assert.Empty(t, signal.Args)

	_, err = app.Method("GetLocales")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.MemberNotFoundErrorCode))

	_, err = app.Signal("getLocale")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.MemberNotFoundErrorCode))
}

func TestLookupIsDeterministic(t *testing.T) {
	doc, err := Parse(strings.NewReader(cacheXML))
	require.NoError(t, err)

	first, err := doc.Interface("org.a11y.atspi.Cache")
	require.NoError(t, err)
	second, err := doc.Interface("org.a11y.atspi.Cache")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cache.xml")
	require.NoError(t, os.WriteFile(path, []byte(cacheXML), 0644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Interfaces, 2)
}

func TestParseFileMissingDocument(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.xml"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.DocumentReadErrorCode))
}

func TestParseFileMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<node><interface"), 0644))

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.DocumentParseErrorCode))
}
