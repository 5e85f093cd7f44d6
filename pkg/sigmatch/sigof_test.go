package sigmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessibleRef struct {
	Name string
	Path ObjectPath
}

type cacheItem struct {
	Object      accessibleRef
	Application accessibleRef
	Parent      accessibleRef
	Children    []accessibleRef
	Interfaces  []string
	Name        string
	Role        uint32
	Description string
	States      []uint32
}

type eventBody struct {
	Kind       string
	Detail1    int32
	Detail2    int32
	AnyData    Variant
	Properties map[string]Variant
}

type withUnexported struct {
	Name   string
	hidden int64
	Role   uint32
}

var sigOfTests = []struct {
	v   interface{}
	sig string
}{
	{int32(0), "i"},
	{"", "s"},
	{uint8(0), "y"},
	{true, "b"},
	{int16(0), "n"},
	{uint16(0), "q"},
	{uint32(0), "u"},
	{int64(0), "x"},
	{uint64(0), "t"},
	{float64(0), "d"},
	{ObjectPath("/org/a11y"), "o"},
	{Signature{}, "g"},
	{Variant{}, "v"},
	{[]int16{}, "an"},
	{map[uint8]Variant{}, "a{yv}"},
	{[]map[int32]string{}, "aa{is}"},
	{new(int32), "i"},
	{accessibleRef{}, "(so)"},
	{cacheItem{}, "((so)(so)(so)a(so)assusau)"},
	{eventBody{}, "(siiva{sv})"},
	{withUnexported{}, "(su)"},
	{struct{}{}, "()"},
}

func TestSignatureOf(t *testing.T) {
	for _, tt := range sigOfTests {
		sig, err := SignatureOf(tt.v)
		require.NoError(t, err, "SignatureOf(%T)", tt.v)
		assert.Equal(t, tt.sig, sig.String(), "SignatureOf(%T)", tt.v)

		// Everything the deriver emits must satisfy the grammar.
		assert.NoError(t, sig.Validate(), "SignatureOf(%T)", tt.v)
	}
}

func TestSignatureOfRejectsUnrepresentableTypes(t *testing.T) {
	for _, v := range []interface{}{
		nil,
		int(0),       // plain int has no fixed width on the wire
		uint(0),      // same
		float32(0),   // wire format only has double
		complex128(0), // no complex numbers on the wire
		map[accessibleRef]string{}, // struct keys are not basic types
		func() {},
	} {
		_, err := SignatureOf(v)
		assert.Error(t, err, "SignatureOf(%T) should fail", v)
	}
}

func TestSignatureOfRejectsSelfReferentialTypes(t *testing.T) {
	type tree struct {
		Label string
		Kids  []tree
	}
	_, err := SignatureOf(tree{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nests deeper")

	type list struct {
		Value int32
		Next  *list
	}
	_, err = SignatureOf(list{})
	assert.Error(t, err)
}

func TestMustSignatureOf(t *testing.T) {
	assert.Equal(t, Unchecked("(so)"), MustSignatureOf(accessibleRef{}))
	assert.Panics(t, func() { MustSignatureOf(int(0)) })
}
