package sigmatch

import (
	"fmt"
	"reflect"
)

// ObjectPath is a D-Bus object path ("o" on the wire).
type ObjectPath string

// Variant holds a value of any D-Bus type ("v" on the wire).
type Variant struct {
	Value interface{}
}

var (
	signatureType  = reflect.TypeOf(Signature{})
	objectPathType = reflect.TypeOf(ObjectPath(""))
	variantType    = reflect.TypeOf(Variant{})
	interfaceType  = reflect.TypeOf((*interface{})(nil)).Elem()
)

// SignatureOf derives the wire-format signature of v's Go type: the in-code
// side of a signature comparison. Structs map to parenthesized aggregates,
// slices to arrays, maps to dict-entry arrays; plain int/uint are rejected
// because the wire format only has fixed-width integers.
func SignatureOf(v interface{}) (Signature, error) {
	if v == nil {
		return Signature{}, fmt.Errorf("cannot derive a signature from a nil value")
	}
	s, err := typeSignature(reflect.TypeOf(v), 0)
	if err != nil {
		return Signature{}, err
	}
	return Signature{str: s}, nil
}

// MustSignatureOf is like SignatureOf but panics on an unrepresentable type.
// Generated tests use it so a bad annotation fails loudly.
func MustSignatureOf(v interface{}) Signature {
	sig, err := SignatureOf(v)
	if err != nil {
		panic(fmt.Sprintf("sigmatch: %v", err))
	}
	return sig
}

// maxTypeDepth bounds type recursion. The wire format caps container
// nesting well below this; the bound exists so self-referential Go types,
// which have no wire representation, error out instead of recursing forever.
const maxTypeDepth = 64

// typeSignature maps one Go type onto its wire-format type string.
func typeSignature(t reflect.Type, depth int) (string, error) {
	if depth > maxTypeDepth {
		return "", fmt.Errorf("type %s nests deeper than %d levels and cannot be a D-Bus type", t, maxTypeDepth)
	}

	switch t {
	case signatureType:
		return "g", nil
	case objectPathType:
		return "o", nil
	case variantType, interfaceType:
		return "v", nil
	}

	switch t.Kind() {
	case reflect.Uint8:
		return "y", nil
	case reflect.Bool:
		return "b", nil
	case reflect.Int16:
		return "n", nil
	case reflect.Uint16:
		return "q", nil
	case reflect.Int32:
		return "i", nil
	case reflect.Uint32:
		return "u", nil
	case reflect.Int64:
		return "x", nil
	case reflect.Uint64:
		return "t", nil
	case reflect.Float64:
		return "d", nil
	case reflect.String:
		return "s", nil
	case reflect.Ptr:
		return typeSignature(t.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		elem, err := typeSignature(t.Elem(), depth+1)
		if err != nil {
			return "", err
		}
		return "a" + elem, nil
	case reflect.Map:
		key, err := typeSignature(t.Key(), depth+1)
		if err != nil {
			return "", err
		}
		if len(key) != 1 || key == "v" {
			return "", fmt.Errorf("map key type %s is not a basic D-Bus type", t.Key())
		}
		value, err := typeSignature(t.Elem(), depth+1)
		if err != nil {
			return "", err
		}
		return "a{" + key + value + "}", nil
	case reflect.Struct:
		return structSignature(t, depth)
	default:
		return "", fmt.Errorf("cannot represent Go type %s as a D-Bus type", t)
	}
}

// structSignature aggregates the exported fields of a struct type, in field
// order, into a parenthesized signature.
func structSignature(t reflect.Type, depth int) (string, error) {
	sig := "("
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldSig, err := typeSignature(field.Type, depth+1)
		if err != nil {
			return "", fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		sig += fieldSig
	}
	return sig + ")", nil
}
