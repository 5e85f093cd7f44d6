package sigmatch

import (
	"github.com/toyz/sigmatch/internal/introspect"
	"github.com/toyz/sigmatch/internal/resolver"
)

// The three resolver entry points share one shape: open and parse the
// document, locate the interface and member, select or aggregate arguments,
// and hand back the result as an unchecked Signature. Every call re-parses
// the document from scratch; there is no shared state, so concurrent calls
// need no coordination.

// SignalBodySignature returns the declared type signature of one named
// argument of a signal. Matching is exact and case-sensitive.
func SignalBodySignature(path, ifaceName, memberName, argName string) (Signature, error) {
	doc, err := introspect.ParseFile(path)
	if err != nil {
		return Signature{}, err
	}
	s, err := resolver.SignalArgument(doc, ifaceName, memberName, argName)
	if err != nil {
		return Signature{}, err
	}
	return Unchecked(s), nil
}

// MethodReturnSignature returns the declared type signature of the method's
// sole out-direction argument (the first one in declaration order, should the
// definition declare several).
func MethodReturnSignature(path, ifaceName, memberName string) (Signature, error) {
	doc, err := introspect.ParseFile(path)
	if err != nil {
		return Signature{}, err
	}
	s, err := resolver.MethodReturn(doc, ifaceName, memberName)
	if err != nil {
		return Signature{}, err
	}
	return Unchecked(s), nil
}

// EventBodySignature returns the composite signature of a signal's whole
// payload: all argument types in declaration order, wrapped in a single
// parenthesized aggregate. A signal without arguments yields "()".
func EventBodySignature(path, ifaceName, memberName string) (Signature, error) {
	doc, err := introspect.ParseFile(path)
	if err != nil {
		return Signature{}, err
	}
	s, err := resolver.EventBody(doc, ifaceName, memberName)
	if err != nil {
		return Signature{}, err
	}
	return Unchecked(s), nil
}
