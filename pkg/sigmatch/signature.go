// Package sigmatch resolves expected D-Bus wire-format type signatures from
// XML introspection documents and derives signatures from Go types, so tests
// can assert that a hand-written binding layer matches the protocol
// definition it implements.
package sigmatch

import "fmt"

// Signature is an opaque wire-format type descriptor. Two signatures compare
// equal exactly when their textual forms are byte-identical.
type Signature struct {
	str string
}

// Unchecked constructs a Signature from s verbatim, without validating it
// against the type grammar. The resolvers use this deliberately: a malformed
// type string in the protocol definition must propagate to the equality
// check at the call site, because catching such drift is the whole point.
func Unchecked(s string) Signature {
	return Signature{str: s}
}

// Parse constructs a Signature after validating s against the D-Bus type
// grammar.
func Parse(s string) (Signature, error) {
	if err := validateSignature(s); err != nil {
		return Signature{}, err
	}
	return Signature{str: s}, nil
}

// MustParse is like Parse but panics on a malformed signature. For use in
// variable initializers and tests.
func MustParse(s string) Signature {
	sig, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("sigmatch: invalid signature %q: %v", s, err))
	}
	return sig
}

// String returns the textual form of the signature.
func (s Signature) String() string {
	return s.str
}

// Validate checks the signature against the D-Bus type grammar. Resolver
// output is never validated implicitly; this is an opt-in lint.
func (s Signature) Validate() error {
	return validateSignature(s.str)
}
