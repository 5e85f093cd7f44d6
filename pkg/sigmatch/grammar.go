package sigmatch

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar of the D-Bus type language: basic type codes, arrays, dict entries
// and structs. Only Parse/Validate go through this; the resolvers pass type
// strings through uninspected.

// signatureSpec is the root of a signature: zero or more complete types
type signatureSpec struct {
	Types []*typeSpec `parser:"@@*"`
}

// typeSpec is one complete type. A struct may be empty: "()" is the
// composed signature of a signal without arguments.
type typeSpec struct {
	Basic  string      `parser:"@(Basic | Variant)"`
	Array  *arraySpec  `parser:"| Array @@"`
	Struct []*typeSpec `parser:"| LParen @@* RParen"`
}

// arraySpec is the element of an array: a dict entry or any complete type
type arraySpec struct {
	Dict *dictSpec `parser:"@@"`
	Elem *typeSpec `parser:"| @@"`
}

// dictSpec is a dict entry; keys must be basic, non-container types, so
// Variant is not accepted there
type dictSpec struct {
	Key   string    `parser:"LBrace @Basic"`
	Value *typeSpec `parser:"@@ RBrace"`
}

var signatureParser = participle.MustBuild[signatureSpec](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Basic", Pattern: `[ybnqiuxtdhsog]`},
		{Name: "Variant", Pattern: `v`},
		{Name: "Array", Pattern: `a`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "LBrace", Pattern: `\{`},
		{Name: "RBrace", Pattern: `\}`},
	})),
	participle.UseLookahead(2),
)

// validateSignature parses s against the type grammar and reports the first
// syntax error, if any.
func validateSignature(s string) error {
	if s == "" {
		return fmt.Errorf("empty signature")
	}
	_, err := signatureParser.ParseString("", s)
	if err != nil {
		return fmt.Errorf("invalid signature %q: %w", s, err)
	}
	return nil
}
