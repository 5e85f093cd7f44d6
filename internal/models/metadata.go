// Package models holds the metadata passed from directive scanning to code
// generation.
package models

import (
	"strings"
	"unicode"

	"github.com/toyz/sigmatch/internal/annotations"
)

// MatchCase is one signature-match assertion to generate: a resolver call
// over an introspection document compared against a Go type's own signature.
type MatchCase struct {
	Kind      annotations.DirectiveKind // which resolver the assertion uses
	TestName  string                    // generated test function name
	TypeExpr  string                    // Go type to derive the in-code signature from
	XMLPath   string                    // introspection document, relative to the package
	Interface string                    // interface name within the document
	Member    string                    // signal or method name
	Arg       string                    // argument name, signal_arg only
	Location  annotations.SourceLocation
}

// MemberKind returns "signal" or "method" for display in generated comments
func (c MatchCase) MemberKind() string {
	if c.Kind == annotations.MethodReturnDirective {
		return "method"
	}
	return "signal"
}

// PackageSpec collects the match cases found in one Go package
type PackageSpec struct {
	Dir         string      // package directory
	PackageName string      // package identifier from the scanned sources
	Cases       []MatchCase // in scan order
}

// DefaultTestName derives a test function name when the directive does not
// give one: the capitalized interface segments, the member, the argument if
// any, and a suffix naming the resolver. For example
// (event, org.a11y.atspi.Event.Object, StateChanged) becomes
// TestEventObjectStateChangedEventSignature.
func DefaultTestName(kind annotations.DirectiveKind, iface, member, arg string) string {
	var name strings.Builder
	name.WriteString("Test")

	// Reverse-domain interface names carry their type-like segments
	// capitalized; the lowercase prefix is the namespace.
	for _, segment := range strings.Split(iface, ".") {
		if segment != "" && unicode.IsUpper(rune(segment[0])) {
			name.WriteString(sanitizeIdent(segment))
		}
	}

	name.WriteString(sanitizeIdent(member))
	name.WriteString(exportIdent(arg))

	switch kind {
	case annotations.EventDirective:
		name.WriteString("EventSignature")
	case annotations.MethodReturnDirective:
		name.WriteString("ReturnSignature")
	default:
		name.WriteString("Signature")
	}

	return name.String()
}

// sanitizeIdent strips anything that cannot appear in a Go identifier
func sanitizeIdent(s string) string {
	var out strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// exportIdent sanitizes and upper-cases the first rune
func exportIdent(s string) string {
	s = sanitizeIdent(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
