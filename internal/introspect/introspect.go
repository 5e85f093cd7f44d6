// Package introspect models D-Bus introspection documents. It isolates the
// XML decode step behind a narrow contract (document text in,
// interface/member/argument tree out) so the resolver logic stays decoder-agnostic.
package introspect

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/toyz/sigmatch/internal/errors"
)

// Node is the root element of an introspection document. A node owns the
// interfaces declared at its level plus any nested child nodes.
type Node struct {
	XMLName    xml.Name    `xml:"node"`
	Name       string      `xml:"name,attr,omitempty"`
	Interfaces []Interface `xml:"interface"`
	Children   []Node      `xml:"node,omitempty"`
}

// Interface describes one D-Bus interface with its methods and signals in
// declaration order.
type Interface struct {
	Name        string       `xml:"name,attr"`
	Methods     []Method     `xml:"method"`
	Signals     []Signal     `xml:"signal"`
	Properties  []Property   `xml:"property"`
	Annotations []Annotation `xml:"annotation"`
}

// Method describes a request/response call. Arguments carry an in/out
// direction tag.
type Method struct {
	Name        string       `xml:"name,attr"`
	Args        []Arg        `xml:"arg"`
	Annotations []Annotation `xml:"annotation"`
}

// Signal describes a one-way message. Signal arguments carry no meaningful
// direction; their optional names act as discriminators.
type Signal struct {
	Name        string       `xml:"name,attr"`
	Args        []Arg        `xml:"arg"`
	Annotations []Annotation `xml:"annotation"`
}

// Property describes a property of an interface. Carried for completeness;
// the resolvers never consult properties.
type Property struct {
	Name        string       `xml:"name,attr"`
	Type        string       `xml:"type,attr"`
	Access      string       `xml:"access,attr"`
	Annotations []Annotation `xml:"annotation"`
}

// Arg represents an argument of a method or a signal.
type Arg struct {
	// May be empty.
	Name string `xml:"name,attr"`

	// Wire-format type string. Never validated here; a malformed type
	// propagates verbatim so the equality check at the call site surfaces it.
	Type string `xml:"type,attr"`

	// "in" or "out" for methods, empty for signals.
	Direction string `xml:"direction,attr"`
}

// Annotation is a name/value annotation in the introspection format.
type Annotation struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Parse decodes an introspection document from r.
func Parse(r io.Reader) (*Node, error) {
	var node Node
	if err := xml.NewDecoder(r).Decode(&node); err != nil {
		return nil, errors.NewDocumentParseError("<reader>", err)
	}
	return &node, nil
}

// ParseFile reads and decodes the introspection document at path. Each call
// parses from scratch; documents are small and this runs at test time only.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDocumentReadError(path, err)
	}
	defer f.Close()

	var node Node
	if err := xml.NewDecoder(f).Decode(&node); err != nil {
		return nil, errors.NewDocumentParseError(path, err)
	}
	return &node, nil
}
