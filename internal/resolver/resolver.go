// Package resolver computes expected wire-format type strings from parsed
// introspection documents. Each resolver is a pure function of
// (document, interface name, member name, optional argument name); no state
// survives a call.
package resolver

import (
	"strings"

	"github.com/toyz/sigmatch/internal/errors"
	"github.com/toyz/sigmatch/internal/introspect"
)

// SignalArgument returns the declared type string of the named argument of a
// signal. Arguments are scanned in declaration order; the first one whose
// name equals argName wins.
func SignalArgument(doc *introspect.Node, ifaceName, signalName, argName string) (string, error) {
	signal, err := findSignal(doc, ifaceName, signalName)
	if err != nil {
		return "", err
	}

	for _, arg := range signal.Args {
		if arg.Name == argName {
			return arg.Type, nil
		}
	}

	return "", errors.NewArgumentNotFoundError(signalName, argName, argNames(signal.Args))
}

// MethodReturn returns the declared type string of the method's output
// argument. The protocol convention assumes at most one meaningful return
// value per method; if a method declares multiple out arguments only the
// first encountered is used.
func MethodReturn(doc *introspect.Node, ifaceName, methodName string) (string, error) {
	iface, err := doc.Interface(ifaceName)
	if err != nil {
		return "", err
	}
	method, err := iface.Method(methodName)
	if err != nil {
		return "", err
	}

	for _, arg := range method.Args {
		if arg.Direction == "out" {
			return arg.Type, nil
		}
	}

	return "", errors.NewNoOutputArgumentError(methodName, len(method.Args))
}

// EventBody composes the signal's whole payload type: every argument's type
// string in declaration order, wrapped in a single parenthesized aggregate.
// A signal without arguments yields "()". Argument names play no role here,
// and type strings are passed through uninspected.
func EventBody(doc *introspect.Node, ifaceName, signalName string) (string, error) {
	signal, err := findSignal(doc, ifaceName, signalName)
	if err != nil {
		return "", err
	}

	var body strings.Builder
	body.WriteByte('(')
	for _, arg := range signal.Args {
		body.WriteString(arg.Type)
	}
	body.WriteByte(')')

	return body.String(), nil
}

// findSignal locates a signal through the shared interface/member lookup.
func findSignal(doc *introspect.Node, ifaceName, signalName string) (*introspect.Signal, error) {
	iface, err := doc.Interface(ifaceName)
	if err != nil {
		return nil, err
	}
	return iface.Signal(signalName)
}

func argNames(args []introspect.Arg) []string {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.Name != "" {
			names = append(names, arg.Name)
		}
	}
	return names
}
