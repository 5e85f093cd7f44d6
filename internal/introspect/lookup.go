package introspect

import "github.com/toyz/sigmatch/internal/errors"

// Lookup helpers. All of them are linear scans over declaration order with
// exact, case-sensitive matching; the first match wins. No index is built
// because documents are small and every resolver call is independent.

// Interface returns the root-level interface with the given name.
func (n *Node) Interface(name string) (*Interface, error) {
	for i := range n.Interfaces {
		if n.Interfaces[i].Name == name {
			return &n.Interfaces[i], nil
		}
	}
	return nil, errors.NewInterfaceNotFoundError(name, n.interfaceNames())
}

// Method returns the method with the given name. Methods and signals are
// separate collections, so a signal sharing the name is never considered.
func (i *Interface) Method(name string) (*Method, error) {
	for m := range i.Methods {
		if i.Methods[m].Name == name {
			return &i.Methods[m], nil
		}
	}
	return nil, errors.NewMemberNotFoundError("method", i.Name, name, i.methodNames())
}

// Signal returns the signal with the given name.
func (i *Interface) Signal(name string) (*Signal, error) {
	for s := range i.Signals {
		if i.Signals[s].Name == name {
			return &i.Signals[s], nil
		}
	}
	return nil, errors.NewMemberNotFoundError("signal", i.Name, name, i.signalNames())
}

func (n *Node) interfaceNames() []string {
	names := make([]string, 0, len(n.Interfaces))
	for _, iface := range n.Interfaces {
		names = append(names, iface.Name)
	}
	return names
}

func (i *Interface) methodNames() []string {
	names := make([]string, 0, len(i.Methods))
	for _, m := range i.Methods {
		names = append(names, m.Name)
	}
	return names
}

func (i *Interface) signalNames() []string {
	names := make([]string, 0, len(i.Signals))
	for _, s := range i.Signals {
		names = append(names, s.Name)
	}
	return names
}
