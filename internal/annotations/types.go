package annotations

import "fmt"

// DirectiveKind represents the kind of sigmatch directive
type DirectiveKind int

const (
	EventDirective DirectiveKind = iota
	SignalArgDirective
	MethodReturnDirective
)

// String returns the string representation of the directive kind
func (k DirectiveKind) String() string {
	switch k {
	case EventDirective:
		return "event"
	case SignalArgDirective:
		return "signal_arg"
	case MethodReturnDirective:
		return "method_return"
	default:
		return "unknown"
	}
}

// ParseDirectiveKind converts a string to a DirectiveKind
func ParseDirectiveKind(s string) (DirectiveKind, error) {
	switch s {
	case "event":
		return EventDirective, nil
	case "signal_arg":
		return SignalArgDirective, nil
	case "method_return":
		return MethodReturnDirective, nil
	default:
		return 0, fmt.Errorf("unknown directive kind: %s", s)
	}
}

// SourceLocation represents the location of a directive in source code
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// String returns a formatted representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	if s.Column == 0 {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// ParsedDirective represents a fully parsed sigmatch directive
type ParsedDirective struct {
	Kind     DirectiveKind     // directive kind enum
	Target   string            // name of the type declaration the directive is attached to, if any
	Params   map[string]string // parameter values by key
	Location SourceLocation    // source location
	Raw      string            // original directive text
}

// Get returns a parameter value, or the first default if the key is absent
func (d *ParsedDirective) Get(key string, defaultValue ...string) string {
	if value, exists := d.Params[key]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// Has reports whether the parameter was given explicitly
func (d *ParsedDirective) Has(key string) bool {
	_, exists := d.Params[key]
	return exists
}
