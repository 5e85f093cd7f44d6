package annotations

import (
	"fmt"
	"regexp"
	"strings"
)

// ParameterSpec describes one directive parameter
type ParameterSpec struct {
	Required    bool
	Description string
	Validator   func(value string) error
}

// DirectiveSchema describes the parameters a directive kind accepts
type DirectiveSchema struct {
	Kind        DirectiveKind
	Description string
	Parameters  map[string]ParameterSpec
	Examples    []string
}

var goIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validGoIdent(value string) error {
	if !goIdentPattern.MatchString(value) {
		return fmt.Errorf("must be a valid Go identifier, got %q", value)
	}
	return nil
}

func validTestName(value string) error {
	if err := validGoIdent(value); err != nil {
		return err
	}
	if !strings.HasPrefix(value, "Test") {
		return fmt.Errorf("must start with \"Test\" so the go test runner picks it up, got %q", value)
	}
	return nil
}

func nonEmpty(value string) error {
	if value == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

// commonParameters are shared by every directive kind
func commonParameters() map[string]ParameterSpec {
	return map[string]ParameterSpec{
		"XML": {
			Required:    true,
			Description: "Path to the introspection document, relative to the annotated package",
			Validator:   nonEmpty,
		},
		"Interface": {
			Required:    true,
			Description: "Interface name, reverse-domain convention (e.g. org.a11y.atspi.Cache)",
			Validator:   nonEmpty,
		},
		"Type": {
			Required:    false,
			Description: "Go type to compare against; defaults to the annotated type declaration",
			Validator:   validGoIdent,
		},
		"Test": {
			Required:    false,
			Description: "Name of the generated test function; derived from interface and member if omitted",
			Validator:   validTestName,
		},
	}
}

// EventDirectiveSchema defines //sigmatch::event: the whole signal payload,
// aggregated in declaration order, against one Go type
var EventDirectiveSchema = DirectiveSchema{
	Kind:        EventDirective,
	Description: "Asserts that a signal's composed event-body signature matches a Go type",
	Parameters: withCommon(map[string]ParameterSpec{
		"Signal": {
			Required:    true,
			Description: "Signal name within the interface",
			Validator:   nonEmpty,
		},
	}),
	Examples: []string{
		`//sigmatch::event -XML=testdata/xml/Event.xml -Interface=org.a11y.atspi.Event.Object -Signal=StateChanged`,
		`//sigmatch::event -Type=EventBody -XML=testdata/xml/Event.xml -Interface=org.a11y.atspi.Event.Mouse -Signal=Abs -Test=TestMouseAbsSignature`,
	},
}

// SignalArgDirectiveSchema defines //sigmatch::signal_arg: one named signal
// argument against one Go type
var SignalArgDirectiveSchema = DirectiveSchema{
	Kind:        SignalArgDirective,
	Description: "Asserts that one named signal argument's signature matches a Go type",
	Parameters: withCommon(map[string]ParameterSpec{
		"Signal": {
			Required:    true,
			Description: "Signal name within the interface",
			Validator:   nonEmpty,
		},
		"Arg": {
			Required:    true,
			Description: "Argument name to select (exact, case-sensitive)",
			Validator:   nonEmpty,
		},
	}),
	Examples: []string{
		`//sigmatch::signal_arg -XML=testdata/xml/Cache.xml -Interface=org.a11y.atspi.Cache -Signal=AddAccessible -Arg=nodeAdded`,
	},
}

// MethodReturnDirectiveSchema defines //sigmatch::method_return: a method's
// sole out-direction argument against one Go type
var MethodReturnDirectiveSchema = DirectiveSchema{
	Kind:        MethodReturnDirective,
	Description: "Asserts that a method's return signature matches a Go type",
	Parameters: withCommon(map[string]ParameterSpec{
		"Method": {
			Required:    true,
			Description: "Method name within the interface",
			Validator:   nonEmpty,
		},
	}),
	Examples: []string{
		`//sigmatch::method_return -XML=testdata/xml/Accessible.xml -Interface=org.a11y.atspi.Accessible -Method=GetState`,
	},
}

// withCommon merges kind-specific parameters over the common set
func withCommon(extra map[string]ParameterSpec) map[string]ParameterSpec {
	params := commonParameters()
	for name, spec := range extra {
		params[name] = spec
	}
	return params
}
