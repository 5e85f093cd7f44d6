package annotations

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/sigmatch/internal/errors"
)

// Parser parses //sigmatch:: directive comments using participle
type Parser struct {
	parser   *participle.Parser[directiveAST]
	registry *Registry
}

// directiveAST is the participle grammar root for one directive comment:
// //sigmatch::<kind> [-Key=Value]...
type directiveAST struct {
	Comment string      `parser:"@Comment"`
	Marker  string      `parser:"@Bare"`
	Sep     string      `parser:"@Separator"`
	Kind    string      `parser:"@Bare"`
	Params  []*paramAST `parser:"@@*"`
}

// paramAST is one -Key=Value parameter
type paramAST struct {
	Key   string  `parser:"Dash @Bare"`
	Value *string `parser:"(Equals (@String | @Bare))?"`
}

// NewParser creates a directive parser bound to a schema registry
func NewParser(registry *Registry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Separator", Pattern: `::`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Bare", Pattern: `[^\s=:\-][^\s=:]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[directiveAST](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// IsDirective reports whether a comment line looks like a sigmatch directive
func IsDirective(comment string) bool {
	return strings.HasPrefix(strings.TrimSpace(comment), "//sigmatch::")
}

// ParseDirective parses one directive comment and validates it against the
// registered schema for its kind
func (p *Parser) ParseDirective(comment string, location SourceLocation) (*ParsedDirective, error) {
	ast, err := p.parser.ParseString(location.File, strings.TrimSpace(comment))
	if err != nil {
		return nil, errors.Wrapf(errors.DirectiveSyntaxErrorCode, err,
			"%s: malformed sigmatch directive", location)
	}

	if ast.Marker != "sigmatch" {
		return nil, errors.Newf(errors.DirectiveSyntaxErrorCode,
			"%s: directive marker must be \"sigmatch\", got %q", location, ast.Marker)
	}

	kind, err := ParseDirectiveKind(ast.Kind)
	if err != nil {
		return nil, errors.Wrapf(errors.DirectiveSyntaxErrorCode, err,
			"%s: invalid directive kind %q", location, ast.Kind).
			WithHint("valid kinds: event, signal_arg, method_return")
	}

	parsed := &ParsedDirective{
		Kind:     kind,
		Params:   make(map[string]string),
		Location: location,
		Raw:      strings.TrimSpace(comment),
	}

	for _, param := range ast.Params {
		if param.Value == nil {
			return nil, errors.Newf(errors.DirectiveSyntaxErrorCode,
				"%s: parameter -%s requires a value", location, param.Key)
		}
		value := *param.Value
		if strings.HasPrefix(value, `"`) {
			unquoted, err := strconv.Unquote(value)
			if err != nil {
				return nil, errors.Wrapf(errors.DirectiveSyntaxErrorCode, err,
					"%s: malformed quoted value for -%s", location, param.Key)
			}
			value = unquoted
		}
		if _, dup := parsed.Params[param.Key]; dup {
			return nil, errors.Newf(errors.DirectiveSyntaxErrorCode,
				"%s: duplicate parameter -%s", location, param.Key)
		}
		parsed.Params[param.Key] = value
	}

	if err := p.registry.Validate(parsed); err != nil {
		return nil, err
	}

	return parsed, nil
}
