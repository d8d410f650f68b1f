package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// placeholderLexer tokenizes the text between placeholder braces:
	// a property path optionally followed by comma-separated parameter
	// attributes (javaType, jdbcType, mode, typeHandler, ...).
	placeholderLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
		{Name: "Number", Pattern: `\d+(\.\d+)?`},
		{Name: "Punct", Pattern: `[.,=\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	placeholderParser = participle.MustBuild[PlaceholderExpr](
		participle.Lexer(placeholderLexer),
		participle.Elide("Whitespace"),
	)
)

type (
	// PlaceholderExpr is the parsed form of the text inside a #{...} or
	// ${...} placeholder: a property path plus optional parameter
	// attributes, e.g. "user.name, javaType=String, jdbcType=VARCHAR".
	PlaceholderExpr struct {
		// Property is the property path, with indexes preserved, e.g.
		// "items[0].id".
		Property string `parser:"@(Ident (('.' Ident) | ('[' (Number | Ident) ']'))*)"`

		// Attrs holds the trailing key=value parameter attributes in
		// source order.
		Attrs []*PlaceholderAttr `parser:"(',' @@)*"`
	}

	// PlaceholderAttr is one key=value parameter attribute.
	PlaceholderAttr struct {
		Name  string `parser:"@Ident '='"`
		Value string `parser:"@((Ident ('.' Ident)*) | Number)"`
	}
)

// Attr returns the value of the named parameter attribute, or "" when it
// is not present.
func (e *PlaceholderExpr) Attr(name string) string {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

// ParsePlaceholder parses the raw text carried by an ast.Placeholder into
// its property path and parameter attributes. The text is never evaluated;
// this only checks and exposes its shape.
func ParsePlaceholder(expr string) (*PlaceholderExpr, error) {
	parsed, err := placeholderParser.ParseString("", strings.TrimSpace(expr))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid placeholder expression %q", expr)
	}
	return parsed, nil
}
