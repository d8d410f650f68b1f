package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mapperkit/pkg/ast"
)

// Options controls how statements are rendered.
type Options struct {
	// BindMarker replaces each #{...} placeholder. Defaults to "?".
	BindMarker string

	// KeepSubstitutions emits ${...} placeholders verbatim instead of
	// replacing them with BindMarker, keeping them visible in the output.
	KeepSubstitutions bool

	// Headers prefixes each statement with a comment naming its kind and
	// id, e.g. "-- select userByID".
	Headers bool
}

// Defaults are the options used when nil is passed to New or Format.
var Defaults = &Options{
	BindMarker: "?",
	Headers:    true,
}

// Formatter renders mapper statements as SQL text.
type Formatter struct {
	options *Options
}

// New creates a Formatter with the given options (Defaults when nil).
func New(options *Options) *Formatter {
	if options == nil {
		options = Defaults
	}
	if options.BindMarker == "" {
		opts := *options
		opts.BindMarker = Defaults.BindMarker
		options = &opts
	}
	return &Formatter{options: options}
}

// Format renders every statement reachable from the given nodes to w,
// separated by blank lines, using the given options (Defaults when nil).
func Format(w io.Writer, options *Options, nodes ...ast.Node) error {
	f := New(options)
	for i, node := range nodes {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		if err := f.Node(w, node); err != nil {
			return err
		}
	}
	return nil
}

// Node renders every statement reachable from n to w, separated by blank
// lines.
func (f *Formatter) Node(w io.Writer, n ast.Node) error {
	for i, query := range ast.Queries(n) {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		if err := f.Query(w, query); err != nil {
			return err
		}
	}
	return nil
}

// Query renders a single statement to w.
func (f *Formatter) Query(w io.Writer, query *ast.QueryNode) error {
	var sb strings.Builder

	if f.options.Headers {
		sb.WriteString("-- ")
		sb.WriteString(string(query.Kind))
		if query.ID != "" {
			sb.WriteString(" ")
			sb.WriteString(query.ID)
		}
		sb.WriteString("\n")
	}

	sql := strings.Join(f.chunks(query), " ")
	sb.WriteString(sql)
	if !strings.HasSuffix(sql, ";") {
		sb.WriteString(";")
	}

	_, err := io.WriteString(w, sb.String())
	return errors.Wrapf(err, "failed to write statement %q", query.ID)
}

// chunks collects the rendered text of every data node under query, in
// document order. The walk uses an explicit stack; mapper nesting depth
// is caller-controlled input.
func (f *Formatter) chunks(query *ast.QueryNode) []string {
	var out []string

	stack := make([]ast.Node, 0, len(query.Children()))
	children := query.Children()
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if data, ok := current.(*ast.DataNode); ok {
			out = append(out, f.data(data))
			continue
		}

		children := current.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return out
}

func (f *Formatter) data(data *ast.DataNode) string {
	var sb strings.Builder
	for _, segment := range data.Segments {
		switch s := segment.(type) {
		case ast.Literal:
			sb.WriteString(s.Text)
		case ast.Placeholder:
			if s.Style == ast.StyleSubstitution && f.options.KeepSubstitutions {
				sb.WriteString("${")
				sb.WriteString(s.Expr)
				sb.WriteString("}")
				continue
			}
			sb.WriteString(f.options.BindMarker)
		}
	}
	return sb.String()
}
