package ast

import "fmt"

type (
	// Segment is one piece of a DataNode's text: either a run of literal
	// SQL bytes or a single placeholder.
	Segment interface {
		segment()
	}

	// Literal is a run of plain SQL text between placeholders.
	Literal struct {
		Text string
	}

	// Placeholder is a #{...} or ${...} substitution point. Expr holds the
	// raw text between the braces, untrimmed and unevaluated.
	Placeholder struct {
		Expr  string
		Style PlaceholderStyle
	}

	// PlaceholderStyle distinguishes the two placeholder openers.
	PlaceholderStyle uint8
)

const (
	// StyleBind is #{...}: the value is escaped and bound as a statement
	// parameter by the executing driver.
	StyleBind PlaceholderStyle = iota

	// StyleSubstitution is ${...}: the value is textually inlined into the
	// SQL before execution, with no escaping.
	StyleSubstitution
)

func (Literal) segment()     {}
func (Placeholder) segment() {}

// String returns the opener for the style ("#{" or "${").
func (s PlaceholderStyle) String() string {
	if s == StyleSubstitution {
		return "${"
	}
	return "#{"
}

// UnterminatedPlaceholderError reports a placeholder opener with no
// closing brace before the end of its data chunk.
type UnterminatedPlaceholderError struct {
	// Style is the opener that was left unterminated.
	Style PlaceholderStyle

	// Expr is the text read after the opener before input ran out.
	Expr string
}

func (e *UnterminatedPlaceholderError) Error() string {
	return fmt.Sprintf("unterminated %s...} placeholder: missing closing brace after %q", e.Style, e.Expr)
}

// DataNode is a leaf holding one trimmed run of character data. After
// Scan it also holds the ordered segments the text splits into. DataNode
// never has children.
type DataNode struct {
	line uint
	text []byte

	// Segments is populated by Scan, in left-to-right source order.
	Segments []Segment
}

// NewDataNode creates a data node from an already-trimmed chunk of
// character data. Call Scan before reading Segments.
func NewDataNode(text []byte, line uint) *DataNode {
	return &DataNode{line: line, text: text}
}

// Line reports the line counter value when the node was created.
func (d *DataNode) Line() uint { return d.line }

// Children always returns nil; data nodes are leaves.
func (*DataNode) Children() []Node { return nil }

// AddChild is a no-op; data nodes are leaves and are never pushed onto
// the parser's stacks, so nothing can legally be appended to them.
func (*DataNode) AddChild(Node) {}

// Attributes always returns nil; character data carries no attributes.
func (*DataNode) Attributes() []Attribute { return nil }

// Text returns the node's trimmed character data.
func (d *DataNode) Text() []byte { return d.text }

// Scan splits the node's text into Literal and Placeholder segments with
// a single left-to-right pass. Empty text yields no segments. A #{ or ${
// opener with no closing brace fails with UnterminatedPlaceholderError.
func (d *DataNode) Scan() error {
	d.Segments = nil

	var literal []byte
	for i := 0; i < len(d.text); i++ {
		if i+1 < len(d.text) && (d.text[i] == '#' || d.text[i] == '$') && d.text[i+1] == '{' {
			style := StyleBind
			if d.text[i] == '$' {
				style = StyleSubstitution
			}

			// Consume up to the matching brace. Placeholders do not nest.
			start := i + 2
			end := start
			for end < len(d.text) && d.text[end] != '}' {
				end++
			}
			if end == len(d.text) {
				return &UnterminatedPlaceholderError{Style: style, Expr: string(d.text[start:])}
			}

			if len(literal) > 0 {
				d.Segments = append(d.Segments, Literal{Text: string(literal)})
				literal = nil
			}
			d.Segments = append(d.Segments, Placeholder{Expr: string(d.text[start:end]), Style: style})
			i = end
			continue
		}
		literal = append(literal, d.text[i])
	}

	if len(literal) > 0 {
		d.Segments = append(d.Segments, Literal{Text: string(literal)})
	}

	return nil
}
