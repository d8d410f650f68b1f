package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pseudomuto/mapperkit/pkg/ast"
)

// Parser builds a mapper AST from a single XML document. A Parser reads
// its input exactly once, front to back; create a new one per document.
type Parser struct {
	d *xml.Decoder

	// currentLine advances on newline bytes observed in character data
	// and comments, the only tokens whose raw text is visible here. It
	// starts at 1 and never decreases.
	currentLine uint
}

// New creates a parser reading one mapper XML document from r.
func New(r io.Reader) *Parser {
	return &Parser{d: xml.NewDecoder(r), currentLine: 1}
}

// Parse reads a complete mapper XML document from r and returns the AST
// root.
func Parse(r io.Reader) (*ast.RootNode, error) {
	return New(r).Parse()
}

// ParseString parses a complete mapper XML document held in memory.
func ParseString(doc string) (*ast.RootNode, error) {
	return Parse(strings.NewReader(doc))
}

// Parse consumes the decoder's token stream and builds the tree. It
// returns the root node once input ends with every element closed, or
// the first error encountered; on error no partial tree is returned.
func (p *Parser) Parse() (*ast.RootNode, error) {
	root := ast.NewRootNode()

	// The conceptual call stack of a recursive-descent parser, made
	// explicit: elementStack holds the open start elements, nodeStack the
	// in-progress nodes. nodeStack is always exactly one longer than
	// elementStack because root sits at the bottom and is never opened by
	// a start tag.
	var elementStack []xml.StartElement
	nodeStack := []ast.Node{root}

	for {
		// RawToken, not Token: the decoder's own nesting checks stay out
		// of the way so tag matching is enforced here, against the
		// element stack, with errors that name the tags involved.
		token, err := p.d.RawToken()
		if err != nil {
			if err == io.EOF {
				if len(elementStack) == 0 {
					return root, nil
				}
				return nil, &UnterminatedElementError{
					Name: elementStack[len(elementStack)-1].Name.Local,
					Line: p.currentLine,
				}
			}
			return nil, &MalformedXMLError{Line: p.currentLine, cause: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			elementStack = append(elementStack, t)
			nodeStack = append(nodeStack, p.nodeFor(&t))

		case xml.EndElement:
			if len(elementStack) == 0 {
				return nil, &UnexpectedEndElementError{Name: t.Name.Local, Line: p.currentLine}
			}
			open := elementStack[len(elementStack)-1].Name.Local
			if t.Name.Local != open {
				return nil, &TagMismatchError{Expected: open, Actual: t.Name.Local, Line: p.currentLine}
			}

			// Pop both stacks together. Empty nodes balanced the stacks
			// while their element was open; dropping them here is what
			// prunes unrecognized subtrees.
			elementStack = elementStack[:len(elementStack)-1]
			closed := nodeStack[len(nodeStack)-1]
			nodeStack = nodeStack[:len(nodeStack)-1]
			if _, ok := closed.(*ast.EmptyNode); !ok {
				nodeStack[len(nodeStack)-1].AddChild(closed)
			}

		case xml.CharData:
			// Count lines before trimming so the counter reflects the
			// document, not the trimmed text.
			p.countLines(t)

			trimmed := bytes.TrimSpace(t)
			if len(trimmed) == 0 {
				continue
			}

			data := ast.NewDataNode(append([]byte(nil), trimmed...), p.currentLine)
			if err := data.Scan(); err != nil {
				return nil, &DataScanError{Line: p.currentLine, cause: err}
			}
			// Character data cannot contain nested elements, so it never
			// goes through the stacks; it attaches directly to the
			// innermost open node.
			nodeStack[len(nodeStack)-1].AddChild(data)

		case xml.Comment:
			p.countLines(t)
		}
	}
}

func (p *Parser) countLines(raw []byte) {
	for _, b := range raw {
		if b == '\n' {
			p.currentLine++
		}
	}
}

// nodeFor dispatches a start element's local name to its node kind.
// Unrecognized names yield an EmptyNode rather than an error; the element
// still has to be consumed to keep the stream position.
func (p *Parser) nodeFor(ele *xml.StartElement) ast.Node {
	switch ele.Name.Local {
	case "mapper":
		return ast.NewMapperNode(attributes(ele), p.currentLine)
	case "select", "insert", "update", "delete":
		return ast.NewQueryNode(ast.QueryKind(ele.Name.Local), attributes(ele), p.currentLine)
	case "if":
		return ast.NewIfNode(attributes(ele), p.currentLine)
	case "choose":
		return ast.NewChooseNode(attributes(ele), p.currentLine)
	case "when":
		return ast.NewWhenNode(attributes(ele), p.currentLine)
	case "otherwise":
		return ast.NewOtherwiseNode(attributes(ele), p.currentLine)
	}
	return ast.NewEmptyNode(p.currentLine)
}

func attributes(ele *xml.StartElement) []ast.Attribute {
	if len(ele.Attr) == 0 {
		return nil
	}
	attrs := make([]ast.Attribute, 0, len(ele.Attr))
	for _, attr := range ele.Attr {
		attrs = append(attrs, ast.Attribute{Name: attr.Name.Local, Value: attr.Value})
	}
	return attrs
}
