package ast

type (
	// Attribute is a single XML attribute carried by a mapper element,
	// preserved in the order it appeared in the source document.
	Attribute struct {
		Name  string
		Value string
	}

	// Node is implemented by every AST node. Children returns the node's
	// child nodes in document order; AddChild appends one more. Attributes
	// returns the element's attributes in source order (nil for synthetic
	// nodes such as RootNode and for DataNode). Line reports the line
	// counter value when the node was created, for diagnostics.
	Node interface {
		Line() uint
		Children() []Node
		AddChild(child Node)
		Attributes() []Attribute
	}

	// QueryKind identifies which of the four statement elements a
	// QueryNode was parsed from.
	QueryKind string
)

// The four statement element names recognized by the parser.
const (
	QuerySelect QueryKind = "select"
	QueryInsert QueryKind = "insert"
	QueryUpdate QueryKind = "update"
	QueryDelete QueryKind = "delete"
)

// baseNode carries the state shared by all element nodes.
type baseNode struct {
	line     uint
	attrs    []Attribute
	children []Node
}

func (n *baseNode) Line() uint { return n.line }

func (n *baseNode) Children() []Node { return n.children }

func (n *baseNode) AddChild(child Node) { n.children = append(n.children, child) }

func (n *baseNode) Attributes() []Attribute { return n.attrs }

// attribute returns the value of the named attribute, or "" when absent.
func (n *baseNode) attribute(name string) string {
	for _, attr := range n.attrs {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

type (
	// RootNode is the synthetic top-level container returned by a parse.
	// It has no attributes and is never attached to another node.
	RootNode struct {
		baseNode
	}

	// MapperNode corresponds to a <mapper> element.
	MapperNode struct {
		baseNode

		// Namespace is the mapper's namespace attribute ("" when absent).
		Namespace string
	}

	// QueryNode corresponds to a <select>, <insert>, <update>, or
	// <delete> element.
	QueryNode struct {
		baseNode

		// Kind records which statement element this node came from.
		Kind QueryKind

		// ID is the statement's id attribute ("" when absent).
		ID string
	}

	// IfNode corresponds to an <if> element. Test holds the raw boolean
	// test expression; it is never evaluated here.
	IfNode struct {
		baseNode

		Test string
	}

	// ChooseNode corresponds to a <choose> element. Its children are
	// conventionally WhenNode and OtherwiseNode values, but this is not
	// enforced structurally; consumers must tolerate other kinds.
	ChooseNode struct {
		baseNode
	}

	// WhenNode corresponds to a <when> element inside <choose>.
	WhenNode struct {
		baseNode

		Test string
	}

	// OtherwiseNode corresponds to an <otherwise> element inside <choose>.
	OtherwiseNode struct {
		baseNode
	}

	// EmptyNode stands in for any element the parser does not recognize.
	// It balances the parser's stacks while the unknown element is open
	// and is discarded, together with its subtree, when it closes.
	EmptyNode struct {
		baseNode
	}
)

// NewRootNode creates the tree root.
func NewRootNode() *RootNode {
	return &RootNode{}
}

// NewMapperNode creates a node for a <mapper> start element.
func NewMapperNode(attrs []Attribute, line uint) *MapperNode {
	n := &MapperNode{baseNode: baseNode{line: line, attrs: attrs}}
	n.Namespace = n.attribute("namespace")
	return n
}

// NewQueryNode creates a node for one of the statement start elements.
func NewQueryNode(kind QueryKind, attrs []Attribute, line uint) *QueryNode {
	n := &QueryNode{baseNode: baseNode{line: line, attrs: attrs}, Kind: kind}
	n.ID = n.attribute("id")
	return n
}

// NewIfNode creates a node for an <if> start element.
func NewIfNode(attrs []Attribute, line uint) *IfNode {
	n := &IfNode{baseNode: baseNode{line: line, attrs: attrs}}
	n.Test = n.attribute("test")
	return n
}

// NewChooseNode creates a node for a <choose> start element.
func NewChooseNode(attrs []Attribute, line uint) *ChooseNode {
	return &ChooseNode{baseNode: baseNode{line: line, attrs: attrs}}
}

// NewWhenNode creates a node for a <when> start element.
func NewWhenNode(attrs []Attribute, line uint) *WhenNode {
	n := &WhenNode{baseNode: baseNode{line: line, attrs: attrs}}
	n.Test = n.attribute("test")
	return n
}

// NewOtherwiseNode creates a node for an <otherwise> start element.
func NewOtherwiseNode(attrs []Attribute, line uint) *OtherwiseNode {
	return &OtherwiseNode{baseNode: baseNode{line: line, attrs: attrs}}
}

// NewEmptyNode creates the placeholder node for an unrecognized element.
func NewEmptyNode(line uint) *EmptyNode {
	return &EmptyNode{baseNode: baseNode{line: line}}
}

// Queries returns all QueryNode values reachable from n, in document
// order. The walk uses an explicit stack so arbitrarily deep trees cannot
// exhaust the call stack.
func Queries(n Node) []*QueryNode {
	var queries []*QueryNode

	stack := []Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if query, ok := current.(*QueryNode); ok {
			queries = append(queries, query)
		}

		// Push in reverse so children pop in document order.
		children := current.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return queries
}

// Mappers returns all MapperNode values reachable from n, in document
// order.
func Mappers(n Node) []*MapperNode {
	var mappers []*MapperNode

	stack := []Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if mapper, ok := current.(*MapperNode); ok {
			mappers = append(mappers, mapper)
		}

		children := current.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return mappers
}
