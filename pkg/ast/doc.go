// Package ast defines the abstract syntax tree produced by parsing a
// MyBatis mapper XML document.
//
// The tree is rooted at a single RootNode and contains one node per
// recognized mapper element: MapperNode for <mapper>, QueryNode for the
// four statement elements (<select>, <insert>, <update>, <delete>), and
// IfNode, ChooseNode, WhenNode, and OtherwiseNode for the dynamic-SQL
// control elements. Character data between tags becomes a DataNode, a
// leaf which owns the ordered segments produced by scanning its text for
// bind (#{...}) and substitution (${...}) placeholders.
//
// A node's children appear in document order and are never reordered or
// removed once attached. Unrecognized elements are represented by
// EmptyNode during parsing but are discarded before attachment, so an
// EmptyNode never appears in a finished tree.
//
// Consumers dispatch on concrete node types:
//
//	root, err := parser.ParseString(mapperXML)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, query := range ast.Queries(root) {
//		fmt.Printf("%s %s (line %d)\n", query.Kind, query.ID, query.Line())
//	}
package ast
