// Package parser converts MyBatis mapper XML documents into the AST
// defined by pkg/ast.
//
// The parser consumes the token stream of an encoding/xml Decoder and
// builds the tree without recursion: an explicit element stack tracks the
// currently open start elements while a parallel node stack tracks the
// in-progress nodes, the root permanently at the bottom. The node stack
// is always exactly one entry longer than the element stack; this single
// invariant is what makes every token a small, non-recursive transition,
// and it keeps memory bounded by nesting depth rather than by the native
// call stack on adversarial, deeply nested documents.
//
// Elements the dispatch table does not recognize still balance the stacks
// (as ast.EmptyNode) but are dropped, subtree and all, when they close.
// Whitespace-only character data between tags produces no node. Line
// counting advances on newline bytes observed in character data and
// comments, giving every node and error a best-effort source line.
//
// Basic usage:
//
//	root, err := parser.ParseString(`<mapper namespace="user">
//	    <select id="byID">SELECT * FROM users WHERE id = #{id}</select>
//	</mapper>`)
//	if err != nil {
//		var mismatch *parser.TagMismatchError
//		if errors.As(err, &mismatch) {
//			log.Fatalf("bad nesting: wanted </%s>, got </%s>", mismatch.Expected, mismatch.Actual)
//		}
//		log.Fatal(err)
//	}
//
// Every failure aborts the parse and returns a typed error from this
// package (or ast.UnterminatedPlaceholderError wrapped in DataScanError);
// there is no partial-result mode.
package parser
