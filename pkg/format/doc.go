// Package format renders parsed mapper ASTs back to plain SQL text for
// downstream tooling (linters, lineage extraction, review pipelines) that
// wants statements rather than XML.
//
// Bind placeholders (#{...}) are replaced with a configurable marker, "?"
// by default, so the output is parameterized SQL a lint tool can read.
// Substitution placeholders (${...}) get the same treatment unless
// KeepSubstitutions is set, in which case they are emitted verbatim to
// keep the injection-prone construct visible. Dynamic-control elements
// (<if>, <choose>, <when>, <otherwise>) cannot be evaluated without
// runtime parameters, so their contents are emitted in document order.
//
// Example usage:
//
//	root, _ := parser.ParseString(mapperXML)
//
//	var buf bytes.Buffer
//	if err := format.Format(&buf, format.Defaults, root); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(buf.String())
package format
