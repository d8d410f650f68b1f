// Package review checks parsed mapper ASTs for structural problems that
// need no SQL-dialect knowledge: injection-prone ${...} substitutions,
// statements without ids, duplicate ids within a mapper, missing test
// attributes on <if>/<when>, malformed placeholder expressions, and
// statements with no body.
//
// Rules are identified by name and can be disabled or have their severity
// overridden per run, typically from a mapperkit.yaml config:
//
//	r := review.New(&review.Options{
//		Disabled:   []string{"empty-statement"},
//		Severities: map[string]review.Severity{"no-substitution": review.Error},
//	})
//
//	for _, issue := range r.Review(root) {
//		fmt.Printf("%d: [%s] %s: %s\n", issue.Line, issue.Severity, issue.Rule, issue.Message)
//	}
//
// Review never fails: it returns findings, ordered by line, and leaves
// acting on them to the caller.
package review
