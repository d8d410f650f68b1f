package review

import (
	"fmt"
	"sort"

	"github.com/pseudomuto/mapperkit/pkg/ast"
	"github.com/pseudomuto/mapperkit/pkg/parser"
)

// Severity ranks a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// ParseSeverity converts a severity name ("info", "warning", "error") to
// its value. Unknown names map to Warning.
func ParseSeverity(name string) Severity {
	switch name {
	case "error":
		return Error
	case "info":
		return Info
	default:
		return Warning
	}
}

// Rule names, usable in Options.Disabled and Options.Severities.
const (
	RuleNoSubstitution       = "no-substitution"
	RuleMapperNamespace      = "mapper-namespace"
	RuleStatementID          = "statement-id"
	RuleDuplicateStatementID = "duplicate-statement-id"
	RuleMissingTest          = "missing-test"
	RulePlaceholderSyntax    = "placeholder-syntax"
	RuleEmptyStatement       = "empty-statement"
)

var defaultSeverities = map[string]Severity{
	RuleNoSubstitution:       Warning,
	RuleMapperNamespace:      Warning,
	RuleStatementID:          Error,
	RuleDuplicateStatementID: Error,
	RuleMissingTest:          Error,
	RulePlaceholderSyntax:    Warning,
	RuleEmptyStatement:       Warning,
}

type (
	// Issue is one finding.
	Issue struct {
		Rule     string
		Severity Severity
		Line     uint
		Message  string
	}

	// Options tunes a Reviewer. Disabled lists rule names to skip;
	// Severities overrides default severities per rule name.
	Options struct {
		Disabled   []string
		Severities map[string]Severity
	}

	// Reviewer runs the rule set over a tree.
	Reviewer struct {
		disabled   map[string]bool
		severities map[string]Severity
	}
)

// New creates a Reviewer with the given options (nil enables every rule
// at its default severity).
func New(options *Options) *Reviewer {
	r := &Reviewer{
		disabled:   map[string]bool{},
		severities: map[string]Severity{},
	}
	for name, severity := range defaultSeverities {
		r.severities[name] = severity
	}
	if options != nil {
		for _, name := range options.Disabled {
			r.disabled[name] = true
		}
		for name, severity := range options.Severities {
			r.severities[name] = severity
		}
	}
	return r
}

// Review runs every enabled rule over the tree rooted at n and returns
// the findings ordered by line.
func (r *Reviewer) Review(n ast.Node) []Issue {
	var issues []Issue

	for _, mapper := range ast.Mappers(n) {
		issues = append(issues, r.checkMapper(mapper)...)
	}
	for _, query := range ast.Queries(n) {
		issues = append(issues, r.checkQuery(query)...)
	}
	issues = append(issues, r.checkDuplicateIDs(n)...)
	issues = append(issues, r.walkChecks(n)...)

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

func (r *Reviewer) report(issues []Issue, rule string, line uint, format string, args ...any) []Issue {
	if r.disabled[rule] {
		return issues
	}
	return append(issues, Issue{
		Rule:     rule,
		Severity: r.severities[rule],
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Reviewer) checkMapper(mapper *ast.MapperNode) []Issue {
	var issues []Issue
	if mapper.Namespace == "" {
		issues = r.report(issues, RuleMapperNamespace, mapper.Line(), "mapper has no namespace attribute")
	}
	return issues
}

func (r *Reviewer) checkQuery(query *ast.QueryNode) []Issue {
	var issues []Issue
	if query.ID == "" {
		issues = r.report(issues, RuleStatementID, query.Line(), "%s statement has no id attribute", query.Kind)
	}
	if len(query.Children()) == 0 {
		issues = r.report(issues, RuleEmptyStatement, query.Line(), "%s statement %q has no body", query.Kind, query.ID)
	}
	return issues
}

func (r *Reviewer) checkDuplicateIDs(n ast.Node) []Issue {
	var issues []Issue

	for _, mapper := range ast.Mappers(n) {
		seen := map[string]uint{}
		for _, query := range ast.Queries(mapper) {
			if query.ID == "" {
				continue
			}
			if first, ok := seen[query.ID]; ok {
				issues = r.report(issues, RuleDuplicateStatementID, query.Line(),
					"statement id %q already used at line %d", query.ID, first)
				continue
			}
			seen[query.ID] = query.Line()
		}
	}

	return issues
}

// walkChecks covers the rules that need to see every node: missing test
// attributes and placeholder findings inside data nodes.
func (r *Reviewer) walkChecks(n ast.Node) []Issue {
	var issues []Issue

	stack := []ast.Node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := current.(type) {
		case *ast.IfNode:
			if node.Test == "" {
				issues = r.report(issues, RuleMissingTest, node.Line(), "if element has no test attribute")
			}
		case *ast.WhenNode:
			if node.Test == "" {
				issues = r.report(issues, RuleMissingTest, node.Line(), "when element has no test attribute")
			}
		case *ast.DataNode:
			issues = append(issues, r.checkSegments(node)...)
		}

		children := current.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return issues
}

func (r *Reviewer) checkSegments(data *ast.DataNode) []Issue {
	var issues []Issue

	for _, segment := range data.Segments {
		placeholder, ok := segment.(ast.Placeholder)
		if !ok {
			continue
		}
		if placeholder.Style == ast.StyleSubstitution {
			issues = r.report(issues, RuleNoSubstitution, data.Line(),
				"${%s} is substituted into the SQL without escaping; prefer #{%s}", placeholder.Expr, placeholder.Expr)
		}
		if _, err := parser.ParsePlaceholder(placeholder.Expr); err != nil {
			issues = r.report(issues, RulePlaceholderSyntax, data.Line(),
				"placeholder %s%s} has a malformed expression", placeholder.Style, placeholder.Expr)
		}
	}

	return issues
}
