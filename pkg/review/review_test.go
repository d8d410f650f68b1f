package review_test

import (
	"testing"

	"github.com/pseudomuto/mapperkit/pkg/parser"
	. "github.com/pseudomuto/mapperkit/pkg/review"
	"github.com/stretchr/testify/require"
)

func review(t *testing.T, options *Options, doc string) []Issue {
	t.Helper()
	root, err := parser.ParseString(doc)
	require.NoError(t, err)
	return New(options).Review(root)
}

func issuesFor(issues []Issue, rule string) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Rule == rule {
			out = append(out, issue)
		}
	}
	return out
}

func TestReviewCleanMapper(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="user">
  <select id="byID">SELECT * FROM users WHERE id = #{id}</select>
</mapper>`)
	require.Empty(t, issues)
}

func TestReviewSubstitutionPlaceholder(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m">
  <select id="s">SELECT * FROM t ORDER BY ${col}</select>
</mapper>`)

	found := issuesFor(issues, RuleNoSubstitution)
	require.Len(t, found, 1)
	require.Equal(t, Warning, found[0].Severity)
	require.Contains(t, found[0].Message, "${col}")
	require.Equal(t, uint(2), found[0].Line)
}

func TestReviewMissingNamespace(t *testing.T) {
	issues := review(t, nil, `<mapper><select id="s">SELECT 1</select></mapper>`)

	found := issuesFor(issues, RuleMapperNamespace)
	require.Len(t, found, 1)
}

func TestReviewMissingStatementID(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m"><select>SELECT 1</select></mapper>`)

	found := issuesFor(issues, RuleStatementID)
	require.Len(t, found, 1)
	require.Equal(t, Error, found[0].Severity)
	require.Contains(t, found[0].Message, "select")
}

func TestReviewDuplicateStatementID(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m">
  <select id="s">SELECT 1</select>
  <update id="s">UPDATE t SET a = 1</update>
</mapper>`)

	found := issuesFor(issues, RuleDuplicateStatementID)
	require.Len(t, found, 1)
	require.Equal(t, uint(3), found[0].Line)
	require.Contains(t, found[0].Message, `"s"`)
	require.Contains(t, found[0].Message, "line 2")
}

func TestReviewMissingTest(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m">
  <select id="s">
    SELECT 1
    <if>WHERE a = 1</if>
    <choose>
      <when>X</when>
      <otherwise>Y</otherwise>
    </choose>
  </select>
</mapper>`)

	found := issuesFor(issues, RuleMissingTest)
	require.Len(t, found, 2) // the <if> and the <when>
}

func TestReviewMalformedPlaceholder(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m">
  <select id="s">SELECT * FROM t WHERE id = #{id,,}</select>
</mapper>`)

	found := issuesFor(issues, RulePlaceholderSyntax)
	require.Len(t, found, 1)
}

func TestReviewEmptyStatement(t *testing.T) {
	issues := review(t, nil, `<mapper namespace="m"><select id="s"></select></mapper>`)

	found := issuesFor(issues, RuleEmptyStatement)
	require.Len(t, found, 1)
}

func TestReviewDisabledRule(t *testing.T) {
	issues := review(t, &Options{Disabled: []string{RuleNoSubstitution}}, `<mapper namespace="m">
  <select id="s">ORDER BY ${col}</select>
</mapper>`)

	require.Empty(t, issuesFor(issues, RuleNoSubstitution))
}

func TestReviewSeverityOverride(t *testing.T) {
	issues := review(t, &Options{
		Severities: map[string]Severity{RuleNoSubstitution: Error},
	}, `<mapper namespace="m">
  <select id="s">ORDER BY ${col}</select>
</mapper>`)

	found := issuesFor(issues, RuleNoSubstitution)
	require.Len(t, found, 1)
	require.Equal(t, Error, found[0].Severity)
}

func TestReviewIssuesOrderedByLine(t *testing.T) {
	issues := review(t, nil, `<mapper>
  <select>SELECT 1</select>
  <select id="s">ORDER BY ${col}</select>
</mapper>`)

	require.NotEmpty(t, issues)
	for i := 1; i < len(issues); i++ {
		require.LessOrEqual(t, issues[i-1].Line, issues[i].Line)
	}
}

func TestParseSeverity(t *testing.T) {
	require.Equal(t, Error, ParseSeverity("error"))
	require.Equal(t, Info, ParseSeverity("info"))
	require.Equal(t, Warning, ParseSeverity("warning"))
	require.Equal(t, Warning, ParseSeverity("bogus"))
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "error", Error.String())
	require.Equal(t, "warning", Warning.String())
	require.Equal(t, "info", Info.String())
}
