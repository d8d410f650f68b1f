package parser_test

import (
	"testing"

	. "github.com/pseudomuto/mapperkit/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParsePlaceholderProperty(t *testing.T) {
	expr, err := ParsePlaceholder("id")
	require.NoError(t, err)
	require.Equal(t, "id", expr.Property)
	require.Empty(t, expr.Attrs)
}

func TestParsePlaceholderDottedProperty(t *testing.T) {
	expr, err := ParsePlaceholder("user.address.city")
	require.NoError(t, err)
	require.Equal(t, "user.address.city", expr.Property)
}

func TestParsePlaceholderIndexedProperty(t *testing.T) {
	expr, err := ParsePlaceholder("items[0].id")
	require.NoError(t, err)
	require.Equal(t, "items[0].id", expr.Property)
}

func TestParsePlaceholderAttributes(t *testing.T) {
	expr, err := ParsePlaceholder("height, javaType=double, jdbcType=NUMERIC, numericScale=2")
	require.NoError(t, err)
	require.Equal(t, "height", expr.Property)
	require.Len(t, expr.Attrs, 3)
	require.Equal(t, "double", expr.Attr("javaType"))
	require.Equal(t, "NUMERIC", expr.Attr("jdbcType"))
	require.Equal(t, "2", expr.Attr("numericScale"))
	require.Equal(t, "", expr.Attr("mode"))
}

func TestParsePlaceholderTypeHandler(t *testing.T) {
	expr, err := ParsePlaceholder("role, typeHandler=org.example.handlers.RoleHandler")
	require.NoError(t, err)
	require.Equal(t, "role", expr.Property)
	require.Equal(t, "org.example.handlers.RoleHandler", expr.Attr("typeHandler"))
}

func TestParsePlaceholderInvalid(t *testing.T) {
	for _, expr := range []string{"", "id,", "id, javaType", "1abc", "a..b"} {
		_, err := ParsePlaceholder(expr)
		require.Error(t, err, "expression %q should not parse", expr)
		require.Contains(t, err.Error(), "invalid placeholder expression")
	}
}
