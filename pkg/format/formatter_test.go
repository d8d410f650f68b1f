package format_test

import (
	"bytes"
	"testing"

	. "github.com/pseudomuto/mapperkit/pkg/format"
	"github.com/pseudomuto/mapperkit/pkg/parser"
	"github.com/stretchr/testify/require"
)

const mapperXML = `<mapper namespace="user">
  <select id="byName">SELECT * FROM users WHERE name = #{name}</select>
  <select id="sorted">SELECT * FROM users ORDER BY ${col}</select>
</mapper>`

func TestFormatDefaults(t *testing.T) {
	root, err := parser.ParseString(mapperXML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, root))
	require.Equal(t, `-- select byName
SELECT * FROM users WHERE name = ?;

-- select sorted
SELECT * FROM users ORDER BY ?;`, buf.String())
}

func TestFormatWithoutHeaders(t *testing.T) {
	root, err := parser.ParseString(mapperXML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, &Options{BindMarker: "?"}, root))
	require.Equal(t, "SELECT * FROM users WHERE name = ?;\n\nSELECT * FROM users ORDER BY ?;", buf.String())
}

func TestFormatCustomBindMarker(t *testing.T) {
	root, err := parser.ParseString(`<mapper namespace="m"><select id="s">WHERE a = #{a} AND b = #{b}</select></mapper>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, &Options{BindMarker: ":v"}, root))
	require.Equal(t, "WHERE a = :v AND b = :v;", buf.String())
}

func TestFormatKeepSubstitutions(t *testing.T) {
	root, err := parser.ParseString(mapperXML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, &Options{KeepSubstitutions: true}, root))
	require.Equal(t, "SELECT * FROM users WHERE name = ?;\n\nSELECT * FROM users ORDER BY ${col};", buf.String())
}

func TestFormatJoinsDynamicChunks(t *testing.T) {
	root, err := parser.ParseString(`<mapper namespace="m">
  <select id="s">
    SELECT * FROM t
    <if test="a != null">WHERE a = #{a}</if>
    ORDER BY id
  </select>
</mapper>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, &Options{}, root))
	require.Equal(t, "SELECT * FROM t WHERE a = ? ORDER BY id;", buf.String())
}

func TestFormatEmptyTree(t *testing.T) {
	root, err := parser.ParseString(`<mapper namespace="m"></mapper>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, root))
	require.Empty(t, buf.String())
}
