package properties_test

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aab2apk/aab2apk/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	file, err := properties.Parse(strings.NewReader(`# gradle signing config

release.keystore = keys/release.jks
keystore.password=hunter2 # rotate quarterly

key.alias=release
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"release.keystore", "keystore.password", "key.alias"}, file.Keys())

	value, ok := file.Get("release.keystore")
	require.True(t, ok)
	assert.Equal(t, "keys/release.jks", value)

	value, ok = file.Get("keystore.password")
	require.True(t, ok)
	assert.Equal(t, "hunter2", value)

	_, ok = file.Get("nope")
	assert.False(t, ok)
}

func TestParseKeepsEmbeddedHash(t *testing.T) {
	file, err := properties.Parse(strings.NewReader("keystore.password=ab#cd\nkey.password=ab #cd\n"))
	require.NoError(t, err)

	value, ok := file.Get("keystore.password")
	require.True(t, ok)
	assert.Equal(t, "ab#cd", value)

	// A '#' after whitespace still starts a comment.
	value, ok = file.Get("key.password")
	require.True(t, ok)
	assert.Equal(t, "ab", value)
}

func TestFileRewrite(t *testing.T) {
	file, err := properties.Parse(strings.NewReader(`# gradle signing config

release.keystore=keys/release.jks
keystore.password=hunter2 # rotate quarterly
key.alias=release
`))
	require.NoError(t, err)

	file.Set("keystore.password", "hunter3", "")
	file.Set("key.password", "hunter4", "")
	assert.True(t, file.Remove("key.alias"))
	assert.False(t, file.Remove("key.alias"))

	buf := new(bytes.Buffer)
	_, err = file.WriteTo(buf)
	require.NoError(t, err)

	assert.Equal(t, `# gradle signing config

release.keystore=keys/release.jks
keystore.password=hunter3 # rotate quarterly
key.password=hunter4
`, buf.String())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := properties.Open(filepath.Join(t.TempDir(), "nope.properties"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestUnescapePath(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{`C\:\\keys\\my.jks`, `C:\keys\my.jks`},
		{`C:\keys\my.jks`, `C:\keys\my.jks`},
		{`keys/release.jks`, `keys/release.jks`},
		{`\u0041BC.jks`, "ABC.jks"},
		{`a\tb`, "a\tb"},
		// Malformed escapes leave the value undecoded.
		{`bad\x1`, `bad\x1`},
		{`bad\uZZZZ.jks`, `bad\uZZZZ.jks`},
	} {
		assert.Equal(t, tc.want, properties.UnescapePath(tc.in), tc.in)
	}
}
