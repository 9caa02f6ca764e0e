package aab2apk_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aab2apk/aab2apk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSigningProperties(t *testing.T, content string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "signing.properties")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))

	return name
}

func TestReadSigningConfig(t *testing.T) {
	cfg, err := aab2apk.ReadSigningConfig(writeSigningProperties(t, `# release signing

release.keystore = C\:\\keys\\my.jks
keystore.password = hunter2
key.alias = release
key.password = hunter3
`))
	require.NoError(t, err)

	assert.Equal(t, `C:\keys\my.jks`, cfg.Keystore)
	assert.Equal(t, "hunter2", cfg.KeystorePassword)
	assert.Equal(t, "release", cfg.KeyAlias)
	assert.Equal(t, "hunter3", cfg.KeyPassword)
}

func TestReadSigningConfigKeepsHashInPasswords(t *testing.T) {
	cfg, err := aab2apk.ReadSigningConfig(writeSigningProperties(t, `release.keystore=keys/release.jks
keystore.password=ab#cd
key.alias=release
key.password=x#y#z
`))
	require.NoError(t, err)

	assert.Equal(t, "ab#cd", cfg.KeystorePassword)
	assert.Equal(t, "x#y#z", cfg.KeyPassword)
}

func TestReadSigningConfigMissingKeys(t *testing.T) {
	_, err := aab2apk.ReadSigningConfig(writeSigningProperties(t, "keystore.password=hunter2\n"))

	missingErr := &aab2apk.MissingPropertiesError{}
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{
		aab2apk.KeyReleaseKeystore,
		aab2apk.KeyKeyAlias,
		aab2apk.KeyKeyPassword,
	}, missingErr.Keys)
}

func TestReadSigningConfigMissingFile(t *testing.T) {
	_, err := aab2apk.ReadSigningConfig(filepath.Join(t.TempDir(), "nope.properties"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
