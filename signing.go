package aab2apk

import (
	"strings"

	"github.com/aab2apk/aab2apk/properties"
)

// Keys required of a signing properties file.
const (
	KeyReleaseKeystore  = "release.keystore"
	KeyKeystorePassword = "keystore.password"
	KeyKeyAlias         = "key.alias"
	KeyKeyPassword      = "key.password"
)

// SigningConfig holds the keystore credentials that bundletool
// signs the universal APK with.
type SigningConfig struct {
	Keystore         string
	KeystorePassword string
	KeyAlias         string
	KeyPassword      string
}

// MissingPropertiesError reports every required signing property
// absent from a properties file, not just the first.
type MissingPropertiesError struct {
	Keys []string
}

func (e *MissingPropertiesError) Error() string {
	return "missing required properties: " + strings.Join(e.Keys, ", ")
}

// ReadSigningConfig reads a SigningConfig from the properties file
// at name. The release.keystore value is unescaped to support
// Windows paths written with escaped separators.
func ReadSigningConfig(name string) (*SigningConfig, error) {
	file, err := properties.Open(name)
	if err != nil {
		return nil, err
	}

	missing := []string{}
	get := func(key string) string {
		value, ok := file.Get(key)
		if !ok {
			missing = append(missing, key)
		}

		return value
	}

	cfg := &SigningConfig{
		Keystore:         get(KeyReleaseKeystore),
		KeystorePassword: get(KeyKeystorePassword),
		KeyAlias:         get(KeyKeyAlias),
		KeyPassword:      get(KeyKeyPassword),
	}

	if len(missing) > 0 {
		return nil, &MissingPropertiesError{Keys: missing}
	}

	cfg.Keystore = properties.UnescapePath(cfg.Keystore)

	return cfg, nil
}
