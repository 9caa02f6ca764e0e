package keytool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256CertFingerprints(t *testing.T) {
	fingerprints, err := sha256CertFingerprints(`Signer #1:

Certificate #1:
Owner: CN=release
Issuer: CN=release
Serial number: 4c8f2a53
Valid from: Mon Jan 01 00:00:00 UTC 2024 until: Fri Jan 01 00:00:00 UTC 2049
Certificate fingerprints:
	 SHA1: 90:1B:43:FA:F5:63:19:90:53:A9:7E:DB:A5:FE:E0:52:F8:D7:BA:4A
	 SHA256: 3F:2A:53:8B:0C:DD:42:2C:19:EA:9C:2A:AE:47:11:66:90:1B:43:FA:F5:63:19:90:53:A9:7E:DB:A5:FE:E0:52
Signature algorithm name: SHA256withRSA
`)
	require.NoError(t, err)
	assert.Equal(t, "3F:2A:53:8B:0C:DD:42:2C:19:EA:9C:2A:AE:47:11:66:90:1B:43:FA:F5:63:19:90:53:A9:7E:DB:A5:FE:E0:52", fingerprints)
}

func TestSHA256CertFingerprintsNotFound(t *testing.T) {
	_, err := sha256CertFingerprints("Owner: CN=release\nSignature algorithm name: SHA256withRSA\n")
	assert.Error(t, err)
}
