// Package keytool inspects signed artifacts with the JDK's keytool.
package keytool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// SHA256CertFingerprints finds `keytool` on the PATH and reports the
// SHA256 fingerprint of the certificate that the APK or JAR at name
// is signed with.
func SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	return Command("keytool").SHA256CertFingerprints(ctx, name)
}

// Command represents the path to a `keytool` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// SHA256CertFingerprints runs `keytool -printcert -jarfile` against
// the signed artifact at name and scans its report for the SHA256
// fingerprint.
func (c Command) SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	buf := new(bytes.Buffer)

	//nolint:gosec
	cmd := exec.CommandContext(ctx, c.String(), "-printcert", "-jarfile", name)
	cmd.Stdout = buf

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return sha256CertFingerprints(buf.String())
}

// sha256CertFingerprints scans a `keytool -printcert` report for the
// SHA256 fingerprint line.
func sha256CertFingerprints(report string) (string, error) {
	for _, line := range strings.Split(report, "\n") {
		if _, fingerprints, ok := strings.Cut(line, "SHA256: "); ok {
			return strings.TrimSpace(fingerprints), nil
		}
	}

	return "", fmt.Errorf("sha256 cert fingerprints not found in keytool output")
}
