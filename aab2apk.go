// Package aab2apk converts Android App Bundles into signed,
// installable universal APKs by driving Google's bundletool.
package aab2apk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aab2apk/aab2apk/bundletool"
)

// Conversion describes a single AAB to universal APK conversion.
type Conversion struct {
	// AAB is the path to the input Android App Bundle.
	AAB string
	// Output is the path that the signed universal APK is written to.
	Output string
	// Bundletool is the path to the bundletool JAR.
	Bundletool string
	// SigningProperties is the path to the properties file holding
	// the keystore credentials.
	SigningProperties string
	// DeviceSpec overrides the device spec that the universal APK
	// is selected with. Defaults to bundletool.UniversalDeviceSpec.
	DeviceSpec *bundletool.DeviceSpec
	// Tool overrides how bundletool is executed. Defaults to
	// running the JAR at Bundletool with a located Java runtime.
	Tool Bundletool
}

// Bundletool runs bundletool subcommands.
type Bundletool interface {
	BuildApks(ctx context.Context, opts *bundletool.BuildApksOpts) error
	ExtractApks(ctx context.Context, opts *bundletool.ExtractApksOpts) error
}

// ValidateConversion verifies that every file the conversion reads
// exists before any subprocess is spawned and creates missing parent
// directories of the output path.
func ValidateConversion(c *Conversion, signing *SigningConfig) error {
	if err := statFile(c.AAB, "AAB file"); err != nil {
		return err
	}

	if err := statFile(c.Bundletool, "bundletool JAR"); err != nil {
		return err
	}

	if err := statFile(signing.Keystore, "keystore file"); err != nil {
		return err
	}

	if dir := filepath.Dir(c.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return nil
}

func statFile(name, desc string) error {
	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s not found: %s: %w", desc, name, fs.ErrNotExist)
		}

		return err
	}

	return nil
}
