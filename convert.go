package aab2apk

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aab2apk/aab2apk/bundletool"
	"github.com/aab2apk/aab2apk/keytool"
	"github.com/google/uuid"
)

// ErrArtifactMissing is returned when bundletool extract-apks exits
// zero without producing universal.apk.
var ErrArtifactMissing = errors.New("universal APK not found after extraction")

// Convert turns the AAB named by c into a signed universal APK at
// c.Output. It reads and validates the signing properties, has
// bundletool build a universal APK set, extracts universal.apk from
// that set and copies it to c.Output. Intermediate files live in a
// temporary directory that is removed on every return path.
func Convert(ctx context.Context, c *Conversion) error {
	log := LoggerFrom(ctx)

	signing, err := ReadSigningConfig(c.SigningProperties)
	if err != nil {
		return err
	}

	if err = ValidateConversion(c, signing); err != nil {
		return err
	}

	tool := c.Tool
	if tool == nil {
		if tool, err = bundletool.New(ctx, c.Bundletool); err != nil {
			return err
		}
	}

	dir := filepath.Join(os.TempDir(), "aab2apk-"+uuid.NewString())
	if err = os.Mkdir(dir, 0o700); err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	apks := filepath.Join(dir, "temp.apks")

	log.Info("generating universal APK set", "aab", c.AAB)

	if err = tool.BuildApks(ctx, &bundletool.BuildApksOpts{
		Bundle:           c.AAB,
		Output:           apks,
		Mode:             bundletool.ModeUniversal,
		Keystore:         signing.Keystore,
		KeystorePassword: signing.KeystorePassword,
		KeyAlias:         signing.KeyAlias,
		KeyPassword:      signing.KeyPassword,
	}); err != nil {
		return err
	}

	deviceSpec := c.DeviceSpec
	if deviceSpec == nil {
		deviceSpec = bundletool.UniversalDeviceSpec()
	}

	deviceSpecPath := filepath.Join(dir, "device_spec.json")
	if err = deviceSpec.WriteFile(deviceSpecPath); err != nil {
		return err
	}

	log.Info("extracting universal APK", "apks", apks)

	if err = tool.ExtractApks(ctx, &bundletool.ExtractApksOpts{
		Apks:            apks,
		OutputDirectory: dir,
		DeviceSpec:      deviceSpecPath,
	}); err != nil {
		return err
	}

	universal := filepath.Join(dir, "universal.apk")
	if _, err = os.Stat(universal); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrArtifactMissing
		}

		return err
	}

	if err = copyFile(universal, c.Output); err != nil {
		return err
	}

	log.Info("wrote universal APK", "output", c.Output)

	if log.V(1).Enabled() {
		if fingerprints, err := keytool.SHA256CertFingerprints(ctx, c.Output); err == nil {
			log.V(1).Info("signed universal APK", "sha256CertFingerprints", fingerprints)
		}
	}

	return nil
}

// copyFile copies src to dst, carrying over the file mode and
// modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	if err = out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
