// Package bundletool executes Google's bundletool
// (https://developer.android.com/tools/bundletool) through a Java
// runtime.
package bundletool

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// ModeUniversal has `bundletool build-apks` produce an APK set
// containing a single APK installable on any device.
const ModeUniversal = "universal"

// Command represents a bundletool JAR and the Java executable that
// runs it.
type Command struct {
	// Java is the path to or name of the Java executable.
	Java string
	// JAR is the path to the bundletool JAR.
	JAR string
}

// New returns a Command for the bundletool JAR at jar, locating a
// Java runtime via FindJava.
func New(ctx context.Context, jar string) (*Command, error) {
	java, err := FindJava(ctx)
	if err != nil {
		return nil, err
	}

	return &Command{Java: java, JAR: jar}, nil
}

// BuildApksOpts represent flags that can be passed to
// `bundletool build-apks`.
type BuildApksOpts struct {
	Bundle           string
	Output           string
	Mode             string
	Keystore         string
	KeystorePassword string
	KeyAlias         string
	KeyPassword      string
}

func (o *BuildApksOpts) args() []string {
	args := []string{"build-apks", "--bundle", o.Bundle, "--output", o.Output}

	if o.Mode != "" {
		args = append(args, "--mode", o.Mode)
	}

	if o.Keystore != "" {
		args = append(args,
			"--ks", o.Keystore,
			"--ks-pass", "pass:"+o.KeystorePassword,
			"--ks-key-alias", o.KeyAlias,
			"--key-pass", "pass:"+o.KeyPassword,
		)
	}

	return args
}

// BuildApks runs `bundletool build-apks` against the .aab at
// opts.Bundle, producing a signed APK set archive at opts.Output.
func (c *Command) BuildApks(ctx context.Context, opts *BuildApksOpts) error {
	return c.run(ctx, opts.args()...)
}

// ExtractApksOpts represent flags that can be passed to
// `bundletool extract-apks`.
type ExtractApksOpts struct {
	Apks            string
	OutputDirectory string
	DeviceSpec      string
}

func (o *ExtractApksOpts) args() []string {
	return []string{
		"extract-apks",
		"--apks", o.Apks,
		"--output-dir", o.OutputDirectory,
		"--device-spec", o.DeviceSpec,
	}
}

// ExtractApks runs `bundletool extract-apks` against the APK set
// archive at opts.Apks, writing the APKs matching opts.DeviceSpec
// into opts.OutputDirectory.
func (c *Command) ExtractApks(ctx context.Context, opts *ExtractApksOpts) error {
	return c.run(ctx, opts.args()...)
}

func (c *Command) run(ctx context.Context, args ...string) error {
	var (
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		//nolint:gosec
		cmd = exec.CommandContext(ctx, c.Java, append([]string{"-jar", c.JAR}, args...)...)
	)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return &ExitError{
			Subcommand: args[0],
			Stdout:     stdout.String(),
			Stderr:     stderr.String(),
			Err:        err,
		}
	}

	return nil
}

// ExitError is returned when bundletool exits non-zero. It carries
// the captured output for diagnostics.
type ExitError struct {
	Subcommand string
	Stdout     string
	Stderr     string
	Err        error
}

func (e *ExitError) Error() string {
	var sb strings.Builder

	sb.WriteString("bundletool ")
	sb.WriteString(e.Subcommand)

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString(": exited non-zero")
	}

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		sb.WriteString(": ")
		sb.WriteString(stderr)
	}

	return sb.String()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
