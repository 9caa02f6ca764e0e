package aab2apk

// Version is the version of aab2apk, overridable at build time via
// -ldflags "-X github.com/aab2apk/aab2apk.Version=...".
var Version = "v0.1.0"

// SemVer returns the semantic version of aab2apk.
func SemVer() string {
	return Version
}
