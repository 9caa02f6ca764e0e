package bundletool

import (
	"encoding/json"
	"os"
)

// DeviceSpec is the device description that `bundletool
// extract-apks` matches APKs against.
type DeviceSpec struct {
	SupportedAbis    []string `json:"supportedAbis"`
	SupportedLocales []string `json:"supportedLocales"`
	ScreenDensity    int      `json:"screenDensity"`
	SDKVersion       int      `json:"sdkVersion"`
}

// UniversalDeviceSpec returns the device spec used to pull the
// universal APK out of an APK set built with ModeUniversal. The
// exact values do not matter for universal APK sets, which contain
// a single APK matching any device.
func UniversalDeviceSpec() *DeviceSpec {
	return &DeviceSpec{
		SupportedAbis:    []string{"arm64-v8a"},
		SupportedLocales: []string{"en"},
		ScreenDensity:    480,
		SDKVersion:       34,
	}
}

// WriteFile writes the device spec as JSON to name.
func (s *DeviceSpec) WriteFile(name string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(name, b, 0o600)
}
