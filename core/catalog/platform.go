package catalog

import (
	"fmt"
	"runtime"
	"strings"
)

type OSType string

const (
	Mac     OSType = "mac"
	Windows OSType = "windows"
	Linux   OSType = "linux"
)

// AppleSiliconMarker tags catalog entries built for Apple silicon
const AppleSiliconMarker = "m1"

// Platform describes the machine a driver is being resolved for
type Platform struct {
	OS           OSType `json:"os"`
	Arch         string `json:"arch"`
	AppleSilicon bool   `json:"appleSilicon"`
}

// CurrentPlatform returns the platform of the running process
func CurrentPlatform() Platform {
	return NewPlatform(runtime.GOOS, runtime.GOARCH)
}

// NewPlatform builds a platform from either Go (darwin, amd64) or catalog (mac, x64) names.
// Every OS other than mac and windows uses the linux builds.
func NewPlatform(goos, goarch string) Platform {
	osType := Linux

	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "darwin", "mac", "macos", "osx":
		osType = Mac
	case "windows", "win":
		osType = Windows
	}

	arch := strings.ToLower(strings.TrimSpace(goarch))
	switch arch {
	case "amd64", "x86_64", "x64":
		arch = "x64"
	case "386", "i386", "ia32", "x86":
		arch = "x86"
	case "aarch64":
		arch = "arm64"
	}

	return Platform{
		OS:           osType,
		Arch:         arch,
		AppleSilicon: osType == Mac && arch == "arm64",
	}
}

// OSName is the token catalog entry keys use for the platform's OS
func (p Platform) OSName() string {
	switch p.OS {
	case Mac:
		return "mac"
	case Windows:
		return "win"
	default:
		return "linux"
	}
}

func (p Platform) String() string {
	if p.AppleSilicon {
		return fmt.Sprintf("%s-%s (apple silicon)", p.OS, p.Arch)
	}
	return fmt.Sprintf("%s-%s", p.OS, p.Arch)
}
