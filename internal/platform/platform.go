// Package platform detects the operating system triple used to evaluate
// version-manifest rules and to name natives directories.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Name is the Minecraft-specific operating system identifier.
type Name string

const (
	Windows Name = "windows"
	Linux   Name = "linux"
	OSX     Name = "osx"
	Unknown Name = "unknown"
)

// Arch is the normalized machine architecture tag.
type Arch string

const (
	ArchX86       Arch = "x86"
	ArchX64       Arch = "x64"
	ArchArm       Arch = "arm"
	ArchAarch64   Arch = "aarch64"
	ArchMips      Arch = "mips"
	ArchPowerPC   Arch = "powerpc"
	ArchPowerPC64 Arch = "powerpc64"
	ArchUnknown   Arch = "unknown"
)

// Platform is the immutable triple used throughout rule evaluation and
// folder/natives naming.
type Platform struct {
	Name    Name
	Arch    Arch
	Version string
}

// Probe detects the current platform. It is cheap and side-effect free;
// callers typically probe once per process and reuse the result.
func Probe() Platform {
	return Platform{
		Name:    probeName(),
		Arch:    probeArch(),
		Version: probeVersion(),
	}
}

func probeName() Name {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return OSX
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

func probeArch() Arch {
	switch runtime.GOARCH {
	case "386":
		return ArchX86
	case "amd64":
		return ArchX64
	case "arm":
		return ArchArm
	case "arm64":
		return ArchAarch64
	case "mips", "mipsle", "mips64", "mips64le":
		return ArchMips
	case "ppc":
		return ArchPowerPC
	case "ppc64", "ppc64le":
		return ArchPowerPC64
	default:
		return ArchUnknown
	}
}

// probeVersion returns an opaque OS version string matched against rule
// regexes. MLCORE_OS_VERSION_OVERRIDE wins when set. On POSIX it is the
// kernel release from `uname -r`. On Windows it is the CSD_VERSION
// environment variable when the OS variable names Windows, else "unknown";
// the four-component Windows OS version is not queried. The value is never
// parsed structurally, only regex-matched.
func probeVersion() string {
	if v := os.Getenv("MLCORE_OS_VERSION_OVERRIDE"); v != "" {
		return v
	}
	switch runtime.GOOS {
	case "windows":
		return windowsVersion()
	default:
		return kernelRelease()
	}
}

func windowsVersion() string {
	if v, ok := os.LookupEnv("OS"); ok && strings.Contains(strings.ToLower(v), "windows") {
		if ver, ok := os.LookupEnv("CSD_VERSION"); ok {
			return ver
		}
	}
	return "unknown"
}
