package args

import (
	"strings"

	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/version"
)

// delimiter returns the classpath separator for p — ';' on Windows, ':'
// otherwise, per spec.md §4.L step 9 / §8 invariant 6.
func delimiter(p platform.Platform) string {
	if p.Name == platform.Windows {
		return ";"
	}
	return ":"
}

// BuildClasspath joins every non-native resolved library plus the version
// jar, in order, with the platform delimiter, then appends caller-supplied
// extra classpath entries.
func BuildClasspath(f folder.Folder, versionID string, libs []version.ResolvedLibrary, p platform.Platform, extra []string) string {
	var parts []string
	for _, lib := range libs {
		if lib.IsNativeLibrary {
			continue
		}
		parts = append(parts, f.LibraryPath(lib.Path))
	}
	parts = append(parts, f.VersionJar(versionID, ""))
	parts = append(parts, extra...)
	return strings.Join(parts, delimiter(p))
}
