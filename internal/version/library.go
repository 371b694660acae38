package version

import (
	"strings"

	"github.com/brightforge/mlcore/internal/errs"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/rules"
)

// ResolvedLibrary is the final per-library record spec.md §3/§4.H demands:
// a classpath entry or an extractable native, never both.
type ResolvedLibrary struct {
	Path            string
	SHA1            string
	Size            int64
	URL             string
	IsNativeLibrary bool
	ExtractExclude  []string
}

// ResolveLibraries applies rules, natives classifiers and the Maven
// coordinate fallback to a flat library list, per spec.md §4.H:
//  1. rules gate inclusion;
//  2. downloads.artifact present -> emit directly;
//  3. otherwise parse "group:name:version" and synthesize a path, using
//     forgeMavenURL as the default base when the library has no explicit url;
//  4. a natives classifier for the current OS marks the entry native and
//     points its path at the classifier jar instead of the main artifact.
func ResolveLibraries(libs []RawLibrary, p platform.Platform, forgeMavenURL string) ([]ResolvedLibrary, error) {
	out := make([]ResolvedLibrary, 0, len(libs))
	for _, lib := range libs {
		if !rules.Allowed(lib.Rules, p) {
			continue
		}

		if classifierKey, ok := lib.Natives[string(p.Name)]; ok && classifierKey != "" {
			classifierKey = strings.ReplaceAll(classifierKey, "${arch}", archBits(p.Arch))
			if art, ok := lib.Downloads.Classifiers[classifierKey]; ok {
				out = append(out, ResolvedLibrary{
					Path:            art.Path,
					SHA1:            art.SHA1,
					Size:            art.Size,
					URL:             art.URL,
					IsNativeLibrary: true,
					ExtractExclude:  lib.Extract["exclude"],
				})
				continue
			}
		}

		if lib.Downloads.Artifact.Path != "" {
			out = append(out, ResolvedLibrary{
				Path: lib.Downloads.Artifact.Path,
				SHA1: lib.Downloads.Artifact.SHA1,
				Size: lib.Downloads.Artifact.Size,
				URL:  lib.Downloads.Artifact.URL,
			})
			continue
		}

		resolved, err := mavenFallback(lib, forgeMavenURL)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// mavenFallback implements spec.md §4.H step 3: "parse Maven coordinate
// group:name:version (reject entries with fewer/more than 3 segments);
// compute path = <group-as-dir>/<name>/<version>/<name>-<version>.jar".
func mavenFallback(lib RawLibrary, forgeMavenURL string) (ResolvedLibrary, error) {
	parts := strings.Split(lib.Name, ":")
	if len(parts) != 3 {
		return ResolvedLibrary{}, errs.New(errs.BadVersionJson, "malformed Maven coordinate: "+lib.Name)
	}
	group, artifact, ver := parts[0], parts[1], parts[2]
	groupPath := strings.ReplaceAll(group, ".", "/")
	path := strings.Join([]string{groupPath, artifact, ver, artifact + "-" + ver + ".jar"}, "/")

	url := lib.URL
	if url == "" {
		url = strings.TrimRight(forgeMavenURL, "/") + "/" + path
	} else {
		url = strings.TrimRight(url, "/") + "/" + path
	}

	return ResolvedLibrary{Path: path, URL: url}, nil
}

func archBits(a platform.Arch) string {
	switch a {
	case platform.ArchX64, platform.ArchAarch64, platform.ArchPowerPC64:
		return "64"
	default:
		return "32"
	}
}
