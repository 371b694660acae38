package version

import (
	"strconv"

	"github.com/Masterminds/semver/v3"

	"github.com/brightforge/mlcore/internal/errs"
)

// launcherSelfVersion is compared against a resolved version's
// minimumLauncherVersion gate (spec.md §3's "MinimumLauncherVersion").
// mlcore reports itself as a high version so it never spuriously refuses to
// launch content meant for a modern official launcher.
const launcherSelfVersion = 21

// CheckMinimumLauncherVersion fails with BadVersionJson when rv demands a
// newer launcher than mlcore declares itself to be, mirroring the official
// launcher's own self-gate.
func CheckMinimumLauncherVersion(rv *Resolved) error {
	if rv.MinimumLauncherVersion > launcherSelfVersion {
		return errs.New(errs.BadVersionJson, "version requires a newer launcher").WithVersion(rv.ID)
	}
	return nil
}

// CompareJavaMajor orders two resolved versions by their required Java
// major version using semver, so a caller juggling multiple installed JDKs
// can pick the lowest JDK that satisfies every version it needs to launch.
// javaVersion.majorVersion is a bare integer (8, 17, 21, ...), so it is
// turned into an X.0.0 constraint for comparison.
func CompareJavaMajor(a, b JavaVersion) int {
	va, erra := semver.NewVersion(majorToSemver(a.Major))
	vb, errb := semver.NewVersion(majorToSemver(b.Major))
	if erra != nil || errb != nil {
		if a.Major == b.Major {
			return 0
		}
		if a.Major < b.Major {
			return -1
		}
		return 1
	}
	return va.Compare(vb)
}

func majorToSemver(major int) string {
	if major <= 0 {
		major = 8
	}
	return strconv.Itoa(major) + ".0.0"
}
