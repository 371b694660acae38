package version

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/internal/errs"
	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/platform"
)

// Resolved is the merged, rule-filtered, launch-ready form of a version
// (spec.md §3 "Resolved version").
type Resolved struct {
	ID                     string
	Type                   string
	Time                   string
	ReleaseTime            string
	MinimumLauncherVersion int
	MainClass              string
	Assets                 string
	AssetIndex             AssetIndexRef
	Downloads              map[string]DownloadEntry
	Libraries              []ResolvedLibrary
	JvmArgs                []string
	GameArgs               []string
	Logging                *Logging
	JavaVersion            JavaVersion
	ClientVersion          string
	Inheritances           []string
	PathChain              []string
}

// defaultJavaVersion is spec.md §3's fallback when no link in the
// inheritance chain sets one.
var defaultJavaVersion = JavaVersion{Component: "jre-legacy", Major: 8}

// loadChain reads versions/<id>/<id>.json and recursively follows
// inheritsFrom, returning the chain root-first (parent before child) along
// with the traversed ids/paths in child-to-root discovery order, excluding
// the requested id itself (spec.md S2: "inheritances=[\"p\"]" for a 2-link
// chain). A repeated id is a cycle and is fatal.
func loadChain(f folder.Folder, id string) (chain []*Raw, inheritances []string, pathChain []string, err error) {
	seen := map[string]bool{}
	cur := id
	var forward []*Raw
	for {
		if seen[cur] {
			return nil, nil, nil, errs.New(errs.BadVersionJson, "inheritance cycle detected at "+cur)
		}
		seen[cur] = true

		path := f.VersionJSON(cur)
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, nil, nil, errs.Wrap(errs.IoError, "read version json", rerr).WithPath(path).WithVersion(cur)
		}
		raw, perr := ParseRaw(data)
		if perr != nil {
			return nil, nil, nil, errs.Wrap(errs.JsonError, "parse version json", perr).WithPath(path).WithVersion(cur)
		}
		forward = append(forward, raw)
		if cur != id {
			inheritances = append(inheritances, cur)
			pathChain = append(pathChain, path)
		}

		if raw.InheritsFrom == "" {
			break
		}
		cur = raw.InheritsFrom
	}

	// forward is child-first (leaf..root); reverse to root-first for merge.
	chain = make([]*Raw, len(forward))
	for i, r := range forward {
		chain[i] = forward[len(forward)-1-i]
	}
	return chain, inheritances, pathChain, nil
}

// merge folds the root-first chain into one Raw, child values overriding
// parent values only when present, per spec.md §4.F.
func merge(chain []*Raw) *Raw {
	out := &Raw{}
	for _, r := range chain {
		if r.ID != "" {
			out.ID = r.ID
		}
		if r.Type != "" {
			out.Type = r.Type
		}
		if r.Time != "" {
			out.Time = r.Time
		}
		if r.ReleaseTime != "" {
			out.ReleaseTime = r.ReleaseTime
		}
		if r.MinimumLauncherVersion != 0 {
			out.MinimumLauncherVersion = r.MinimumLauncherVersion
		}
		if r.MainClass != "" {
			out.MainClass = r.MainClass
		}
		if r.Assets != "" {
			out.Assets = r.Assets
		}
		if r.AssetIndex != nil {
			out.AssetIndex = r.AssetIndex
		}
		if r.JavaVersion != nil {
			out.JavaVersion = r.JavaVersion
		}
		if r.ClientVersion != "" {
			out.ClientVersion = r.ClientVersion
		}
		if r.MinecraftArguments != "" {
			out.MinecraftArguments = r.MinecraftArguments
		}
		if len(r.Downloads) > 0 {
			out.Downloads = r.Downloads
		}
		if r.Logging != nil {
			out.Logging = r.Logging
		}

		out.Libraries = append(out.Libraries, r.Libraries...)

		if r.Arguments != nil {
			if out.Arguments == nil {
				out.Arguments = &Arguments{}
			}
			out.Arguments.Game = append(out.Arguments.Game, r.Arguments.Game...)
			out.Arguments.JVM = append(out.Arguments.JVM, r.Arguments.JVM...)
		}
	}
	return out
}

// Resolve loads versions/<id>/<id>.json, walks its inheritance chain,
// merges, rule-filters, and flattens into a Resolved version. It fails with
// BadVersionJson if any of the §3 invariants don't hold afterward.
func Resolve(f folder.Folder, id string, p platform.Platform, forgeMavenURL string) (*Resolved, error) {
	chain, inheritances, pathChain, err := loadChain(f, id)
	if err != nil {
		return nil, err
	}
	merged := merge(chain)

	if len(inheritances) > 0 {
		logrus.WithFields(logrus.Fields{"id": id, "inherits": inheritances}).Debug("resolved inheritance chain")
	}

	if merged.MainClass == "" {
		return nil, errs.New(errs.BadVersionJson, "mainClass is empty").WithVersion(id)
	}
	if merged.AssetIndex == nil || merged.AssetIndex.ID == "" {
		return nil, errs.New(errs.BadVersionJson, "assetIndex is missing or default").WithVersion(id)
	}
	if len(merged.Downloads) == 0 {
		return nil, errs.New(errs.BadVersionJson, "downloads is empty").WithVersion(id)
	}

	libs, err := ResolveLibraries(merged.Libraries, p, forgeMavenURL)
	if err != nil {
		return nil, err
	}

	var jvmArgs, gameArgs []string
	if merged.Arguments != nil {
		jvmArgs = FlattenArguments(merged.Arguments.JVM, p)
		gameArgs = FlattenArguments(merged.Arguments.Game, p)
	} else if merged.MinecraftArguments != "" {
		gameArgs = ParseLegacyMinecraftArguments(merged.MinecraftArguments)
	}

	jv := defaultJavaVersion
	if merged.JavaVersion != nil {
		jv = *merged.JavaVersion
	}

	rv := &Resolved{
		ID:                     id,
		Type:                   merged.Type,
		Time:                   merged.Time,
		ReleaseTime:            merged.ReleaseTime,
		MinimumLauncherVersion: merged.MinimumLauncherVersion,
		MainClass:              merged.MainClass,
		Assets:                 merged.Assets,
		AssetIndex:             *merged.AssetIndex,
		Downloads:              merged.Downloads,
		Libraries:              libs,
		JvmArgs:                jvmArgs,
		GameArgs:               gameArgs,
		Logging:                merged.Logging,
		JavaVersion:            jv,
		ClientVersion:          merged.ClientVersion,
		Inheritances:           inheritances,
		PathChain:              pathChain,
	}

	if err := CheckMinimumLauncherVersion(rv); err != nil {
		return nil, err
	}
	return rv, nil
}
