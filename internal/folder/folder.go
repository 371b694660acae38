// Package folder computes every on-disk path derived from a game root. All
// getters are pure functions of (root, id, platform); no I/O is performed
// here.
package folder

import (
	"fmt"
	"path/filepath"

	"github.com/brightforge/mlcore/internal/platform"
)

// Folder is rooted at a game directory and exposes the fixed layout
// described in spec.md §6.
type Folder struct {
	Root string
}

// New roots a Folder at the given game directory.
func New(root string) Folder {
	return Folder{Root: root}
}

func (f Folder) Libraries() string { return filepath.Join(f.Root, "libraries") }
func (f Folder) Assets() string    { return filepath.Join(f.Root, "assets") }
func (f Folder) Mods() string      { return filepath.Join(f.Root, "mods") }

func (f Folder) Resourcepacks() string { return filepath.Join(f.Root, "resourcepacks") }
func (f Folder) Saves() string         { return filepath.Join(f.Root, "saves") }
func (f Folder) Screenshots() string   { return filepath.Join(f.Root, "screenshots") }
func (f Folder) Options() string       { return filepath.Join(f.Root, "options.txt") }
func (f Folder) Logs() string          { return filepath.Join(f.Root, "logs") }
func (f Folder) LatestLog() string     { return filepath.Join(f.Logs(), "latest.log") }

func (f Folder) Versions() string { return filepath.Join(f.Root, "versions") }

// VersionRoot returns versions/<id>.
func (f Folder) VersionRoot(id string) string {
	return filepath.Join(f.Versions(), id)
}

// VersionJSON returns versions/<id>/<id>.json.
func (f Folder) VersionJSON(id string) string {
	return filepath.Join(f.VersionRoot(id), id+".json")
}

// VersionJar returns <id>.jar for kind "" or "client", else <id>-<kind>.jar.
func (f Folder) VersionJar(id string, kind string) string {
	if kind == "" || kind == "client" {
		return filepath.Join(f.VersionRoot(id), id+".jar")
	}
	return filepath.Join(f.VersionRoot(id), fmt.Sprintf("%s-%s.jar", id, kind))
}

// NativesRoot returns versions/<id>/natives-<os>-<arch>.
func (f Folder) NativesRoot(id string, p platform.Platform) string {
	return filepath.Join(f.VersionRoot(id), fmt.Sprintf("natives-%s-%s", p.Name, p.Arch))
}

// LibraryPath joins a Maven-style relative path under libraries/.
func (f Folder) LibraryPath(rel string) string {
	return filepath.Join(f.Libraries(), filepath.FromSlash(rel))
}

// AssetIndex returns assets/indexes/<assetsID>.json.
func (f Folder) AssetIndex(assetsID string) string {
	return filepath.Join(f.Assets(), "indexes", assetsID+".json")
}

// AssetObject returns assets/objects/<hh>/<hash> for a content hash.
func (f Folder) AssetObject(hash string) string {
	sub := hash
	if len(hash) >= 2 {
		sub = hash[:2]
	}
	return filepath.Join(f.Assets(), "objects", sub, hash)
}

// LogConfig returns assets/log_configs/<file>.
func (f Folder) LogConfig(file string) string {
	return filepath.Join(f.Assets(), "log_configs", file)
}
