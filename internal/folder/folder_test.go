package folder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightforge/mlcore/internal/platform"
)

func TestVersionPaths(t *testing.T) {
	f := New("/game")
	assert.Equal(t, "/game/versions/1.20/1.20.json", f.VersionJSON("1.20"))
	assert.Equal(t, "/game/versions/1.20/1.20.jar", f.VersionJar("1.20", ""))
	assert.Equal(t, "/game/versions/1.20/1.20.jar", f.VersionJar("1.20", "client"))
	assert.Equal(t, "/game/versions/1.20/1.20-server.jar", f.VersionJar("1.20", "server"))
}

func TestNativesRoot(t *testing.T) {
	f := New("/game")
	p := platform.Platform{Name: platform.Linux, Arch: platform.ArchX64}
	assert.Equal(t, "/game/versions/1.20/natives-linux-x64", f.NativesRoot("1.20", p))
}

func TestAssetObjectShardsByPrefix(t *testing.T) {
	f := New("/game")
	assert.Equal(t, "/game/assets/objects/ab/abcdef", f.AssetObject("abcdef"))
}

func TestLibraryPathConvertsSlashes(t *testing.T) {
	f := New("/game")
	assert.Equal(t, filepath.Join("/game/libraries", "com/example/lib/1.0/lib-1.0.jar"), f.LibraryPath("com/example/lib/1.0/lib-1.0.jar"))
}
