package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/platform"
)

func writeVersionJSON(t *testing.T, f folder.Folder, id, body string) {
	t.Helper()
	dir := f.VersionRoot(id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte(body), 0o644))
}

const parentJSON = `{
	"id": "1.20",
	"mainClass": "net.minecraft.client.main.Main",
	"assetIndex": {"id": "1.20", "url": "https://example.invalid/1.20.json", "sha1": "abc"},
	"downloads": {"client": {"url": "https://example.invalid/client.jar", "sha1": "def"}},
	"libraries": [{"name": "com.parent:lib:1.0", "downloads": {"artifact": {"path": "com/parent/lib/1.0/lib-1.0.jar", "url": "https://example.invalid/lib.jar", "sha1": "111"}}}]
}`

const childJSON = `{
	"id": "fabric-loader-0.1-1.20",
	"inheritsFrom": "1.20",
	"mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient",
	"libraries": [{"name": "net.fabricmc:loader:0.1", "downloads": {"artifact": {"path": "net/fabricmc/loader/0.1/loader-0.1.jar", "url": "https://example.invalid/loader.jar", "sha1": "222"}}}]
}`

func TestResolveMergesInheritanceChain(t *testing.T) {
	root := t.TempDir()
	f := folder.New(root)
	writeVersionJSON(t, f, "1.20", parentJSON)
	writeVersionJSON(t, f, "fabric-loader-0.1-1.20", childJSON)

	rv, err := Resolve(f, "fabric-loader-0.1-1.20", platform.Platform{Name: platform.Linux}, "https://maven.invalid")
	require.NoError(t, err)

	assert.Equal(t, "net.fabricmc.loader.impl.launch.knot.KnotClient", rv.MainClass)
	assert.Equal(t, "1.20", rv.AssetIndex.ID)
	assert.Equal(t, []string{"1.20"}, rv.Inheritances)
	assert.Len(t, rv.Libraries, 2)
	assert.Equal(t, defaultJavaVersion, rv.JavaVersion)
}

func TestResolveDetectsInheritanceCycle(t *testing.T) {
	root := t.TempDir()
	f := folder.New(root)
	writeVersionJSON(t, f, "a", `{"id":"a","inheritsFrom":"b","mainClass":"x"}`)
	writeVersionJSON(t, f, "b", `{"id":"b","inheritsFrom":"a","mainClass":"x"}`)

	_, err := Resolve(f, "a", platform.Platform{Name: platform.Linux}, "")
	require.Error(t, err)
}

func TestResolveRejectsMissingMainClass(t *testing.T) {
	root := t.TempDir()
	f := folder.New(root)
	writeVersionJSON(t, f, "bad", `{"id":"bad","assetIndex":{"id":"x"},"downloads":{"client":{"url":"u"}}}`)

	_, err := Resolve(f, "bad", platform.Platform{Name: platform.Linux}, "")
	require.Error(t, err)
}
