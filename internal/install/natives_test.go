package install

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/internal/version"
)

func writeTestJar(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractNativesSkipsMetaInfAndExcludes(t *testing.T) {
	root := t.TempDir()
	jarPath := filepath.Join(root, "libraries", "natives.jar")
	writeTestJar(t, jarPath, map[string]string{
		"META-INF/MANIFEST.MF": "ignored",
		"liblwjgl.so":           "binary",
		"exclude/private.so":    "excluded",
	})

	libs := []version.ResolvedLibrary{
		{Path: "natives.jar", IsNativeLibrary: true, ExtractExclude: []string{"exclude/"}},
	}
	nativesDir := filepath.Join(root, "natives")

	err := ExtractNatives(libs, func(rel string) string { return filepath.Join(root, "libraries", rel) }, nativesDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(nativesDir, "liblwjgl.so"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(nativesDir, "private.so"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(nativesDir, "MANIFEST.MF"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractNativesIgnoresNonNativeLibraries(t *testing.T) {
	root := t.TempDir()
	nativesDir := filepath.Join(root, "natives")
	libs := []version.ResolvedLibrary{{Path: "regular.jar", IsNativeLibrary: false}}

	err := ExtractNatives(libs, func(rel string) string { return filepath.Join(root, "libraries", rel) }, nativesDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(nativesDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
