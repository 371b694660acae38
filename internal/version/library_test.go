package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/rules"
)

func TestResolveLibrariesArtifactDirect(t *testing.T) {
	libs := []RawLibrary{
		{Name: "com.example:lib:1.0", Downloads: LibraryDownloads{Artifact: ArtifactDownload{Path: "p/lib.jar", URL: "https://x/lib.jar", SHA1: "aaa"}}},
	}
	out, err := ResolveLibraries(libs, platform.Platform{Name: platform.Linux}, "https://maven.invalid")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p/lib.jar", out[0].Path)
	assert.False(t, out[0].IsNativeLibrary)
}

func TestResolveLibrariesMavenFallback(t *testing.T) {
	libs := []RawLibrary{{Name: "com.example:lib:1.0"}}
	out, err := ResolveLibraries(libs, platform.Platform{Name: platform.Linux}, "https://maven.invalid/")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "com/example/lib/1.0/lib-1.0.jar", out[0].Path)
	assert.Equal(t, "https://maven.invalid/com/example/lib/1.0/lib-1.0.jar", out[0].URL)
}

func TestResolveLibrariesMalformedCoordinate(t *testing.T) {
	libs := []RawLibrary{{Name: "not-a-coordinate"}}
	_, err := ResolveLibraries(libs, platform.Platform{Name: platform.Linux}, "https://maven.invalid")
	require.Error(t, err)
}

func TestResolveLibrariesNativeClassifier(t *testing.T) {
	libs := []RawLibrary{
		{
			Name:    "org.lwjgl:lwjgl-natives:1.0",
			Natives: map[string]string{"linux": "natives-linux"},
			Downloads: LibraryDownloads{
				Classifiers: map[string]ArtifactDownload{
					"natives-linux": {Path: "org/lwjgl/natives-linux.jar", URL: "https://x/natives-linux.jar", SHA1: "bbb"},
				},
			},
		},
	}
	out, err := ResolveLibraries(libs, platform.Platform{Name: platform.Linux, Arch: platform.ArchX64}, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsNativeLibrary)
	assert.Equal(t, "org/lwjgl/natives-linux.jar", out[0].Path)
}

func TestResolveLibrariesRulesExcludeLibrary(t *testing.T) {
	libs := []RawLibrary{
		{
			Name:  "com.example:lib:1.0",
			Rules: []rules.Rule{{Action: "disallow"}},
		},
	}
	out, err := ResolveLibraries(libs, platform.Platform{Name: platform.Linux}, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}
