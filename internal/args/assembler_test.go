package args

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/options"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/version"
)

func writeAssemblerVersionJSON(t *testing.T, f folder.Folder, id string) {
	t.Helper()
	path := f.VersionJSON(id)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	body := `{"id":"` + id + `","mainClass":"net.minecraft.client.main.Main"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestBuildAssemblesTokensInOrder(t *testing.T) {
	f := folder.New(t.TempDir())
	p := platform.Platform{Name: platform.Linux}
	writeAssemblerVersionJSON(t, f, "1.20")
	o, err := options.New("1.20", f)
	require.NoError(t, err)
	o.GameIconPath = "/icons/icon.png"

	rv := &version.Resolved{
		ID:         "1.20",
		Type:       "release",
		MainClass:  "net.minecraft.client.main.Main",
		Assets:     "1.20",
		AssetIndex: version.AssetIndexRef{ID: "1.20"},
		JvmArgs:    []string{"-Djava.library.path=${natives_directory}", "-cp", "${classpath}"},
		GameArgs:   []string{"--username", "${auth_player_name}", "--version", "${version_name}"},
	}

	tokens, err := Build(o, rv, p, f)
	require.NoError(t, err)

	mainClassIdx := indexOf(tokens, rv.MainClass)
	require.GreaterOrEqual(t, mainClassIdx, 0)

	usernameIdx := indexOf(tokens, "--username")
	require.GreaterOrEqual(t, usernameIdx, 0)
	assert.Greater(t, usernameIdx, mainClassIdx)
	assert.Equal(t, o.Profile.Name, tokens[usernameIdx+1])

	assert.Contains(t, tokens, "-Xms128M")
	assert.Contains(t, tokens, "-Xmx2048M")
}

func TestBuildAppendsServerAutoconnect(t *testing.T) {
	f := folder.New(t.TempDir())
	p := platform.Platform{Name: platform.Linux}
	writeAssemblerVersionJSON(t, f, "1.20")
	o, err := options.New("1.20", f)
	require.NoError(t, err)
	o.Server = &options.Server{Host: "mc.example.invalid", Port: 25565}

	rv := &version.Resolved{MainClass: "Main", AssetIndex: version.AssetIndexRef{ID: "1.20"}}
	tokens, err := Build(o, rv, p, f)
	require.NoError(t, err)

	idx := indexOf(tokens, "--server")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "mc.example.invalid", tokens[idx+1])
	assert.Equal(t, "--port", tokens[idx+2])
	assert.Equal(t, "25565", tokens[idx+3])
}

func indexOf(tokens []string, v string) int {
	for i, t := range tokens {
		if t == v {
			return i
		}
	}
	return -1
}
