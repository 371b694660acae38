package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/internal/folder"
)

func writeVersionJSON(t *testing.T, f folder.Folder, id string) {
	t.Helper()
	path := f.VersionJSON(id)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	body := `{"id":"` + id + `","mainClass":"net.minecraft.client.main.Main"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestNewAppliesDefaults(t *testing.T) {
	f := folder.New(t.TempDir())
	writeVersionJSON(t, f, "1.20")

	o, err := New("1.20", f)
	require.NoError(t, err)

	assert.Equal(t, "Player", o.Profile.Name)
	assert.Equal(t, UserLegacy, o.UserType)
	assert.Equal(t, 128, o.MinMemoryMB)
	assert.Equal(t, 2048, o.MaxMemoryMB)
	assert.Equal(t, GCG1, o.GC)
	assert.Equal(t, PriorityNormal, o.ProcessPriority)

	_, err = uuid.Parse(o.Profile.UUID)
	require.NoError(t, err)
	_, err = uuid.Parse(o.AccessToken)
	require.NoError(t, err)
}

func TestNewDerivesPathsFromFolder(t *testing.T) {
	f := folder.New(t.TempDir())
	writeVersionJSON(t, f, "1.20")

	o, err := New("1.20", f)
	require.NoError(t, err)
	assert.Equal(t, f.VersionRoot("1.20"), o.GameDir)
	assert.Equal(t, filepath.Join(f.Root, "versions", "1.20", "natives"), o.NativeDir)
}

func TestNewParsesVersionJSON(t *testing.T) {
	f := folder.New(t.TempDir())
	writeVersionJSON(t, f, "1.20")

	o, err := New("1.20", f)
	require.NoError(t, err)
	require.NotNil(t, o.Version)
	assert.Equal(t, "net.minecraft.client.main.Main", o.Version.MainClass)
}

func TestNewFailsWhenVersionJSONMissing(t *testing.T) {
	f := folder.New(t.TempDir())
	_, err := New("missing", f)
	assert.Error(t, err)
}
