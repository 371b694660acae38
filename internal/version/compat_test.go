package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMinimumLauncherVersionAccepts(t *testing.T) {
	rv := &Resolved{ID: "1.20", MinimumLauncherVersion: 18}
	require.NoError(t, CheckMinimumLauncherVersion(rv))
}

func TestCheckMinimumLauncherVersionRejectsNewer(t *testing.T) {
	rv := &Resolved{ID: "future", MinimumLauncherVersion: 999}
	assert.Error(t, CheckMinimumLauncherVersion(rv))
}

func TestCompareJavaMajor(t *testing.T) {
	assert.Equal(t, -1, CompareJavaMajor(JavaVersion{Major: 8}, JavaVersion{Major: 17}))
	assert.Equal(t, 0, CompareJavaMajor(JavaVersion{Major: 17}, JavaVersion{Major: 17}))
	assert.Equal(t, 1, CompareJavaMajor(JavaVersion{Major: 21}, JavaVersion{Major: 17}))
}
