package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightforge/mlcore/internal/platform"
)

func TestAllowedEmptyRuleList(t *testing.T) {
	assert.True(t, Allowed(nil, platform.Platform{Name: platform.Linux}))
}

func TestAllowedOSDisallow(t *testing.T) {
	rs := []Rule{
		{Action: "allow"},
		{Action: "disallow", OS: &OS{Name: "windows"}},
	}
	assert.True(t, Allowed(rs, platform.Platform{Name: platform.Linux}))
	assert.False(t, Allowed(rs, platform.Platform{Name: platform.Windows}))
}

func TestAllowedOSVersionRegex(t *testing.T) {
	rs := []Rule{
		{Action: "disallow", OS: &OS{Name: "osx", Version: "^10\\."}},
	}
	assert.False(t, Allowed(rs, platform.Platform{Name: platform.OSX, Version: "10.14.0"}))
	assert.True(t, Allowed(rs, platform.Platform{Name: platform.OSX, Version: "11.0.0"}))
}

func TestAllowedBadRegexIsSkipped(t *testing.T) {
	rs := []Rule{
		{Action: "allow"},
		{Action: "disallow", OS: &OS{Name: "linux", Version: "("}},
	}
	assert.True(t, Allowed(rs, platform.Platform{Name: platform.Linux, Version: "6.1.0"}))
}

func TestAllowedFeatureGatedRuleNeverMatches(t *testing.T) {
	rs := []Rule{
		{Action: "allow", Features: map[string]bool{"is_demo_user": true}},
	}
	assert.False(t, Allowed(rs, platform.Platform{Name: platform.Linux}))
}
