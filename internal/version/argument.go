package version

import (
	"strings"

	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/rules"
)

// FlattenArguments turns a structured argument list into a token stream,
// applying rules.Allowed per structured entry; plain string entries always
// pass through. Tokens still contain ${placeholder} syntax — substitution
// is the argument assembler's job (spec.md §4.L), not the resolver's.
func FlattenArguments(entries []ArgumentEntry, p platform.Platform) []string {
	var out []string
	for _, e := range entries {
		if e.IsPlain {
			out = append(out, e.Plain)
			continue
		}
		if !rules.Allowed(e.Rules, p) {
			continue
		}
		out = append(out, e.Value...)
	}
	return out
}

// ParseLegacyMinecraftArguments normalizes the legacy flat-string
// minecraftArguments form into the same unconditional-allow token model
// used by arguments.game, unifying §4.H and §4.L per SPEC_FULL.md §7.
func ParseLegacyMinecraftArguments(template string) []string {
	if strings.TrimSpace(template) == "" {
		return nil
	}
	return strings.Fields(template)
}
