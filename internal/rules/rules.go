// Package rules evaluates the allow/disallow rule arrays that gate
// libraries and argument tokens against the current platform.
package rules

import (
	"regexp"

	"github.com/brightforge/mlcore/internal/platform"
)

// OS is the optional OS predicate inside a Rule.
type OS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Rule is one allow/disallow predicate, evaluated in order.
type Rule struct {
	Action   string         `json:"action"`
	OS       *OS            `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

// Allowed evaluates a rule list against a platform per spec.md §4.G:
// an empty list allows; otherwise start disallowed and let each matching
// rule (in order) overwrite the verdict. Feature predicates are read but
// always treated as false — see spec.md §4.G / Open Questions.
func Allowed(rs []Rule, p platform.Platform) bool {
	if len(rs) == 0 {
		return true
	}

	allow := false
	for _, r := range rs {
		action := r.Action == "allow"

		if !featuresMatch(r.Features) {
			continue
		}

		if r.OS == nil {
			allow = action
			continue
		}
		if r.OS.Name == "" {
			allow = action
			continue
		}
		if string(p.Name) != r.OS.Name {
			continue
		}
		if r.OS.Version == "" {
			allow = action
			continue
		}
		re, err := regexp.Compile(r.OS.Version)
		if err != nil {
			continue
		}
		if re.MatchString(p.Version) {
			allow = action
		}
	}
	return allow
}

// featuresMatch reports whether a rule's feature predicate is satisfied.
// mlcore tracks no active feature set, so any non-empty predicate is
// unsatisfied; a rule with no feature predicate always matches on that axis.
func featuresMatch(features map[string]bool) bool {
	return len(features) == 0
}
