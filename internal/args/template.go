package args

import "regexp"

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Substitute expands ${key} placeholders against repl. An unknown key is
// replaced by its bare name, not left as "${key}" — spec.md §4.L step 10 /
// §9 design note: "the exact unknown-key behaviour in the source leaves
// the bare key name in place. This is preserved."
func Substitute(template string, repl map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		if v, ok := repl[key]; ok {
			return v
		}
		return key
	})
}
