package crash

import "regexp"

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes {name} placeholders in s using subs. Placeholders
// without a substitution are left verbatim, never treated as an error.
// In practice only {filename} is used, but any mapping is accepted.
func Render(s string, subs map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := subs[name]; ok {
			return v
		}
		return match
	})
}
