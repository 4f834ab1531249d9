// Package pathenv rebuilds the minimal environment handed to the target.
// The child must not inherit an attacker-influenced environment, so every
// inherited variable is dropped and PATH is reduced to an allowlist.
package pathenv

import "strings"

// Allowlist of standard system directories, in priority order. Only
// entries also present in the inherited PATH survive sanitization.
var allowed = [...]string{
	"/usr/local/sbin",
	"/usr/local/bin",
	"/usr/sbin",
	"/usr/bin",
	"/sbin",
	"/bin",
}

// Fallback used when no allowlisted entry appears in the inherited PATH.
const fallback = "/bin"

// Sanitize computes the child PATH value from the inherited one. An absent
// inherited PATH is passed as the empty string.
func Sanitize(inherited string) string {
	present := make(map[string]struct{})
	for _, p := range strings.Split(inherited, ":") {
		if p != "" {
			present[p] = struct{}{}
		}
	}

	var sb strings.Builder
	for _, p := range allowed {
		if _, ok := present[p]; !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(p)
	}
	if sb.Len() == 0 {
		return fallback
	}
	return sb.String()
}

// Environ builds the complete environment for the child process: a single
// PATH entry, nothing else.
func Environ(inherited string) []string {
	return []string{"PATH=" + Sanitize(inherited)}
}
