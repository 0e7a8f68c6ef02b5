// Package pattern implements the wildcard matching used for robots.txt
// agent and path patterns.
package pattern

import "strings"

// Match reports whether candidate satisfies pattern.
//
// A pattern without '*' is a plain prefix check: it matches any candidate
// that starts with it. There is no anchoring beyond that and no '$'
// end-of-string support.
//
// A pattern containing '*' must consume the whole candidate: '*' matches
// any run of characters, '/' included, and a zero-length run is fine.
func Match(pattern, candidate string) bool {
	if !strings.Contains(pattern, "*") {
		return strings.HasPrefix(candidate, pattern)
	}
	return matchRunes([]rune(pattern), []rune(candidate))
}

// matchRunes is a classic backtracking wildcard match. The worst case is
// exponential, which is acceptable for the tens-of-characters patterns
// robots.txt files carry in practice.
func matchRunes(p, s []rune) bool {
	if len(p) == 0 {
		return len(s) == 0
	}
	if p[0] == '*' {
		// The star either consumes nothing, or swallows one more
		// candidate rune and stays active.
		if matchRunes(p[1:], s) {
			return true
		}
		return len(s) > 0 && matchRunes(p, s[1:])
	}
	if len(s) == 0 || p[0] != s[0] {
		return false
	}
	return matchRunes(p[1:], s[1:])
}
