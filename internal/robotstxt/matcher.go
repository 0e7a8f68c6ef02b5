package robotstxt

import "github.com/insprac/kirby/internal/pattern"

// IsAllowed reports whether a crawler identifying as userAgent may fetch
// path. The path is expected to be an already-normalized absolute path
// component ("/foo/bar"); it is matched verbatim.
//
// The governing block is the longest agent pattern matching userAgent. A
// user agent no block governs may fetch anything. Within the block the
// longest matching allow and disallow patterns compete, and allow wins
// only when it is strictly longer: equal lengths resolve to disallowed.
func (rs *RuleSet) IsAllowed(userAgent, path string) bool {
	rules, ok := rs.resolveAgent(userAgent)
	if !ok {
		return true
	}

	bestAllow, hasAllow := firstMatch(rules.Allow, path)
	bestDisallow, hasDisallow := firstMatch(rules.Disallow, path)

	switch {
	case !hasDisallow:
		return true
	case !hasAllow:
		return false
	default:
		return len(bestAllow) > len(bestDisallow)
	}
}

// resolveAgent finds the block governing userAgent: the first entry of the
// longest-first agent index whose pattern matches it.
func (rs *RuleSet) resolveAgent(userAgent string) (*Rules, bool) {
	for _, agent := range rs.agents {
		if pattern.Match(agent, userAgent) {
			return rs.rules[agent], true
		}
	}
	return nil, false
}

// firstMatch returns the first pattern in a longest-first list that
// matches path, which is also the most specific match.
func firstMatch(patterns []string, path string) (string, bool) {
	for _, p := range patterns {
		if pattern.Match(p, path) {
			return p, true
		}
	}
	return "", false
}
