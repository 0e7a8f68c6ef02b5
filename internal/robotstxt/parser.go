package robotstxt

import (
	"sort"
	"strings"
)

// Directive prefixes. Matching is case-insensitive on the keyword and
// requires the colon-space; a line like "Allow:/x" is not a directive.
const (
	prefixUserAgent = "user-agent: "
	prefixAllow     = "allow: "
	prefixDisallow  = "disallow: "
	prefixSitemap   = "sitemap: "
)

// Parse converts raw robots.txt text into a RuleSet. It cannot fail:
// comments, blank lines, unrecognized directives, and Allow/Disallow rules
// issued before any User-agent line are silently dropped.
//
// Agent names and path patterns keep the case they were written in; only
// the directive keywords are case-insensitive. A User-agent line sets the
// context for every Allow/Disallow that follows it, until the next
// User-agent line. Naming the same agent twice appends to the same
// accumulated lists.
func Parse(text string) *RuleSet {
	rs := &RuleSet{rules: make(map[string]*Rules)}

	currentAgent := ""
	haveAgent := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case hasFoldPrefix(line, prefixUserAgent):
			currentAgent = strings.TrimSpace(line[len(prefixUserAgent):])
			haveAgent = true
		case hasFoldPrefix(line, prefixAllow):
			if !haveAgent {
				continue
			}
			if value := strings.TrimSpace(line[len(prefixAllow):]); value != "" {
				r := rs.rulesFor(currentAgent)
				r.Allow = append(r.Allow, value)
			}
		case hasFoldPrefix(line, prefixDisallow):
			if !haveAgent {
				continue
			}
			if value := strings.TrimSpace(line[len(prefixDisallow):]); value != "" {
				r := rs.rulesFor(currentAgent)
				r.Disallow = append(r.Disallow, value)
			}
		case hasFoldPrefix(line, prefixSitemap):
			if value := strings.TrimSpace(line[len(prefixSitemap):]); value != "" {
				rs.sitemaps = append(rs.sitemaps, value)
			}
		}
	}

	// Longest-first ordering lets the matcher take the first hit as the
	// most specific one. The sorts are stable so equal-length patterns
	// keep their source order.
	for _, r := range rs.rules {
		sortByLengthDesc(r.Allow)
		sortByLengthDesc(r.Disallow)
	}
	sortByLengthDesc(rs.agents)

	return rs
}

// rulesFor returns the block for an agent pattern, creating it on first
// use. The agent index records every key exactly once, in encounter order
// until the final sort.
func (rs *RuleSet) rulesFor(agent string) *Rules {
	r, ok := rs.rules[agent]
	if !ok {
		r = &Rules{}
		rs.rules[agent] = r
		rs.agents = append(rs.agents, agent)
	}
	return r
}

// hasFoldPrefix reports whether s starts with prefix ignoring case. Only
// directive keywords are ever passed as prefix.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func sortByLengthDesc(patterns []string) {
	sort.SliceStable(patterns, func(i, j int) bool {
		return len(patterns[i]) > len(patterns[j])
	})
}
