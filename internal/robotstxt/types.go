// Package robotstxt parses robots.txt text into a queryable rule set and
// answers crawl-permission queries against it. Parsing is total: malformed
// lines are dropped, never reported. A RuleSet is never mutated after Parse
// returns, so it is safe to share across concurrent crawl workers.
package robotstxt

// Rules holds the allow and disallow path patterns collected for a single
// agent pattern. Once parsing finishes both lists are sorted by descending
// pattern length, so the first match found during a scan is also the most
// specific one. The order never changes afterwards.
type Rules struct {
	Allow    []string
	Disallow []string
}

// RuleSet is the parsed, queryable form of a robots.txt file.
type RuleSet struct {
	rules    map[string]*Rules
	agents   []string // every agent pattern, longest first
	sitemaps []string
}

// Sitemaps returns the sitemap URLs in the order they appeared in the
// source text, duplicates included.
func (rs *RuleSet) Sitemaps() []string {
	return copyStrings(rs.sitemaps)
}

// Agents returns every agent pattern in the set, longest first. This is
// the order agent resolution scans in.
func (rs *RuleSet) Agents() []string {
	return copyStrings(rs.agents)
}

// AgentRules returns the block recorded under an exact agent pattern key.
// It is a plain lookup for inspection and tooling; crawl decisions go
// through IsAllowed, which resolves wildcards.
func (rs *RuleSet) AgentRules(agent string) (Rules, bool) {
	r, ok := rs.rules[agent]
	if !ok {
		return Rules{}, false
	}
	return Rules{
		Allow:    copyStrings(r.Allow),
		Disallow: copyStrings(r.Disallow),
	}, true
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
