// Package audit runs declared crawl-permission expectations against a
// parsed robots.txt rule set. A checks file says "this agent must (not) be
// able to fetch this path"; the evaluator reports which expectations hold.
package audit

// Expect is the decision a check requires.
type Expect string

const (
	ExpectAllow Expect = "allow"
	ExpectDeny  Expect = "deny"
)

// Check is a single expected crawl decision from a checks file.
type Check struct {
	Name   string // Unique identifier (e.g., "homepage-open")
	Agent  string // User agent the decision is made for
	Path   string // Absolute path component to query
	Expect Expect // Required decision
}

// CheckResult is the outcome of running one check.
type CheckResult struct {
	Name    string `json:"name"`
	Agent   string `json:"agent"`
	Path    string `json:"path"`
	Expect  Expect `json:"expect"`
	Allowed bool   `json:"allowed"` // decision the rule set actually produced
	Passed  bool   `json:"passed"`
}

// EvalResult is the outcome of a full audit run.
type EvalResult struct {
	Passed  bool          `json:"passed"`
	Results []CheckResult `json:"results"`
}
