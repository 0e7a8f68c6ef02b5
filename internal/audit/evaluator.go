package audit

import "github.com/insprac/kirby/internal/robotstxt"

// Evaluate runs every check against a parsed rule set.
// It does not short-circuit: results for passing and failing checks alike
// are returned, in the order the checks were declared.
func Evaluate(rs *robotstxt.RuleSet, checks []Check) EvalResult {
	result := EvalResult{
		Passed:  true,
		Results: make([]CheckResult, 0, len(checks)),
	}

	for _, check := range checks {
		allowed := rs.IsAllowed(check.Agent, check.Path)
		passed := allowed == (check.Expect == ExpectAllow)
		if !passed {
			result.Passed = false
		}

		result.Results = append(result.Results, CheckResult{
			Name:    check.Name,
			Agent:   check.Agent,
			Path:    check.Path,
			Expect:  check.Expect,
			Allowed: allowed,
			Passed:  passed,
		})
	}

	return result
}
