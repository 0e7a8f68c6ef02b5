package audit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatCLI formats an audit result for terminal output.
// Every check gets a PASS/FAIL line; failures also show the decision the
// rule set actually produced.
func FormatCLI(result EvalResult) string {
	var sb strings.Builder
	failed := 0

	for _, r := range result.Results {
		if r.Passed {
			sb.WriteString(fmt.Sprintf("PASS  %s: %s -> %s (%s)\n",
				r.Name, r.Agent, r.Path, r.Expect))
			continue
		}
		failed++
		sb.WriteString(fmt.Sprintf("FAIL  %s: %s -> %s decided %s, expected %s\n",
			r.Name, r.Agent, r.Path, decisionWord(r.Allowed), r.Expect))
	}

	if failed > 0 {
		sb.WriteString(fmt.Sprintf("\n%d of %d check(s) failed\n", failed, len(result.Results)))
	} else {
		sb.WriteString(fmt.Sprintf("\nAll %d check(s) passed\n", len(result.Results)))
	}

	return sb.String()
}

// FormatJSON formats an audit result as indented JSON.
func FormatJSON(result EvalResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decisionWord renders a boolean decision in checks-file vocabulary.
func decisionWord(allowed bool) string {
	if allowed {
		return string(ExpectAllow)
	}
	return string(ExpectDeny)
}
