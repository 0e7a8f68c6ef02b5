package audit

import (
	"testing"

	"github.com/insprac/kirby/internal/robotstxt"
)

func TestEvaluate(t *testing.T) {
	rs := robotstxt.Parse(`
	User-agent: *
	Disallow: /

	User-agent: KirbyBot
	Allow: /
	Disallow: /prevented/
	`)

	checks := []Check{
		{Name: "homepage-open", Agent: "KirbyBot", Path: "/", Expect: ExpectAllow},
		{Name: "private-blocked", Agent: "KirbyBot", Path: "/prevented/x", Expect: ExpectDeny},
		{Name: "others-blocked", Agent: "OtherBot", Path: "/x", Expect: ExpectDeny},
		{Name: "wrong-expectation", Agent: "KirbyBot", Path: "/anything", Expect: ExpectDeny},
	}

	result := Evaluate(rs, checks)

	if result.Passed {
		t.Error("result should not pass when a check fails")
	}
	if len(result.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(result.Results))
	}

	for i, want := range []bool{true, true, true, false} {
		if result.Results[i].Passed != want {
			t.Errorf("check %q: passed = %v, want %v",
				result.Results[i].Name, result.Results[i].Passed, want)
		}
	}

	// The failing check records the decision that was actually made.
	if got := result.Results[3]; !got.Allowed {
		t.Errorf("check %q: allowed = %v, want true", got.Name, got.Allowed)
	}
}

func TestEvaluate_AllPassing(t *testing.T) {
	rs := robotstxt.Parse("User-agent: *\nDisallow: /private/")

	checks := []Check{
		{Name: "open", Agent: "Bot", Path: "/public", Expect: ExpectAllow},
		{Name: "closed", Agent: "Bot", Path: "/private/x", Expect: ExpectDeny},
	}

	result := Evaluate(rs, checks)
	if !result.Passed {
		t.Errorf("expected a passing result, got %+v", result)
	}
}

func TestEvaluate_NoChecks(t *testing.T) {
	rs := robotstxt.Parse("")
	result := Evaluate(rs, nil)
	if !result.Passed || len(result.Results) != 0 {
		t.Errorf("empty check list should trivially pass, got %+v", result)
	}
}
