package audit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseChecks_Valid(t *testing.T) {
	content := `checks:
  - name: homepage-open
    agent: KirbyBot
    path: /
    expect: allow
  - name: private-blocked
    agent: KirbyBot
    path: /prevented/x
    expect: deny
`

	checks, err := ParseChecks([]byte(content))
	if err != nil {
		t.Fatalf("ParseChecks() error = %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}

	if checks[0].Name != "homepage-open" || checks[0].Expect != ExpectAllow {
		t.Errorf("unexpected first check: %+v", checks[0])
	}
	if checks[1].Path != "/prevented/x" || checks[1].Expect != ExpectDeny {
		t.Errorf("unexpected second check: %+v", checks[1])
	}
}

func TestParseChecks_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid YAML",
			content: "checks: [\n",
			wantErr: "invalid YAML",
		},
		{
			name:    "missing name",
			content: "checks:\n  - agent: Bot\n    path: /\n    expect: allow\n",
			wantErr: "missing required field 'name'",
		},
		{
			name: "duplicate name",
			content: "checks:\n" +
				"  - {name: a, agent: Bot, path: /, expect: allow}\n" +
				"  - {name: a, agent: Bot, path: /x, expect: deny}\n",
			wantErr: "duplicate check name",
		},
		{
			name:    "missing agent",
			content: "checks:\n  - {name: a, path: /, expect: allow}\n",
			wantErr: "missing required field 'agent'",
		},
		{
			name:    "missing path",
			content: "checks:\n  - {name: a, agent: Bot, expect: allow}\n",
			wantErr: "missing required field 'path'",
		},
		{
			name:    "bad expect value",
			content: "checks:\n  - {name: a, agent: Bot, path: /, expect: maybe}\n",
			wantErr: "expect must be 'allow' or 'deny'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChecks([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseChecks_Empty(t *testing.T) {
	_, err := ParseChecks([]byte("checks: []\n"))
	if !errors.Is(err, ErrNoChecks) {
		t.Errorf("expected ErrNoChecks, got %v", err)
	}
}

func TestLoadChecks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checks.yaml")
	content := "checks:\n  - {name: a, agent: Bot, path: /, expect: allow}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write checks file: %v", err)
	}

	checks, err := LoadChecks(path)
	if err != nil {
		t.Fatalf("LoadChecks() error = %v", err)
	}
	if len(checks) != 1 || checks[0].Name != "a" {
		t.Errorf("unexpected checks: %+v", checks)
	}

	if _, err := LoadChecks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
