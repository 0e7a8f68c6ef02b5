package audit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoChecks is returned when a checks file declares no checks at all.
var ErrNoChecks = errors.New("checks file declares no checks")

// checksFile represents the YAML file structure
type checksFile struct {
	Checks []checkEntry `yaml:"checks"`
}

// checkEntry represents a single check entry in YAML
type checkEntry struct {
	Name   string `yaml:"name"`
	Agent  string `yaml:"agent"`
	Path   string `yaml:"path"`
	Expect string `yaml:"expect"`
}

// ParseChecks parses YAML content into a list of checks.
func ParseChecks(content []byte) ([]Check, error) {
	var cf checksFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if len(cf.Checks) == 0 {
		return nil, ErrNoChecks
	}

	seenNames := make(map[string]bool)
	checks := make([]Check, 0, len(cf.Checks))

	for i, entry := range cf.Checks {
		if entry.Name == "" {
			return nil, fmt.Errorf("check at index %d: missing required field 'name'", i)
		}
		if seenNames[entry.Name] {
			return nil, fmt.Errorf("duplicate check name: '%s'", entry.Name)
		}
		seenNames[entry.Name] = true

		if entry.Agent == "" {
			return nil, fmt.Errorf("check '%s': missing required field 'agent'", entry.Name)
		}
		if entry.Path == "" {
			return nil, fmt.Errorf("check '%s': missing required field 'path'", entry.Name)
		}

		expect := Expect(entry.Expect)
		if expect != ExpectAllow && expect != ExpectDeny {
			return nil, fmt.Errorf("check '%s': expect must be 'allow' or 'deny', got '%s'",
				entry.Name, entry.Expect)
		}

		checks = append(checks, Check{
			Name:   entry.Name,
			Agent:  entry.Agent,
			Path:   entry.Path,
			Expect: expect,
		})
	}

	return checks, nil
}

// LoadChecks reads and parses a checks file from the given path.
func LoadChecks(path string) ([]Check, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checks file: %w", err)
	}
	return ParseChecks(content)
}
