package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insprac/kirby/internal/audit"
	"github.com/insprac/kirby/internal/cli"
	"github.com/insprac/kirby/internal/observability"
	"github.com/insprac/kirby/internal/robotstxt"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run orchestrates the full execution flow and returns the process exit
// code: 0 for an allowed decision or a passing audit, 2 for a disallowed
// decision or a failing audit, 1 for usage, I/O, and checks-file errors.
// It is separated from main() to enable testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	logger := observability.NewLogger(stderr, cmd.Verbose)

	text, err := readRobots(cmd.RobotsPath, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	rs := robotstxt.Parse(text)
	logger.Debug().
		Int("agents", len(rs.Agents())).
		Int("sitemaps", len(rs.Sitemaps())).
		Msg("parsed robots.txt")

	switch cmd.Subcommand {
	case cli.SubcommandCheck:
		return runCheck(cmd, rs, stdout, logger)
	case cli.SubcommandAgents:
		return runList(cmd, rs.Agents(), stdout, stderr)
	case cli.SubcommandSitemaps:
		return runList(cmd, rs.Sitemaps(), stdout, stderr)
	case cli.SubcommandAudit:
		return runAudit(cmd, rs, stdout, stderr)
	}

	return 1
}

// readRobots loads the robots.txt text from a file, or from stdin when no
// path (or "-") is given.
func readRobots(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read robots.txt from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read robots.txt: %w", err)
	}
	return string(data), nil
}

// checkOutput is the JSON shape of a single decision.
type checkOutput struct {
	Agent   string `json:"agent"`
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}

func runCheck(cmd cli.Command, rs *robotstxt.RuleSet, stdout io.Writer, logger zerolog.Logger) int {
	allowed := rs.IsAllowed(cmd.Agent, cmd.Path)
	logger.Debug().
		Str("agent", cmd.Agent).
		Str("path", cmd.Path).
		Bool("allowed", allowed).
		Msg("decision")

	if cmd.JSONOutput {
		data, _ := json.MarshalIndent(checkOutput{
			Agent:   cmd.Agent,
			Path:    cmd.Path,
			Allowed: allowed,
		}, "", "  ")
		fmt.Fprintln(stdout, string(data))
	} else if allowed {
		fmt.Fprintln(stdout, "allowed")
	} else {
		fmt.Fprintln(stdout, "disallowed")
	}

	if allowed {
		return 0
	}
	return 2
}

func runList(cmd cli.Command, items []string, stdout, stderr io.Writer) int {
	if cmd.JSONOutput {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	for _, item := range items {
		fmt.Fprintln(stdout, item)
	}
	return 0
}

func runAudit(cmd cli.Command, rs *robotstxt.RuleSet, stdout, stderr io.Writer) int {
	checks, err := audit.LoadChecks(cmd.ChecksPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	result := audit.Evaluate(rs, checks)

	if cmd.JSONOutput {
		out, err := audit.FormatJSON(result)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	} else {
		fmt.Fprint(stdout, audit.FormatCLI(result))
	}

	if result.Passed {
		return 0
	}
	return 2
}
