package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSubcommand is returned when no recognized subcommand is provided
var ErrNoSubcommand = errors.New("missing subcommand: usage: kirby <check|agents|sitemaps|audit> [flags]")

// ErrMissingFlagValue is returned when a flag requires a value but none is provided
var ErrMissingFlagValue = errors.New("flag requires a value")

// ErrMissingAgent is returned when check is invoked without --agent
var ErrMissingAgent = errors.New("check requires --agent <user-agent>")

// ErrMissingPath is returned when check is invoked without --path
var ErrMissingPath = errors.New("check requires --path <path>")

// ErrMissingChecks is returned when audit is invoked without --checks
var ErrMissingChecks = errors.New("audit requires --checks <file>")

// Subcommand represents the CLI subcommand
type Subcommand string

const (
	SubcommandCheck    Subcommand = "check"
	SubcommandAgents   Subcommand = "agents"
	SubcommandSitemaps Subcommand = "sitemaps"
	SubcommandAudit    Subcommand = "audit"
)

// Command represents the parsed CLI input
type Command struct {
	Subcommand Subcommand

	RobotsPath string // --robots <path>; empty or "-" reads stdin
	Agent      string // --agent <user-agent> (check)
	Path       string // --path <path> (check)
	ChecksPath string // --checks <path> (audit)

	JSONOutput bool // --json
	Verbose    bool // --verbose
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrNoSubcommand
	}

	sub := Subcommand(args[0])
	switch sub {
	case SubcommandCheck, SubcommandAgents, SubcommandSitemaps, SubcommandAudit:
	default:
		return Command{}, ErrNoSubcommand
	}

	cmd := Command{Subcommand: sub}

	for i := 1; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return Command{}, fmt.Errorf("unexpected argument: %s", arg)
		}

		flagName := strings.TrimPrefix(arg, "--")

		switch flagName {
		case "json":
			cmd.JSONOutput = true
			continue
		case "verbose":
			cmd.Verbose = true
			continue
		case "robots", "agent", "path", "checks":
			// Flags below take a value.
		default:
			return Command{}, fmt.Errorf("unknown flag: %s", arg)
		}

		if i+1 >= len(args) {
			return Command{}, fmt.Errorf("%s: %w", arg, ErrMissingFlagValue)
		}
		i++
		value := args[i]

		switch flagName {
		case "robots":
			cmd.RobotsPath = value
		case "agent":
			cmd.Agent = value
		case "path":
			cmd.Path = value
		case "checks":
			cmd.ChecksPath = value
		}
	}

	if cmd.Subcommand == SubcommandCheck {
		if cmd.Agent == "" {
			return Command{}, ErrMissingAgent
		}
		if cmd.Path == "" {
			return Command{}, ErrMissingPath
		}
	}
	if cmd.Subcommand == SubcommandAudit && cmd.ChecksPath == "" {
		return Command{}, ErrMissingChecks
	}

	return cmd, nil
}
