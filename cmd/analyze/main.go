// Command analyze replays command scripts against a fresh fleet and prints a
// line-by-line outcome table followed by a summary. Blank lines and lines
// starting with # are skipped. Useful for checking how a script behaves on a
// given playground before running it in the console.
//
//	analyze [--config toyrobot.yaml] script.txt [more.txt ...]
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/game/config"
)

// LineOutcome is the result of one script line
type LineOutcome struct {
	Line    int
	Input   string
	Outcome commander.Outcome
	Detail  string
}

// Analysis summarizes one replayed script
type Analysis struct {
	Name   string
	Lines  []LineOutcome
	Counts map[commander.Outcome]int
	Robots int
	Quit   bool
}

func main() {
	app := &cli.Command{
		Name:      "analyze",
		Usage:     "replay command scripts and summarize their outcomes",
		ArgsUsage: "script [script ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file; missing means defaults",
				Sources: cli.EnvVars("TOYROBOT_CONFIG"),
			},
		},
		Action: run,
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("at least one script is required")
	}
	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	for _, path := range cmd.Args().Slice() {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		analysis, err := analyzeScript(path, f, settings.CommanderOptions())
		f.Close()
		if err != nil {
			return err
		}
		printAnalysis(cmd.Root().Writer, analysis)
	}
	return nil
}

// analyzeScript runs every command in r on a new commander built from opts.
// Replay stops at QUIT.
func analyzeScript(name string, r io.Reader, opts commander.Options) (*Analysis, error) {
	fleet, err := commander.New(opts, nil)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Name:   name,
		Counts: make(map[commander.Outcome]int),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		outcome := LineOutcome{Line: lineNo, Input: input}
		res, err := execute(fleet, input)
		outcome.Outcome = commander.Classify(err)
		if err != nil {
			outcome.Detail = err.Error()
		} else {
			outcome.Detail = describe(res)
		}
		analysis.Lines = append(analysis.Lines, outcome)
		analysis.Counts[outcome.Outcome]++

		if res != nil && res.Quit {
			analysis.Quit = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	analysis.Robots = fleet.Len()
	return analysis, nil
}

func execute(fleet *commander.Commander, line string) (*commander.Result, error) {
	cmd, err := fleet.ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return fleet.Execute(cmd)
}

func describe(res *commander.Result) string {
	switch {
	case res.Key == command.List:
		return fmt.Sprintf("%d robots", len(res.Robots))
	case res.Key == command.ShowLog:
		return fmt.Sprintf("robot %d, %d log entries", res.RobotID, len(res.Log))
	case res.Position != nil:
		return fmt.Sprintf("robot %d at %s", res.RobotID, res.Position)
	case res.RobotID != 0:
		return fmt.Sprintf("robot %d", res.RobotID)
	}
	return ""
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "\n=== Analyzing %s ===\n", a.Name)
	for _, l := range a.Lines {
		mark := "✅"
		if l.Outcome != commander.OutcomeOK {
			mark = "❌"
		}
		fmt.Fprintf(w, "%s %4d  %-20s %-11s %s\n", mark, l.Line, l.Input, l.Outcome, l.Detail)
	}

	fmt.Fprintf(w, "Commands: %d\n", len(a.Lines))
	outcomes := make([]string, 0, len(a.Counts))
	for o := range a.Counts {
		outcomes = append(outcomes, string(o))
	}
	sort.Strings(outcomes)
	for _, o := range outcomes {
		fmt.Fprintf(w, "  %-11s %d\n", o, a.Counts[commander.Outcome(o)])
	}
	fmt.Fprintf(w, "Robots left: %d\n", a.Robots)
	if a.Quit {
		fmt.Fprintln(w, "Stopped at QUIT")
	}
}
