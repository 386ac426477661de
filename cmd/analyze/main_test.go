package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

func testOptions() commander.Options {
	return commander.Options{
		MaxRobots:  2,
		StepSize:   1,
		Playground: engine.Playground{Width: 5, Height: 5},
	}
}

func TestAnalyzeScript(t *testing.T) {
	script := `# corner run
PLACE 0,0,NORTH
MOVE
LEFT
MOVE

JUMP
REPORT
`
	a, err := analyzeScript("corner", strings.NewReader(script), testOptions())
	if err != nil {
		t.Fatalf("analyzeScript failed: %v", err)
	}

	if len(a.Lines) != 6 {
		t.Fatalf("Expected 6 analyzed lines, got %d", len(a.Lines))
	}
	if a.Counts[commander.OutcomeOK] != 4 {
		t.Errorf("Expected 4 ok outcomes, got %d", a.Counts[commander.OutcomeOK])
	}
	if a.Counts[commander.OutcomeValidation] != 1 {
		t.Errorf("Expected 1 validation outcome, got %d", a.Counts[commander.OutcomeValidation])
	}
	if a.Counts[commander.OutcomeParse] != 1 {
		t.Errorf("Expected 1 parse outcome, got %d", a.Counts[commander.OutcomeParse])
	}

	moveWest := a.Lines[3]
	if moveWest.Line != 5 || moveWest.Outcome != commander.OutcomeValidation {
		t.Errorf("Expected line 5 to be rejected, got %+v", moveWest)
	}

	last := a.Lines[len(a.Lines)-1]
	if last.Detail != "robot 1 at 0,1,WEST" {
		t.Errorf("Unexpected report detail %q", last.Detail)
	}
	if a.Robots != 1 {
		t.Errorf("Expected 1 robot, got %d", a.Robots)
	}
}

func TestAnalyzeScript_StopsAtQuit(t *testing.T) {
	script := "PLACE 1,1,EAST\nQUIT\nMOVE\n"
	a, err := analyzeScript("quit", strings.NewReader(script), testOptions())
	if err != nil {
		t.Fatalf("analyzeScript failed: %v", err)
	}
	if !a.Quit {
		t.Error("Expected replay to stop at QUIT")
	}
	if len(a.Lines) != 2 {
		t.Errorf("Expected 2 analyzed lines, got %d", len(a.Lines))
	}
}

func TestAnalyzeScript_Capacity(t *testing.T) {
	script := "PLACE 0,0,NORTH\nUSE\nPLACE 1,1,NORTH\nUSE\nPLACE 2,2,NORTH\nLIST\n"
	a, err := analyzeScript("capacity", strings.NewReader(script), testOptions())
	if err != nil {
		t.Fatalf("analyzeScript failed: %v", err)
	}
	if a.Counts[commander.OutcomeCapacity] != 1 {
		t.Errorf("Expected 1 capacity outcome, got %d", a.Counts[commander.OutcomeCapacity])
	}
	if a.Lines[len(a.Lines)-1].Detail != "2 robots" {
		t.Errorf("Unexpected list detail %q", a.Lines[len(a.Lines)-1].Detail)
	}
}

func TestAnalyzeScript_InvalidOptions(t *testing.T) {
	if _, err := analyzeScript("bad", strings.NewReader(""), commander.Options{}); err == nil {
		t.Error("Expected invalid options to fail")
	}
}

func TestPrintAnalysis(t *testing.T) {
	a, err := analyzeScript("demo", strings.NewReader("PLACE 0,0,SOUTH\nMOVE\n"), testOptions())
	if err != nil {
		t.Fatalf("analyzeScript failed: %v", err)
	}

	var buf bytes.Buffer
	printAnalysis(&buf, a)
	out := buf.String()

	for _, want := range []string{"=== Analyzing demo ===", "Commands: 2", "validation", "Robots left: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
