// Command validate checks simulator settings files. It checks:
//   - YAML or JSON structure
//   - Positive robot limit, step size and playground dimensions
//   - Known log level and format
//   - Environment overrides (TOYROBOT_*) applied on top of the file
//
// With no arguments it validates every *.yaml, *.yml and *.json file in
// ./configs. The exit status is non-zero if any file is invalid.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/mcp-training/toyrobot/game/config"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Info describes the effective settings; otherwise
// Errors holds what went wrong.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Info   []string
}

func validateSettings(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	s, err := config.LoadFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	result.Info = append(result.Info,
		fmt.Sprintf("✓ Playground: %dx%d", s.Playground.Width, s.Playground.Height),
		fmt.Sprintf("✓ Max robots: %d", s.Commander.MaxRobots),
		fmt.Sprintf("✓ Step size: %d", s.Robot.StepSize),
		fmt.Sprintf("✓ Boundaries allowed: %t", s.Commander.AllowBoundaries),
		fmt.Sprintf("✓ Log: %s/%s", s.Log.Level, s.Log.Format),
	)
	if s.Commander.CollisionsDetected {
		result.Info = append(result.Info, "⚠️  collisions_detected is set but not enforced")
	}
	return result
}

// findSettings lists settings files in dir, sorted by name
func findSettings(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// report prints every result and returns whether all of them were valid
func report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)
		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
			continue
		}
		allValid = false
		fmt.Fprintln(w, "❌ INVALID")
		for _, err := range result.Errors {
			fmt.Fprintln(w, "  ❌ "+err)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All settings files are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some settings files have errors")
	}
	return allValid
}

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		found, err := findSettings("configs")
		if err != nil {
			fmt.Printf("Error finding settings files: %v\n", err)
			os.Exit(1)
		}
		files = found
	}
	if len(files) == 0 {
		fmt.Println("No settings files to validate")
		return
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateSettings(file))
	}
	if !report(os.Stdout, results) {
		os.Exit(1)
	}
}
