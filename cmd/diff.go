package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"grimm.is/emergenet/internal/gentoo"
)

// stripComments drops comment lines so the generation timestamp in the
// autogenerated header never shows up as a spurious change.
func stripComments(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// RunDiff compares the files the plan would generate against what is
// currently on disk and prints a unified diff per file. It returns an
// error when any file differs, so scripts can use the exit status.
func RunDiff(configFile, planFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	plan, err := loadPlan(planFile)
	if err != nil {
		return err
	}

	dialect := gentoo.DetectDialect(cfg.Paths.RCBinary)
	files, err := generateFiles(cfg, plan, dialect)
	if err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	changed := 0
	for _, path := range paths {
		current := ""
		if data, err := os.ReadFile(path); err == nil {
			current = string(data)
		}
		currentBody := stripComments(current)
		generatedBody := stripComments(files[path])
		if currentBody == generatedBody {
			continue
		}
		changed++

		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(currentBody),
			B:        difflib.SplitLines(generatedBody),
			FromFile: path + " (current)",
			ToFile:   path + " (generated)",
			Context:  3,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		fmt.Print(text)
	}

	if changed == 0 {
		fmt.Println("No changes detected.")
		return nil
	}
	return fmt.Errorf("%d file(s) differ from generated configuration", changed)
}
