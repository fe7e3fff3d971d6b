package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kritik-dev/kritik/internal/config"
	"github.com/kritik-dev/kritik/internal/languages"
	"github.com/kritik-dev/kritik/internal/rules"
)

func resolveRoot(path string) (string, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return "", fmt.Errorf("failed to access path %q: %w", rootPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", rootPath)
	}
	return rootPath, nil
}

// resolveBaselinePath applies the --baseline flag over the configured
// path and anchors relative paths at the scan root.
func resolveBaselinePath(cmd *cobra.Command, rootPath string, cfg config.Config) (string, error) {
	path, err := cmd.Flags().GetString("baseline")
	if err != nil {
		return "", fmt.Errorf("failed to read --baseline flag: %w", err)
	}
	if path == "" {
		path = cfg.Baseline
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootPath, path)
	}
	return path, nil
}

type analysisResult struct {
	Files    int
	Findings []rules.Finding
}

// analyze parses every supported file under rootPath and runs the active
// rule set. A signature failure in any file surfaces as an error rather
// than a finding: a wrong join key would silently corrupt baseline
// matching.
func analyze(rootPath string, cfg config.Config) (*analysisResult, error) {
	registry := languages.NewDefaultRegistry()
	parseResult, err := registry.ParseDirectory(rootPath, cfg.Ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source files: %w", err)
	}
	ReportParseIssues(parseResult.Issues)

	ruleSet := rules.Default(cfg.Rules)
	result := &analysisResult{Files: len(parseResult.Files)}
	for i := range parseResult.Files {
		findings, err := rules.Run(&parseResult.Files[i], ruleSet)
		if err != nil {
			return nil, err
		}
		result.Findings = append(result.Findings, findings...)
	}
	return result, nil
}

func ReportParseIssues(issues []languages.ParseIssue) {
	for _, issue := range issues {
		if issue.Language != "" {
			fmt.Fprintf(os.Stderr, "[%s] %s (%s): %s\n", issue.Severity, issue.File, issue.Language, issue.Message)
			continue
		}
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", issue.Severity, issue.File, issue.Message)
	}
}
