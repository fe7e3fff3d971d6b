package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kritik-dev/kritik/internal/baseline"
	"github.com/kritik-dev/kritik/internal/config"
	"github.com/kritik-dev/kritik/internal/fileutil"
	"github.com/kritik-dev/kritik/internal/rules"
)

type ScanSummary struct {
	Mode       string          `json:"mode"`
	RootPath   string          `json:"root_path"`
	Files      int             `json:"files"`
	Findings   []rules.Finding `json:"findings"`
	Suppressed int             `json:"suppressed"`
}

func RunScan(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	rootPath, err := resolveRoot(path)
	if err != nil {
		return err
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	baselinePath, err := resolveBaselinePath(cmd, rootPath, cfg)
	if err != nil {
		return err
	}
	bl, err := baseline.Load(baselinePath)
	if err != nil {
		return err
	}

	result, err := analyze(rootPath, cfg)
	if err != nil {
		return err
	}

	remaining := make([]rules.Finding, 0, len(result.Findings))
	suppressed := 0
	for _, f := range result.Findings {
		if bl.IsSuppressed(f.Signature, f.RuleID) {
			suppressed++
			continue
		}
		remaining = append(remaining, f)
	}

	summary := ScanSummary{
		Mode:       "scan",
		RootPath:   rootPath,
		Files:      result.Files,
		Findings:   remaining,
		Suppressed: suppressed,
	}
	if asJSON {
		if err := fileutil.PrintJSON(summary); err != nil {
			return err
		}
	} else {
		for _, f := range remaining {
			fmt.Printf("%s:%d: %s [%s]\n", f.File, f.Line, f.Message, f.RuleID)
		}
		fmt.Printf("scan: files=%d findings=%d suppressed=%d\n", result.Files, len(remaining), suppressed)
	}

	if len(remaining) > 0 {
		return fmt.Errorf("%d findings not covered by the baseline", len(remaining))
	}
	return nil
}
