package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kritik-dev/kritik/internal/baseline"
	"github.com/kritik-dev/kritik/internal/config"
)

// RunBaseline regenerates the baseline from the current findings. Every
// (signature, rule) pair found in this run becomes suppressed; entries
// for declarations that no longer trigger drop out.
func RunBaseline(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
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

	result, err := analyze(rootPath, cfg)
	if err != nil {
		return err
	}

	bl := baseline.New()
	for _, f := range result.Findings {
		bl.Record(f.Signature, f.RuleID)
	}

	changed, err := bl.Save(baselinePath)
	if err != nil {
		return fmt.Errorf("failed to write baseline: %w", err)
	}

	if changed {
		fmt.Printf("baseline: recorded %d findings to %s\n", bl.Count(), baselinePath)
	} else {
		fmt.Printf("baseline: up to date (%d findings)\n", bl.Count())
	}
	return nil
}
