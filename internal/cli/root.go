package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kritik",
		Short: "Static analysis for Kotlin codebases with baseline suppression",
		Long: `Kritik scans Kotlin sources for rule violations and suppresses findings
recorded in a baseline file. Findings are matched to the baseline by a
stable declaration signature, so accepted findings stay suppressed even
as line numbers shift.

Project settings live in .kritik.yml at the scan root.`,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .kritik.yml in the current directory",
		RunE:  RunInit,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan sources and report findings not covered by the baseline",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunScan,
	}
	scanCmd.Flags().Bool("json", false, "Print machine-readable findings")
	scanCmd.Flags().String("baseline", "", "Baseline file (overrides .kritik.yml)")

	baselineCmd := &cobra.Command{
		Use:   "baseline [path]",
		Short: "Record all current findings into the baseline file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunBaseline,
	}
	baselineCmd.Flags().String("baseline", "", "Baseline file (overrides .kritik.yml)")

	signaturesCmd := &cobra.Command{
		Use:   "signatures <file>",
		Short: "Print the baseline signature of every declaration in a file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunSignatures,
	}
	signaturesCmd.Flags().Bool("json", false, "Print machine-readable signatures")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kritik %s\n", version)
		},
	}

	rootCmd.AddCommand(
		initCmd,
		scanCmd,
		baselineCmd,
		signaturesCmd,
		versionCmd,
	)

	return rootCmd
}
