package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kritik-dev/kritik/internal/fileutil"
	"github.com/kritik-dev/kritik/internal/languages"
	"github.com/kritik-dev/kritik/internal/signature"
	"github.com/kritik-dev/kritik/internal/syntax"
)

type SignatureEntry struct {
	Kind      string `json:"kind"`
	Line      int    `json:"line"`
	Signature string `json:"signature"`
}

// RunSignatures prints the baseline join key of every declaration in one
// file, for inspecting what a baseline entry should look like.
func RunSignatures(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	registry := languages.NewDefaultRegistry()
	parsed, err := registry.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	if parsed == nil {
		return fmt.Errorf("unsupported file type %q", args[0])
	}

	var entries []SignatureEntry
	var sigErr error
	parsed.Root.Walk(func(n *syntax.Node) {
		if sigErr != nil {
			return
		}
		sig, err := signature.Full(n)
		if err != nil {
			sigErr = err
			return
		}
		entries = append(entries, SignatureEntry{
			Kind:      n.Kind.String(),
			Line:      n.StartLine,
			Signature: sig,
		})
	})
	if sigErr != nil {
		return sigErr
	}

	if asJSON {
		return fileutil.PrintJSON(entries)
	}
	for _, entry := range entries {
		fmt.Printf("%-8s %4d  %s\n", entry.Kind, entry.Line, entry.Signature)
	}
	return nil
}
