package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kritik-dev/kritik/internal/config"
	"github.com/kritik-dev/kritik/internal/fileutil"
)

const configTemplate = `# kritik project configuration
baseline: kritik-baseline.yml
ignore: []
rules:
  maxFunctionLines: 60
  maxParameters: 6
  maxClassMembers: 20`

// RunInit writes a starter .kritik.yml; an existing file is left alone.
func RunInit(cmd *cobra.Command, args []string) error {
	rootPath, err := resolveRoot(".")
	if err != nil {
		return err
	}

	path := filepath.Join(rootPath, config.FileName)
	content := []byte(fileutil.EnsureTrailingNewline(configTemplate))
	if err := fileutil.WriteIfMissing(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	fmt.Printf("init: %s ready; run 'kritik scan' next\n", config.FileName)
	return nil
}
