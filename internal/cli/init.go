package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/allenbenz/cargo-testify/internal/infra/config"
)

// newInitCommand creates the init command. dir points at the root
// command's persistent --dir flag value.
func newInitCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.ProjectConfigName,
		Long: `Write a commented starter ` + config.ProjectConfigName + ` to the project root.

Refuses to overwrite an existing config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolve project dir: %w", err)
			}

			path, err := config.WriteStarter(projectDir)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
