package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bolt/bolthooks/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the bolt-* options in composer.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		composer, err := manifest.Load(root, nil)
		if err != nil {
			return err
		}

		result, err := composer.Validate()
		if err != nil {
			return err
		}

		name := filepath.Base(composer.Path)
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: bolt options are valid\n", name)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ extra%s\n", issue)
		}
		return fmt.Errorf("%s has %d invalid bolt option(s)", name, len(result.Issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
