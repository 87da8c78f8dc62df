package cli

import (
	"fmt"

	"github.com/bolt/bolthooks/internal/hooks"
	"github.com/spf13/cobra"
)

var dirDefault string

var dirCmd = &cobra.Command{
	Use:   "dir <name>",
	Short: "Print the directory a hook would use",
	Long: `Print the directory a hook would use for a resource such as web, files
or themebase. The installed application is asked first, then BOLT_<NAME>_DIR,
then extra.bolt-<name>-dir in composer.json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvent(cmd, "")
		if err != nil {
			return err
		}

		name := args[0]
		def := dirDefault
		if name == "web" && !cmd.Flags().Changed("default") {
			def = "public"
		}

		dir, err := hooks.GetDir(ev, name, def)
		if err != nil {
			return err
		}
		if dir == "" {
			return fmt.Errorf("%w: %s", hooks.ErrDirNotConfigured, name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

func init() {
	dirCmd.Flags().StringVar(&dirDefault, "default", "", "Value to use when nothing else configures the directory")
	rootCmd.AddCommand(dirCmd)
}
