package cli

import (
	"github.com/bolt/bolthooks/internal/hooks"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <event>",
	Short: "Run the hook registered for a Composer script event",
	Long: `Run the hook registered for a Composer script event.

  post-autoload-dump        install backend assets into <web>/bolt-public/view
  post-install-cmd          same as post-autoload-dump
  post-update-cmd           same as post-autoload-dump
  post-create-project-cmd   install the default files and themes`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: hooks.Events(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvent(cmd, args[0])
		if err != nil {
			return err
		}
		return hooks.Dispatch(ev)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
