package cli

import (
	"github.com/bolt/bolthooks/internal/hooks"
	"github.com/spf13/cobra"
)

var installAssetsCmd = &cobra.Command{
	Use:   "install-assets",
	Short: "Install backend assets into the web directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvent(cmd, hooks.EventPostAutoloadDump)
		if err != nil {
			return err
		}
		return hooks.InstallAssets(ev)
	},
}

var installThemesCmd = &cobra.Command{
	Use:   "install-themes",
	Short: "Install the default files and themes",
	Long: `Install the default files and themes into the configured files and
theme-base directories. New directories are created with BOLT_DIR_MODE
(or extra.bolt-dir-mode), 0777 by default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvent(cmd, hooks.EventPostCreateProjectCmd)
		if err != nil {
			return err
		}
		return hooks.InstallThemesAndFiles(ev)
	},
}

func init() {
	rootCmd.AddCommand(installAssetsCmd)
	rootCmd.AddCommand(installThemesCmd)
}
