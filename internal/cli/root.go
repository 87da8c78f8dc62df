package cli

import (
	"fmt"
	"os"

	"github.com/bolt/bolthooks/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	workingDir string
	packageDir string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` runs the Composer lifecycle hooks of a Bolt project: it publishes
backend assets into the web root and seeds the files and theme directories.

Wire it into composer.json:

  "scripts": {
    "post-autoload-dump": "bolthooks run post-autoload-dump",
    "post-create-project-cmd": "bolthooks run post-create-project-cmd"
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "d", "", "Project directory containing composer.json (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVar(&packageDir, "package-dir", "", "Directory of the Bolt package providing app/view, files and theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log how directories are resolved")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
