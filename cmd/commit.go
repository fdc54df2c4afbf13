package cmd

import (
	"github.com/spf13/cobra"
)

// commitDir is the project directory the commit installer runs against.
var commitDir string

// commitCmd installs the commit-convention tooling: a commitlint config,
// a commit script, a commitizen config block, and a commit-msg hook.
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Install commitizen + commitlint with a commit-msg hook",
	Long: `Scaffold conventional commit tooling into the project:

  - copies commitlint.config.mjs into the project root
  - adds a commit script (commitizen) to package.json
  - adds a config.commitizen block pointing at cz-conventional-changelog
  - installs a .husky/commit-msg hook running commitlint

Existing files and scripts are never overwritten without asking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newSetup(commitDir).Install("commit")
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitDir, "dir", "d", ".", "Project directory to set up")
	rootCmd.AddCommand(commitCmd)
}
