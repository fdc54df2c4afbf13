package cmd

import (
	"github.com/spf13/cobra"
)

// lintDir is the project directory the lint installer runs against.
var lintDir string

// lintCmd installs the lint/format tooling: ESLint and Prettier configs,
// npm scripts, a lint-staged config block, and a pre-commit hook.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Install ESLint + Prettier configs, scripts, and a pre-commit hook",
	Long: `Scaffold linting and formatting into the project:

  - copies eslint.config.mjs and .prettierrc into the project root
  - adds lint, lint:fix, format, and format:check scripts to package.json
  - adds a lint-staged configuration block
  - installs a .husky/pre-commit hook running lint-staged

Existing files and scripts are never overwritten without asking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newSetup(lintDir).Install("lint")
	},
}

func init() {
	lintCmd.Flags().StringVarP(&lintDir, "dir", "d", ".", "Project directory to set up")
	rootCmd.AddCommand(lintCmd)
}
