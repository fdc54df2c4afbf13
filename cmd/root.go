package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"devsetup/internal/assets"
	"devsetup/internal/installer"
	"devsetup/internal/logger"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `devsetup`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "devsetup",
	Short: "Install lint, format, and commit tooling into an npm project",

	// Failures are reported as a single colored line by Execute, so cobra's
	// own error echo and usage dump would only duplicate them.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute registers flags and runs the selected subcommand. Any error that
// reaches the top level — fatal preconditions included — is logged as one
// red line and the process exits nonzero. Stack traces never reach the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Default(debug).Error("%v", err)
		os.Exit(1)
	}
}

// newSetup wires an installer run with the production capabilities: the
// embedded asset bundle, a color console logger, interactive stdin prompts,
// and a real command runner for npm/npx.
func newSetup(dir string) *installer.Setup {
	log := logger.Default(debug)
	return &installer.Setup{
		Dir:     dir,
		Assets:  assets.Templates(),
		Log:     log,
		Confirm: prompt.NewTerminal(),
		Run:     &runner.Exec{Log: log},
	}
}
