package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pycargo/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// version is the tool version reported by `pycargo --version`.
// Overridable at build time via -ldflags "-X pycargo/cmd.version=...".
var version = "0.1.0"

// rootCmd is the base command for the CLI tool `pycargo`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "pycargo",                             // The name of the CLI tool
	Short: "Bootstrap a Python project with uv",  // Short description shown in help output
	Long: "pycargo creates a Python project directory with a uv-managed virtual environment,\n" +
		"a requirements.txt from a named template, a downloaded .gitignore and LICENSE,\n" +
		"a committed git repository, and optionally a GitHub remote.",
	Version: version, // Cobra registers the --version flag from this

	// PersistentPreRun is a hook that runs before any subcommand.
	// It initializes the logger and loads a local .env file so GITHUB_TOKEN
	// can live next to the user's shell profile instead of the environment.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
		if err := godotenv.Load(); err == nil {
			logger.Debug("[DEBUG] Loaded environment from .env\n")
		}
	},

	SilenceUsage:  true, // A failing pipeline is not a usage error
	SilenceErrors: true, // Errors are reported once, in Execute
}

// Execute initializes flags, registers subcommands, and starts the command
// execution. Any fatal error is printed in red to stderr and the process
// exits non-zero, per the CLI contract.
func Execute() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("❌ %v\n", err)
		os.Exit(1)
	}
}
