package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakin19/zen-support/internal/debuglog"
)

var (
	verbose bool
	logger  *zap.Logger
)

// errSilent marks failures whose diagnostics have already been
// written to stderr. Execute maps it to exit code 1 without printing.
var errSilent = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "zenhook",
	Short: "Claude Code hooks for the Aizen vNE repo",
	Long: `zenhook wires coding-standard reminders and a prompt audit trail
into Claude Code.

The prompt subcommand is registered as a UserPromptSubmit hook: it logs
each submitted prompt to .claude/logs/prompts.jsonl and, for prompts
that look like coding requests, prints the project standards block for
Claude to see.

The remaining subcommands manage and inspect that setup:

  zenhook install    # register the hook in .claude/settings.json
  zenhook audit      # query the prompt audit trail
  zenhook standards  # show or test the advisory configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = debuglog.New(verbose || debuglog.Enabled())
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug tracing on stderr")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
