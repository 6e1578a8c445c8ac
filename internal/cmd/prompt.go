package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hakin19/zen-support/internal/auditlog"
	"github.com/hakin19/zen-support/internal/hook"
	"github.com/hakin19/zen-support/internal/standards"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Run the UserPromptSubmit hook (invoked by Claude Code)",
	Long: `Run the UserPromptSubmit hook.

Claude Code invokes this with a JSON event on stdin:

  {"prompt": "...", "session_id": "...", "timestamp": "..."}

The prompt is appended to .claude/logs/prompts.jsonl (best-effort; a
failed write never blocks the prompt). If the prompt contains a coding
keyword, the project standards block is printed to stdout for Claude
to pick up.

Exit code 0 lets the prompt proceed; 1 signals a hook failure to the
host. Paths are relative to the working directory, which Claude Code
sets to the project root.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	advisor, err := standards.Load(standards.DefaultConfigPath)
	if err != nil {
		// A broken override falls back to the built-in block rather
		// than failing every prompt in the project.
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in standards\n", err)
		advisor, err = standards.Default()
		if err != nil {
			return err
		}
	}

	r := &hook.Runner{
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Sink:    auditlog.NewSink(auditlog.DefaultPath),
		Advisor: advisor,
		Debug:   logger,
	}

	if code := r.Run(); code != 0 {
		return errSilent
	}
	return nil
}
