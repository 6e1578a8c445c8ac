package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hakin19/zen-support/internal/claude"
	"github.com/hakin19/zen-support/internal/style"
	"github.com/hakin19/zen-support/internal/workspace"
)

var (
	installDryRun bool
	installPrint  bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the prompt hook in .claude/settings.json",
	Long: `Register the prompt hook in the project's .claude/settings.json.

Creates the settings file if it does not exist. An existing file is
extended in place: other settings and hooks are preserved, and the
rewrite is atomic. Running install twice is a no-op.

Examples:
  zenhook install            # Register in the enclosing project
  zenhook install --dry-run  # Report what would change
  zenhook install --print    # Print the settings snippet instead`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Report what would change without writing")
	installCmd.Flags().BoolVar(&installPrint, "print", false, "Print the settings.json snippet and exit")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if installPrint {
		snippet, err := claude.Snippet()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s", snippet)
		return nil
	}

	root, err := workspace.FindFromCwd()
	if err != nil {
		return fmt.Errorf("locating project root: %w", err)
	}
	settingsPath := claude.SettingsPath(root)

	if installDryRun {
		if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "%s would create %s\n", style.Dim.Render("Dry run:"), settingsPath)
		} else {
			fmt.Fprintf(out, "%s would register %q in %s if missing\n",
				style.Dim.Render("Dry run:"), claude.HookCommand, settingsPath)
		}
		return nil
	}

	changed, err := claude.EnsureHook(settingsPath)
	if err != nil {
		return err
	}

	if changed {
		fmt.Fprintf(out, "%s Registered %q for %s in %s\n",
			style.Success.Render("Done:"), claude.HookCommand, claude.HookEvent, settingsPath)
	} else {
		fmt.Fprintf(out, "%s Hook already registered in %s\n",
			style.Dim.Render("Unchanged:"), settingsPath)
	}
	return nil
}
