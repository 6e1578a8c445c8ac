package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hakin19/zen-support/internal/standards"
	"github.com/hakin19/zen-support/internal/style"
	"github.com/hakin19/zen-support/internal/workspace"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Show the active advisory configuration",
	Long: `Show the advisory block and keyword set the prompt hook uses.

The built-in configuration can be overridden by .claude/standards.toml
in the project root; the output notes which one is active.`,
	Args: cobra.NoArgs,
	RunE: runStandards,
}

var standardsCheckCmd = &cobra.Command{
	Use:   "check <text>",
	Short: "Test whether text would trigger the advisory",
	Long: `Test the keyword matcher against a piece of text.

Prints the keyword that matched, or reports no match. Useful when
tuning .claude/standards.toml.

Examples:
  zenhook standards check "fix the login bug"
  zenhook standards check "what's for lunch"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStandardsCheck,
}

func init() {
	standardsCmd.AddCommand(standardsCheckCmd)
	rootCmd.AddCommand(standardsCmd)
}

func loadProjectAdvisor() (*standards.Advisor, error) {
	root, err := workspace.FindFromCwd()
	if err != nil {
		// Outside any project the built-in defaults still apply.
		return standards.Default()
	}
	return standards.Load(filepath.Join(root, filepath.FromSlash(standards.DefaultConfigPath)))
}

func runStandards(cmd *cobra.Command, args []string) error {
	advisor, err := loadProjectAdvisor()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source: %s\n\n", advisor.Source)
	fmt.Fprintf(out, "%s %s\n", style.Bold.Render("Keywords:"), strings.Join(advisor.Keywords, ", "))
	fmt.Fprintf(out, "\n%s\n", style.Bold.Render("Advisory block:"))
	fmt.Fprint(out, advisor.Render())
	return nil
}

func runStandardsCheck(cmd *cobra.Command, args []string) error {
	advisor, err := loadProjectAdvisor()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out := cmd.OutOrStdout()
	if kw, ok := advisor.Match(text); ok {
		fmt.Fprintf(out, "%s matched keyword %q — advisory would be printed\n",
			style.Success.Render("✓"), kw)
		return nil
	}
	fmt.Fprintf(out, "%s no keyword matched — advisory would not be printed\n",
		style.Dim.Render("✗"))
	return nil
}
