package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hakin19/zen-support/internal/auditlog"
	"github.com/hakin19/zen-support/internal/style"
	"github.com/hakin19/zen-support/internal/workspace"
)

// Audit command flags
var (
	auditSession string
	auditSince   string
	auditLimit   int
	auditJSON    bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Query the prompt audit trail",
	Long: `Query the prompt audit trail at .claude/logs/prompts.jsonl.

Shows logged prompt submissions, newest last. The log is append-only;
this command never modifies it.

Examples:
  zenhook audit                       # Show recent prompts
  zenhook audit --session abc123      # Filter by session
  zenhook audit --since 24h           # Prompts from the last day
  zenhook audit --since 7d -n 100     # Up to 100 entries from the last week
  zenhook audit --json                # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditSession, "session", "", "Filter by session ID (exact match)")
	auditCmd.Flags().StringVar(&auditSince, "since", "", "Show entries since duration (e.g., 1h, 24h, 7d)")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 50, "Maximum number of entries to show")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	root, err := workspace.FindFromCwd()
	if err != nil {
		return fmt.Errorf("locating project root: %w", err)
	}
	logPath := filepath.Join(root, filepath.FromSlash(auditlog.DefaultPath))

	var sinceTime time.Time
	if auditSince != "" {
		duration, err := parseDuration(auditSince)
		if err != nil {
			return fmt.Errorf("invalid --since duration: %w", err)
		}
		sinceTime = time.Now().Add(-duration)
	}

	entries, skipped, err := auditlog.Read(logPath)
	if err != nil {
		return err
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d unparseable log line(s)\n", skipped)
	}

	entries = filterEntries(entries, auditSession, sinceTime)
	if auditLimit > 0 && len(entries) > auditLimit {
		entries = entries[len(entries)-auditLimit:]
	}

	if auditJSON {
		out := json.NewEncoder(cmd.OutOrStdout())
		out.SetIndent("", "  ")
		return out.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching prompts logged")
		return nil
	}

	for _, e := range entries {
		printEntry(cmd, e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries from %s\n", len(entries), logPath)
	return nil
}

func filterEntries(entries []auditlog.Entry, session string, since time.Time) []auditlog.Entry {
	if session == "" && since.IsZero() {
		return entries
	}
	var out []auditlog.Entry
	for _, e := range entries {
		if session != "" && e.SessionID != session {
			continue
		}
		if !since.IsZero() {
			ts, err := time.Parse(time.RFC3339, e.Timestamp)
			if err != nil || ts.Before(since) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func printEntry(cmd *cobra.Command, e auditlog.Entry) {
	prompt := strings.ReplaceAll(e.Prompt, "\n", " ")
	if short := auditlog.Truncate(prompt, 100); short != prompt {
		prompt = short + "…"
	}

	if style.TTY() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			style.Dim.Render(e.Timestamp),
			style.Bold.Render(e.SessionID),
			prompt)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", e.Timestamp, e.SessionID, prompt)
	}
}

// parseDuration handles time.ParseDuration syntax plus a "d" suffix
// for days (e.g. "7d").
func parseDuration(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("parsing %q: %w", s, err)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
