// Package hook implements the UserPromptSubmit hook pipeline.
//
// The whole hook is modeled as a function from stdin bytes to
// (stdout, stderr, exit code), with the audit log append as the only
// other observable effect. Claude Code interprets the exit code:
// zero lets the prompt proceed, non-zero fails the hook.
package hook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/hakin19/zen-support/internal/auditlog"
	"github.com/hakin19/zen-support/internal/standards"
)

// ErrMalformedInput indicates stdin was not a valid JSON object.
var ErrMalformedInput = errors.New("malformed hook input")

// DefaultSessionID is logged when the host omits session_id.
const DefaultSessionID = "unknown"

// PromptEvent is one prompt-submission event as delivered by the host
// on stdin. All fields are optional in the wire format.
type PromptEvent struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// Decode reads all of r and parses it as a single PromptEvent,
// applying the session_id default. A timestamp default is not applied
// here; the logger substitutes wall-clock time at append.
func Decode(r io.Reader) (PromptEvent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return PromptEvent{}, fmt.Errorf("reading stdin: %w", err)
	}

	var ev PromptEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return PromptEvent{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if ev.SessionID == "" {
		ev.SessionID = DefaultSessionID
	}
	return ev, nil
}

// Runner wires the pipeline together. Zero fields are filled with
// defaults by Run, so tests can construct a Runner with only the
// pieces they care about.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Sink    *auditlog.Sink
	Advisor *standards.Advisor

	// Now is the clock used for the timestamp default. Nil means
	// time.Now.
	Now func() time.Time

	// Debug receives structured trace events. Nil means no tracing.
	Debug *zap.Logger
}

// Run executes parse → log (best-effort) → advise and returns the
// process exit code. Diagnostics go to Stderr; only the advisory block
// is ever written to Stdout.
func (r *Runner) Run() int {
	debug := r.Debug
	if debug == nil {
		debug = zap.NewNop()
	}

	ev, err := Decode(r.Stdin)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			fmt.Fprintf(r.Stderr, "Error parsing JSON input: %v\n", err)
		} else {
			fmt.Fprintf(r.Stderr, "Unexpected error: %v\n", err)
		}
		return 1
	}
	debug.Debug("decoded prompt event",
		zap.String("session_id", ev.SessionID),
		zap.Int("prompt_len", len(ev.Prompt)))

	// Audit append is best-effort: a failed write warns and moves on.
	// The trail is diagnostic, not part of the hook's contract.
	if err := r.appendAudit(ev); err != nil {
		fmt.Fprintf(r.Stderr, "Warning: could not log prompt: %v\n", err)
	}

	if kw, ok := r.Advisor.Match(ev.Prompt); ok {
		debug.Debug("advisory triggered", zap.String("keyword", kw))
		if _, err := io.WriteString(r.Stdout, r.Advisor.Render()); err != nil {
			fmt.Fprintf(r.Stderr, "Unexpected error: %v\n", err)
			return 1
		}
	}

	return 0
}

func (r *Runner) appendAudit(ev PromptEvent) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	ts := ev.Timestamp
	if ts == "" {
		ts = now().Format(time.RFC3339)
	}

	return r.Sink.Append(auditlog.Entry{
		Timestamp: ts,
		SessionID: ev.SessionID,
		Prompt:    ev.Prompt,
	})
}
