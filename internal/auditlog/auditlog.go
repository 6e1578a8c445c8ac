// Package auditlog provides the append-only prompt audit trail.
//
// Entries are written to .claude/logs/prompts.jsonl, one JSON object
// per line. The file is only ever appended to; nothing in this repo
// rewrites or truncates it.
package auditlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// DefaultPath is the audit log location relative to the project root.
const DefaultPath = ".claude/logs/prompts.jsonl"

// MaxPromptLen is the maximum number of characters of a prompt kept
// in a log entry. Longer prompts are truncated to bound log growth.
const MaxPromptLen = 500

// Entry is one line of the prompt audit trail.
type Entry struct {
	Timestamp string `json:"timestamp"`
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
}

// Sink appends entries to a JSONL audit log.
// Open fresh per invocation; it holds no file handle between appends.
type Sink struct {
	path string
	mu   sync.Mutex
}

// NewSink creates a Sink writing to the given path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the log file path this sink appends to.
func (s *Sink) Path() string {
	return s.path
}

// Append writes one entry to the log, creating the log directory and
// file if needed. The prompt is truncated to MaxPromptLen characters.
//
// A sidecar flock plus a single O_APPEND write keeps concurrent
// invocations from interleaving partial lines.
func (s *Sink) Append(e Entry) error {
	e.Prompt = Truncate(e.Prompt, MaxPromptLen)

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling entry: %w", err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking log file: %w", err)
	}
	defer lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: audit log is non-sensitive operational data
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	return nil
}

// Truncate returns the first n characters of s.
// Slicing is by rune so a multi-byte character is never split.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Read loads all entries from the log at path, oldest first.
// Lines that fail to parse are counted in skipped rather than
// aborting the read; a partially corrupt log is still useful.
// A missing log file yields no entries and no error.
func Read(path string) (entries []Entry, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, skipped, fmt.Errorf("reading log file: %w", err)
	}

	return entries, skipped, nil
}
