// Package claude manages the project's Claude Code settings, wiring
// the prompt hook into .claude/settings.json.
package claude

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakin19/zen-support/internal/util"
)

//go:embed config/settings.json
var configFS embed.FS

// HookEvent is the Claude Code lifecycle event the prompt hook runs on.
const HookEvent = "UserPromptSubmit"

// HookCommand is the command registered for the event.
const HookCommand = "zenhook prompt"

// HookEntry is a single command entry inside a hook matcher group.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// HookMatcher groups hook entries under an optional tool matcher.
// UserPromptSubmit hooks have no matcher.
type HookMatcher struct {
	Matcher string      `json:"matcher,omitempty"`
	Hooks   []HookEntry `json:"hooks"`
}

// SettingsPath returns the settings.json location for a project root.
func SettingsPath(projectRoot string) string {
	return filepath.Join(projectRoot, ".claude", "settings.json")
}

// Snippet returns the settings.json content used when creating the
// file from scratch, which doubles as the snippet for --print.
func Snippet() ([]byte, error) {
	data, err := configFS.ReadFile("config/settings.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded settings template: %w", err)
	}
	return data, nil
}

// EnsureHook makes sure settingsPath registers the prompt hook.
// A missing file is created from the embedded template. An existing
// file is decoded, extended, and rewritten atomically; keys other
// than "hooks" are preserved untouched. Returns whether the file was
// created or modified.
func EnsureHook(settingsPath string) (bool, error) {
	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		template, err := Snippet()
		if err != nil {
			return false, err
		}
		if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
			return false, fmt.Errorf("creating settings directory: %w", err)
		}
		if err := os.WriteFile(settingsPath, template, 0600); err != nil {
			return false, fmt.Errorf("writing settings: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading settings: %w", err)
	}

	// Decode the top level loosely so settings we don't know about
	// survive the round trip.
	var settings map[string]json.RawMessage
	if err := json.Unmarshal(data, &settings); err != nil {
		return false, fmt.Errorf("parsing %s: %w", settingsPath, err)
	}

	hooks := map[string][]HookMatcher{}
	if raw, ok := settings["hooks"]; ok {
		if err := json.Unmarshal(raw, &hooks); err != nil {
			return false, fmt.Errorf("parsing hooks in %s: %w", settingsPath, err)
		}
	}

	if hookRegistered(hooks[HookEvent]) {
		return false, nil
	}

	hooks[HookEvent] = append(hooks[HookEvent], HookMatcher{
		Hooks: []HookEntry{{Type: "command", Command: HookCommand}},
	})

	rawHooks, err := json.Marshal(hooks)
	if err != nil {
		return false, fmt.Errorf("encoding hooks: %w", err)
	}
	if settings == nil {
		settings = map[string]json.RawMessage{}
	}
	settings["hooks"] = rawHooks

	if err := util.AtomicWriteJSON(settingsPath, settings); err != nil {
		return false, fmt.Errorf("writing settings: %w", err)
	}
	return true, nil
}

func hookRegistered(matchers []HookMatcher) bool {
	for _, m := range matchers {
		for _, h := range m.Hooks {
			if h.Command == HookCommand {
				return true
			}
		}
	}
	return false
}
