package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readSettings(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]json.RawMessage
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("settings file is not valid JSON: %v", err)
	}
	return settings
}

func hooksFrom(t *testing.T, settings map[string]json.RawMessage) map[string][]HookMatcher {
	t.Helper()
	hooks := map[string][]HookMatcher{}
	if raw, ok := settings["hooks"]; ok {
		if err := json.Unmarshal(raw, &hooks); err != nil {
			t.Fatalf("hooks section is malformed: %v", err)
		}
	}
	return hooks
}

func TestEnsureHookCreatesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	changed, err := EnsureHook(path)
	if err != nil {
		t.Fatalf("EnsureHook() error = %v", err)
	}
	if !changed {
		t.Error("EnsureHook() = false, want true for created file")
	}

	hooks := hooksFrom(t, readSettings(t, path))
	if !hookRegistered(hooks[HookEvent]) {
		t.Errorf("created settings do not register %q", HookCommand)
	}
}

func TestEnsureHookIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	if _, err := EnsureHook(path); err != nil {
		t.Fatal(err)
	}
	changed, err := EnsureHook(path)
	if err != nil {
		t.Fatalf("EnsureHook() second call error = %v", err)
	}
	if changed {
		t.Error("EnsureHook() = true on second call, want false")
	}

	hooks := hooksFrom(t, readSettings(t, path))
	if got := len(hooks[HookEvent]); got != 1 {
		t.Errorf("got %d %s matchers, want 1", got, HookEvent)
	}
}

func TestEnsureHookPreservesExistingSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	existing := `{
  "permissions": {"allow": ["Bash(npm test:*)"]},
  "hooks": {
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "echo pre"}]}
    ]
  }
}`
	if err := os.WriteFile(path, []byte(existing), 0600); err != nil {
		t.Fatal(err)
	}

	changed, err := EnsureHook(path)
	if err != nil {
		t.Fatalf("EnsureHook() error = %v", err)
	}
	if !changed {
		t.Error("EnsureHook() = false, want true")
	}

	settings := readSettings(t, path)
	if _, ok := settings["permissions"]; !ok {
		t.Error("permissions key lost during rewrite")
	}
	hooks := hooksFrom(t, settings)
	if len(hooks["PreToolUse"]) != 1 {
		t.Error("existing PreToolUse hook lost during rewrite")
	}
	if !hookRegistered(hooks[HookEvent]) {
		t.Errorf("%s hook not added", HookEvent)
	}
}

func TestEnsureHookMalformedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureHook(path); err == nil {
		t.Error("EnsureHook() error = nil, want parse error")
	}
}

func TestSnippetIsValidJSON(t *testing.T) {
	data, err := Snippet()
	if err != nil {
		t.Fatalf("Snippet() error = %v", err)
	}
	var settings map[string]json.RawMessage
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("Snippet() is not valid JSON: %v", err)
	}
	if !hookRegistered(hooksFrom(t, settings)[HookEvent]) {
		t.Error("Snippet() does not register the prompt hook")
	}
}
