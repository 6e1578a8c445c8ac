package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakin19/zen-support/internal/claude"
	"github.com/hakin19/zen-support/internal/workspace"
)

func TestInstallCreatesSettings(t *testing.T) {
	dir := projectDir(t)
	t.Chdir(dir)

	stdout, _, err := execute(t, "", "install")
	if err != nil {
		t.Fatalf("install error = %v", err)
	}
	if !strings.Contains(stdout, "Registered") {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(claude.SettingsPath(dir)); err != nil {
		t.Errorf("settings.json not created: %v", err)
	}
}

func TestInstallIdempotent(t *testing.T) {
	dir := projectDir(t)
	t.Chdir(dir)

	if _, _, err := execute(t, "", "install"); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := execute(t, "", "install")
	if err != nil {
		t.Fatalf("second install error = %v", err)
	}
	if !strings.Contains(stdout, "already registered") {
		t.Errorf("stdout = %q, want already-registered notice", stdout)
	}
}

func TestInstallDryRun(t *testing.T) {
	dir := projectDir(t)
	t.Chdir(dir)

	stdout, _, err := execute(t, "", "install", "--dry-run")
	if err != nil {
		t.Fatalf("install --dry-run error = %v", err)
	}
	if !strings.Contains(stdout, "would create") {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(claude.SettingsPath(dir)); !os.IsNotExist(err) {
		t.Error("dry run wrote settings.json")
	}

	installDryRun = false // reset shared flag state
}

func TestInstallPrint(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "", "install", "--print")
	if err != nil {
		t.Fatalf("install --print error = %v", err)
	}
	if !strings.Contains(stdout, claude.HookCommand) {
		t.Errorf("stdout = %q, want snippet containing %q", stdout, claude.HookCommand)
	}

	installPrint = false
}

func TestInstallOutsideProject(t *testing.T) {
	dir := t.TempDir()
	if root, err := workspace.Find(dir); err == nil {
		t.Skipf("temp dir is inside a project rooted at %s", root)
	}
	t.Chdir(dir)

	if _, _, err := execute(t, "", "install"); err == nil {
		t.Fatal("install error = nil outside a project")
	}
	if _, err := os.Stat(filepath.Join(dir, ".claude", "settings.json")); !os.IsNotExist(err) {
		t.Error("install wrote settings into a directory that is not a project root")
	}
}
