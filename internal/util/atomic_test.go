package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteJSON(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "settings.json")

	data := map[string]string{"key": "value"}
	if err := AtomicWriteJSON(testFile, data); err != nil {
		t.Fatalf("AtomicWriteJSON error: %v", err)
	}

	// Temp file must be cleaned up
	if _, err := os.Stat(testFile + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("Temp file was not cleaned up")
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(content, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["key"] != "value" {
		t.Errorf("Unexpected content: %s", content)
	}
}

func TestAtomicWriteFileOverwrite(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.txt")

	if err := AtomicWriteFile(testFile, []byte("first"), 0644); err != nil {
		t.Fatalf("First write error: %v", err)
	}
	if err := AtomicWriteFile(testFile, []byte("second"), 0644); err != nil {
		t.Fatalf("Second write error: %v", err)
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("Unexpected content: %s", content)
	}
}

func TestAtomicWritePreservesOnFailure(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "preserve.txt")

	if err := AtomicWriteFile(testFile, []byte("original"), 0644); err != nil {
		t.Fatalf("Initial write error: %v", err)
	}

	// A directory squatting on the .tmp name makes the write fail.
	if err := os.Mkdir(testFile+".tmp", 0755); err != nil {
		t.Fatalf("Failed to create blocking dir: %v", err)
	}

	if err := AtomicWriteFile(testFile, []byte("new"), 0644); err == nil {
		t.Fatal("Expected error when .tmp is a directory")
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(content) != "original" {
		t.Errorf("Original content not preserved: got %q", content)
	}
}

func TestAtomicWriteJSONUnmarshallable(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "bad.json")

	if err := AtomicWriteJSON(testFile, make(chan int)); err == nil {
		t.Fatal("Expected error for unmarshallable type")
	}
	if _, err := os.Stat(testFile); !os.IsNotExist(err) {
		t.Fatal("File should not exist after marshal error")
	}
}
