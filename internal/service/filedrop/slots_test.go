package filedrop

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPendingInputsFiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlotStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	for _, name := range []string{"acct1_in.txt", "acct2_in.txt", "acct1_out.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub_in.txt"), 0o755); err != nil {
		t.Fatalf("seed dir: %v", err)
	}

	paths, err := store.PendingInputs()
	if err != nil {
		t.Fatalf("pending inputs: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 inbound slots, got %d: %v", len(paths), paths)
	}
	for _, p := range paths {
		if filepath.Ext(p) != ".txt" || filepath.Base(p) == "acct1_out.txt" {
			t.Fatalf("unexpected slot %s", p)
		}
	}
}

func TestClearTruncatesButKeepsFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlotStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	path := filepath.Join(dir, "acct1_in.txt")
	if err := os.WriteFile(path, []byte(`{"type":"heartbeat"}`), 0o644); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	if err := store.Clear(path); err != nil {
		t.Fatalf("clear: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("slot file removed: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("slot not truncated, %d bytes left", len(data))
	}
}

func TestWriteCommandOverwrites(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlotStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if err := store.WriteCommand("C1", []byte("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := store.WriteCommand("C1", []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(store.CommandPath("C1"))
	if err != nil {
		t.Fatalf("read command slot: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected last write to win, got %q", data)
	}
}

func TestWriteCommandRejectsPathCharacters(t *testing.T) {
	store, err := NewSlotStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, id := range []string{"", "../escape", `a\b`} {
		if err := store.WriteCommand(id, []byte("x")); err == nil {
			t.Fatalf("account id %q accepted", id)
		}
	}
}
