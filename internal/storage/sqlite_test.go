package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkoval/vgacons/internal/vga"
)

// testFrame builds a blank frame with text on the bottom row.
func testFrame(text string) *vga.Frame {
	var f vga.Frame
	attr := vga.NewAttr(vga.Yellow, vga.Black)
	for row := range f {
		for col := range f[row] {
			f[row][col] = vga.Cell{Char: ' ', Attr: attr}
		}
	}
	for i := 0; i < len(text) && i < vga.Width; i++ {
		f[vga.Height-1][i] = vga.Cell{Char: text[i], Attr: attr}
	}
	return &f
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveSnapshot("boot", testFrame("Hello World!"))
	if err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero snapshot ID")
	}

	entry, err := store.Snapshot(id)
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("Snapshot() returned nil for existing ID")
	}

	if entry.Label != "boot" {
		t.Errorf("Expected label %q, got %q", "boot", entry.Label)
	}
	if len(entry.Data) != vga.FrameSize {
		t.Errorf("Expected %d blob bytes, got %d", vga.FrameSize, len(entry.Data))
	}

	frame, err := entry.Frame()
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if !strings.HasPrefix(frame.Row(vga.Height-1), "Hello World!") {
		t.Errorf("Decoded bottom row = %q, expected it to start with the saved text", frame.Row(vga.Height-1))
	}
}

func TestStoreSnapshotMissing(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entry, err := store.Snapshot(999)
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Expected nil for missing snapshot, got %+v", entry)
	}
}

func TestStoreLatestSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store
	entry, err := store.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Expected nil latest snapshot for empty store, got %+v", entry)
	}

	store.SaveSnapshot("first", testFrame("one"))
	store.SaveSnapshot("second", testFrame("two"))

	entry, err = store.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("LatestSnapshot() returned nil after saves")
	}
	if entry.Label != "second" {
		t.Errorf("Expected latest label %q, got %q", "second", entry.Label)
	}
}

func TestStoreListSnapshotsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 snapshots
	for i := 0; i < 5; i++ {
		store.SaveSnapshot(fmt.Sprintf("snap%d", i+1), testFrame("x"))
	}

	// Request only the latest 3
	entries, err := store.ListSnapshots(3)
	if err != nil {
		t.Fatalf("ListSnapshots() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 snapshots with limit, got %d", len(entries))
	}

	// Newest first
	if entries[0].Label != "snap5" || entries[1].Label != "snap4" || entries[2].Label != "snap3" {
		t.Errorf("Snapshots not in expected order: %q, %q, %q",
			entries[0].Label, entries[1].Label, entries[2].Label)
	}
}

func TestStoreDeleteSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveSnapshot("doomed", testFrame("bye"))
	if err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	if err := store.DeleteSnapshot(id); err != nil {
		t.Fatalf("DeleteSnapshot() failed: %v", err)
	}

	entry, _ := store.Snapshot(id)
	if entry != nil {
		t.Error("Snapshot still present after delete")
	}

	// Deleting again should report not found
	if err := store.DeleteSnapshot(id); err == nil {
		t.Error("Expected error when deleting missing snapshot")
	}
}

func TestStoreClearSnapshots(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSnapshot("a", testFrame("a"))
	store.SaveSnapshot("b", testFrame("b"))
	store.SaveSnapshot("c", testFrame("c"))

	if err := store.ClearSnapshots(); err != nil {
		t.Fatalf("ClearSnapshots() failed: %v", err)
	}

	entries, _ := store.ListSnapshots(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 snapshots after clear, got %d", len(entries))
	}
}

func TestEntryFrameRejectsBadBlob(t *testing.T) {
	e := &SnapshotEntry{ID: 7, Data: []byte{1, 2, 3}}
	if _, err := e.Frame(); err == nil {
		t.Error("Expected error decoding truncated blob")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
