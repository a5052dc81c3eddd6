package idstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_DefaultPath(t *testing.T) {
	store := New("")
	if store.Path() != DefaultFileName {
		t.Errorf("Expected default path %s, got %s", DefaultFileName, store.Path())
	}
}

func TestContains_FreshStore(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "ids.txt"))

	found, err := store.Contains("dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Expected no error on missing file, got %v", err)
	}
	if found {
		t.Error("Expected fresh store to contain nothing")
	}
}

func TestRecordThenContains(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "ids.txt"))
	ids := []string{"dQw4w9WgXcQ", "abc-DEF_123", "x"}

	for _, id := range ids {
		found, err := store.Contains(id)
		if err != nil {
			t.Fatalf("Contains(%s) error: %v", id, err)
		}
		if found {
			t.Errorf("Contains(%s) = true before Record", id)
		}

		if err := store.Record(id); err != nil {
			t.Fatalf("Record(%s) error: %v", id, err)
		}

		found, err = store.Contains(id)
		if err != nil {
			t.Fatalf("Contains(%s) error: %v", id, err)
		}
		if !found {
			t.Errorf("Contains(%s) = false after Record", id)
		}
	}

	found, err := store.Contains("not-there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("Contains returned true for an unrecorded id")
	}
}

func TestRecord_AppendsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	store := New(path)

	for i := 0; i < 2; i++ {
		if err := store.Record("dup"); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(data) != "dup\ndup\n" {
		t.Errorf("unexpected store contents: %q", string(data))
	}

	found, err := store.Contains("dup")
	if err != nil || !found {
		t.Errorf("Contains(dup) = %v, %v", found, err)
	}
}

func TestRecord_PreservesExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	if err := os.WriteFile(path, []byte("first\n\n  second  \n"), 0o644); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	store := New(path)

	if err := store.Record("third"); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	ids, err := store.All()
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	expected := []string{"first", "second", "third"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Errorf("All() = %v, expected %v", ids, expected)
	}
}

func TestContains_SeesExternalAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	store := New(path)

	if err := os.WriteFile(path, []byte("external\n"), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	found, err := store.Contains("external")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if !found {
		t.Error("Expected entry written by another writer to be visible")
	}
}

func TestRecord_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ids.txt")
	store := New(path)

	if err := store.Record("abc"); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected store file to exist: %v", err)
	}
}

func TestRecord_RejectsInvalidIDs(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "ids.txt"))

	for _, id := range []string{"", "   ", "a\nb"} {
		err := store.Record(id)
		if !errors.Is(err, ErrStore) {
			t.Errorf("Record(%q) = %v, expected ErrStore", id, err)
		}
	}
}

func TestContains_UnreadableStoreIsStoreError(t *testing.T) {
	// a directory at the store path cannot be read as a file
	path := t.TempDir()
	store := New(path)

	_, err := store.Contains("abc")
	if !errors.Is(err, ErrStore) {
		t.Errorf("Expected ErrStore, got %v", err)
	}
}
