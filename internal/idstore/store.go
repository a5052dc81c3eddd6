package idstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the store file used when no path is configured
const DefaultFileName = "downloaded_ids.txt"

// File permissions
const (
	DefaultFilePermissions = 0o644
	DefaultDirPermissions  = 0o755
)

// ErrStore is wrapped by every I/O failure other than a missing file
var ErrStore = errors.New("id store")

// Store is a flat, append-only record of completed video IDs. It does not
// cache: every Contains reads the file again so entries appended by another
// writer or before a crash are seen. Reads and appends are not locked.
type Store struct {
	path string
}

// New creates a store backed by path, or DefaultFileName in the working
// directory when path is empty.
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Contains reports whether id has been recorded. A store that does not exist
// yet contains nothing.
func (s *Store) Contains(id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}

	found := false
	err := s.scan(func(line string) bool {
		if line == id {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Record appends id and a line terminator. Recording the same id twice
// produces two lines.
func (s *Store) Record(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrStore)
	}
	if strings.ContainsAny(id, "\r\n") {
		return fmt.Errorf("%w: id %q contains a line break", ErrStore, id)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ErrStore, dir, err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("%w: open %s for appending: %v", ErrStore, s.path, err)
	}

	if _, err := file.WriteString(id + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: append to %s: %v", ErrStore, s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrStore, s.path, err)
	}
	return nil
}

// All returns every recorded ID in file order, duplicates included
func (s *Store) All() ([]string, error) {
	var ids []string
	err := s.scan(func(line string) bool {
		ids = append(ids, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// scan calls fn for each non-blank trimmed line until fn returns false
func (s *Store) scan(fn func(line string) bool) error {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: open %s: %v", ErrStore, s.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !fn(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrStore, s.path, err)
	}
	return nil
}
