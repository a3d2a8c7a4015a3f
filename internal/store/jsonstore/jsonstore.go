package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed slots. One human-readable file per key inside Dir.
// No locking; fine for a local single-user CLI.

type Store struct {
	Dir string
}

func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{Dir: dir}
}

// Path is the file that holds key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

func (s *Store) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	// Keep the file readable by humans when the value is JSON.
	var buf bytes.Buffer
	if json.Indent(&buf, value, "", "  ") == nil {
		value = buf.Bytes()
	}
	return writeAtomic(s.Path(key), value)
}

// writeAtomic replaces path through a temp file in the same directory, so a
// crash mid-write leaves the previous contents in place.
func writeAtomic(path string, value []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if _, err := f.Write(value); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
