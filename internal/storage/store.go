package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SnapshotStore persists Snapshots as a single JSON document. Saves write a
// temp file in the same directory and rename it over the old one, so a crash
// mid-write never corrupts the previous snapshot.
type SnapshotStore struct {
	path           string
	defaultPlantID string
}

func NewSnapshotStore(path, defaultPlantID string) *SnapshotStore {
	return &SnapshotStore{path: path, defaultPlantID: defaultPlantID}
}

// DefaultDataDir returns the default sprout data location (~/.sprout).
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".sprout"), nil
}

func (s *SnapshotStore) Path() string { return s.path }

// Load reads the stored snapshot. It never fails the caller: a missing file
// yields the default snapshot silently, and a malformed file yields the
// default snapshot with a warning. The malformed file is left in place.
func (s *SnapshotStore) Load() Snapshot {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("snapshot unreadable, starting fresh", "path", s.path, "error", err)
		}
		return DefaultSnapshot(s.defaultPlantID)
	}

	snap, err := decodeSnapshot(raw, s.defaultPlantID)
	if err != nil {
		slog.Warn("snapshot malformed, starting fresh", "path", s.path, "error", err)
		return DefaultSnapshot(s.defaultPlantID)
	}
	return snap
}

// Save replaces the stored snapshot atomically. A failed save leaves the
// previous on-disk snapshot intact.
func (s *SnapshotStore) Save(snap Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	raw, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sprout-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func encodeSnapshot(snap Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(raw, '\n'), nil
}
