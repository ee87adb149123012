package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/umbcdata/degree-offerings/internal/offering"
)

// Storage handles persistence of offerings snapshots
type Storage struct {
	dataDir string

	// Pretty indents the JSON written by Save
	Pretty bool
}

// New creates a new Storage instance writing into an existing dataDir
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, fmt.Errorf("checking data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", dataDir)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the directory snapshots are written to
func (s *Storage) Dir() string {
	return s.dataDir
}

// SnapshotName returns the file name of the snapshot taken at t.
// Month and day are not zero padded.
func SnapshotName(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d.json", t.Year(), int(t.Month()), t.Day())
}

// SnapshotPath returns the full path of the snapshot taken at t
func (s *Storage) SnapshotPath(t time.Time) string {
	return filepath.Join(s.dataDir, SnapshotName(t))
}

// Save writes the table as the snapshot for the date of at and returns its path.
// An existing snapshot for the same date is overwritten.
func (s *Storage) Save(table offering.Table, at time.Time) (string, error) {
	var (
		data []byte
		err  error
	)
	if s.Pretty {
		data, err = json.MarshalIndent(table, "", "  ")
	} else {
		data, err = json.Marshal(table)
	}
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := s.SnapshotPath(at)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	return path, nil
}
