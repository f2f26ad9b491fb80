package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// Store defines how exported reports are loaded.
type Store interface {
	LoadReport(key string) (Report, error)
}

// FSStore loads exported reports from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed report store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadReport reads an exported report by key.
// Files are expected at {basePath}/reports/{key}.json.
func (s *FSStore) LoadReport(key string) (Report, error) {
	if s == nil {
		return Report{}, errors.New("snapshot store not configured")
	}
	if key == "" {
		return Report{}, errors.New("report key required")
	}
	var payload Report
	if err := s.decodeFile(ReportSnapshotPath(s.basePath, key), &payload); err != nil {
		return Report{}, err
	}
	return payload, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
