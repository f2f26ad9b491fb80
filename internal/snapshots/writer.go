package snapshots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Writer persists report exports and the manifest, pruning by age.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath. retentionDays <= 0 keeps every report.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays < 0 {
		retentionDays = 0
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteReport writes the report atomically and records it in the manifest.
// It returns the path written.
func (w *Writer) WriteReport(report Report) (string, error) {
	if w == nil {
		return "", errors.New("snapshot writer not configured")
	}
	if report.Team.ID == "" || report.Team.Season == "" {
		return "", errors.New("report needs team id and season")
	}

	now := w.now().UTC()
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = now
	}
	key := report.Key()
	target := ReportSnapshotPath(w.basePath, key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := writeJSONAtomic(target, report); err != nil {
		return "", fmt.Errorf("write report %s: %w", key, err)
	}

	entry := ReportEntry{
		Key:        key,
		Team:       report.Team.Name,
		Season:     report.Team.Season,
		RunID:      report.RunID,
		ExportedAt: now,
	}
	if err := w.updateManifest(entry, now); err != nil {
		return "", fmt.Errorf("update manifest: %w", err)
	}
	return target, nil
}

func (w *Writer) updateManifest(entry ReportEntry, now time.Time) error {
	m, _ := readManifest(ManifestPath(w.basePath), w.retentionDays)
	m.Retention.Days = w.retentionDays

	entries := make([]ReportEntry, 0, len(m.Reports)+1)
	for _, e := range m.Reports {
		if e.Key != entry.Key {
			entries = append(entries, e)
		}
	}
	entries = append(entries, entry)

	m.Reports = w.prune(entries, now)
	return writeManifest(w.basePath, m, now)
}

func (w *Writer) prune(entries []ReportEntry, now time.Time) []ReportEntry {
	keep := make([]ReportEntry, 0, len(entries))
	cutoff := now.AddDate(0, 0, -w.retentionDays)
	for _, e := range entries {
		if w.retentionDays > 0 && e.ExportedAt.Before(cutoff) {
			_ = os.Remove(ReportSnapshotPath(w.basePath, e.Key))
			continue
		}
		keep = append(keep, e)
	}
	sort.Slice(keep, func(i, j int) bool {
		return keep[i].Key < keep[j].Key
	})
	return keep
}
