package snapshots

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	reportsDir   = "reports"
	manifestName = "manifest.json"
)

// ReportKey names a report by team and season, e.g. "13-2020-2021".
func ReportKey(teamID, season string) string {
	key := fmt.Sprintf("%s-%s", teamID, season)
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '-'
		}
		return r
	}, key)
}

// ReportSnapshotPath builds the path to an exported report.
func ReportSnapshotPath(basePath, key string) string {
	return filepath.Join(basePath, reportsDir, fmt.Sprintf("%s.json", key))
}

// ManifestPath builds the path to the export manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
