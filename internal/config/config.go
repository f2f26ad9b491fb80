package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for a report run.
type Config struct {
	Provider    string
	Inputs      InputsConfig
	Report      ReportConfig
	Leaders     LeadersConfig
	Competition CompetitionConfig
	Metrics     MetricsConfig
}

// InputsConfig names the two source documents.
type InputsConfig struct {
	SeasonPath string
	SquadPath  string
}

// ReportConfig controls report outputs.
type ReportConfig struct {
	XLSXPath          string
	BadgePath         string
	SnapshotDir       string
	SnapshotRetention int
	Console           bool
	MinutesPercentile float64
}

// LeadersConfig tunes stat leadership sentences.
type LeadersConfig struct {
	SkipZero bool
}

// CompetitionConfig carries the competition alias table.
type CompetitionConfig struct {
	AliasesFile string
	Aliases     map[string]string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is applied first when present; variables already set win.
func Load() (Config, error) {
	if err := loadDotenv(envOrDefault(envDotenvFile, defaultDotenvFile)); err != nil {
		return Config{}, err
	}

	competition, err := loadCompetition()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		Inputs: InputsConfig{
			SeasonPath: envOrDefault(envSeasonXML, defaultSeasonXML),
			SquadPath:  envOrDefault(envSquadXML, defaultSquadXML),
		},
		Report: ReportConfig{
			XLSXPath:          envOrDefault(envReportXLSX, defaultReportXLSX),
			BadgePath:         envOrDefault(envBadgeImage, ""),
			SnapshotDir:       envOrDefault(envSnapshotDir, ""),
			SnapshotRetention: intEnvOrDefault(envSnapshotKeep, 0),
			Console:           boolEnvOrDefault(envConsoleOutput, defaultConsole),
			MinutesPercentile: percentileEnvOrDefault(envMinutesPercent, defaultMinutesPercentile),
		},
		Leaders: LeadersConfig{
			SkipZero: boolEnvOrDefault(envLeadersSkipZero, defaultSkipZero),
		},
		Competition: competition,
		Metrics:     loadMetrics(),
	}, nil
}

func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
