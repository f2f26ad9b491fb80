package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/pen-pictures/internal/domain/teams"
)

// aliasFile is the YAML shape of COMPETITION_ALIASES_FILE:
//
//	competitions:
//	  English Premier League: Premier League
type aliasFile struct {
	Competitions map[string]string `yaml:"competitions"`
}

func loadCompetition() (CompetitionConfig, error) {
	path := envOrDefault(envAliasesFile, "")
	aliases, err := LoadCompetitionAliases(path)
	if err != nil {
		return CompetitionConfig{}, err
	}
	return CompetitionConfig{AliasesFile: path, Aliases: aliases}, nil
}

// LoadCompetitionAliases returns the built-in aliases merged with those in path.
// An empty path yields the built-ins only.
func LoadCompetitionAliases(path string) (map[string]string, error) {
	merged := make(map[string]string, len(teams.DefaultCompetitionAliases))
	for k, v := range teams.DefaultCompetitionAliases {
		merged[k] = v
	}
	if path == "" {
		return merged, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read competition aliases: %w", err)
	}
	var file aliasFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse competition aliases: %w", err)
	}
	for k, v := range file.Competitions {
		if k == "" || v == "" {
			continue
		}
		merged[k] = v
	}
	return merged, nil
}
