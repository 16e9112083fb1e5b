package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
)

// The ruleset and league catalogs are small curated YAML files. A file
// replaces the built-in catalog wholesale; no merging.

type scoringSystemFile struct {
	Systems []scoringSystemEntry `yaml:"systems" validate:"required,min=1,dive"`
}

type scoringSystemEntry struct {
	ID             string  `yaml:"id" validate:"required"`
	Name           string  `yaml:"name" validate:"required"`
	IndividualWin  float64 `yaml:"individual_win"`
	IndividualTie  float64 `yaml:"individual_tie"`
	IndividualLoss float64 `yaml:"individual_loss"`
	TeamWin        float64 `yaml:"team_win"`
	TeamTie        float64 `yaml:"team_tie"`
	TeamLoss       float64 `yaml:"team_loss"`
	AllowTies      bool    `yaml:"allow_ties"`
}

type leagueCatalogFile struct {
	Leagues map[string]leagueCatalogEntry `yaml:"leagues" validate:"required,min=1"`
}

type leagueCatalogEntry struct {
	LongName string `yaml:"long_name" validate:"required"`
	Level    int    `yaml:"level" validate:"min=0"`
}

func loadScoringCatalog(path string) ([]scoringsystem.ScoringSystem, error) {
	if path == "" {
		return scoringsystem.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring catalog %s: %w", path, err)
	}

	var file scoringSystemFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse scoring catalog %s: %w", path, err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("scoring catalog %s is invalid: %w", path, err)
	}

	systems := make([]scoringsystem.ScoringSystem, 0, len(file.Systems))
	for _, entry := range file.Systems {
		system := scoringsystem.ScoringSystem{
			ID:             entry.ID,
			Name:           entry.Name,
			IndividualWin:  entry.IndividualWin,
			IndividualTie:  entry.IndividualTie,
			IndividualLoss: entry.IndividualLoss,
			TeamWin:        entry.TeamWin,
			TeamTie:        entry.TeamTie,
			TeamLoss:       entry.TeamLoss,
			AllowTies:      entry.AllowTies,
		}
		if err := system.Validate(); err != nil {
			return nil, fmt.Errorf("scoring catalog %s: system %q: %w", path, entry.ID, err)
		}
		systems = append(systems, system)
	}

	return systems, nil
}

func loadLeagueCatalog(path string) (map[string]league.Info, error) {
	if path == "" {
		return league.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league catalog %s: %w", path, err)
	}

	var file leagueCatalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse league catalog %s: %w", path, err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("league catalog %s is invalid: %w", path, err)
	}

	catalog := make(map[string]league.Info, len(file.Leagues))
	for code, entry := range file.Leagues {
		catalog[code] = league.Info{LongName: entry.LongName, Level: entry.Level}
	}

	return catalog, nil
}
