package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// Config stores runtime configuration for the analyzer.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	DataPath       string
	TablesDir      string
	OutPath        string
	SchemaPath     string
	ScoringPath    string
	LeaguesPath    string
	Delimiter      rune
	DateLayout     string
	LogLevel       logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataPath := strings.TrimSpace(getEnv("LEAGUE_DATA_PATH", "data/results.csv"))
	if dataPath == "" {
		return Config{}, fmt.Errorf("LEAGUE_DATA_PATH cannot be empty")
	}

	tablesDir := strings.TrimSpace(getEnv("LEAGUE_TABLES_DIR", "data/tables"))
	if tablesDir == "" {
		return Config{}, fmt.Errorf("LEAGUE_TABLES_DIR cannot be empty")
	}

	outPath := strings.TrimSpace(getEnv("LEAGUE_OUT_PATH", "data/reconstructed.csv"))
	if outPath == "" {
		return Config{}, fmt.Errorf("LEAGUE_OUT_PATH cannot be empty")
	}

	delimiter, err := ParseDelimiter(getEnv("LEAGUE_DELIMITER", ";"))
	if err != nil {
		return Config{}, err
	}

	dateLayout := strings.TrimSpace(getEnv("LEAGUE_DATE_LAYOUT", "2006-01-02"))
	if dateLayout == "" {
		return Config{}, fmt.Errorf("LEAGUE_DATE_LAYOUT cannot be empty")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "league-analyzer"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		DataPath:       dataPath,
		TablesDir:      tablesDir,
		OutPath:        outPath,
		SchemaPath:     strings.TrimSpace(getEnv("LEAGUE_SCHEMA_PATH", "")),
		ScoringPath:    strings.TrimSpace(getEnv("LEAGUE_SCORING_PATH", "")),
		LeaguesPath:    strings.TrimSpace(getEnv("LEAGUE_LEAGUES_PATH", "")),
		Delimiter:      delimiter,
		DateLayout:     dateLayout,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// ParseDelimiter accepts exactly one rune. The csv layer cannot quote
// its own delimiter away, so separators that collide with quoting or
// line endings are rejected here.
func ParseDelimiter(v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("invalid LEAGUE_DELIMITER %q: exactly one character required", v)
	}

	delimiter, _ := utf8.DecodeRuneInString(v)
	if delimiter == utf8.RuneError || delimiter == '"' || delimiter == '\r' || delimiter == '\n' {
		return 0, fmt.Errorf("invalid LEAGUE_DELIMITER %q", v)
	}

	return delimiter, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
