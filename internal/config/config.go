package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/core"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/trends"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/domain/weather"
	"github.com/ozzy2438/Hospital-Pressure-Analyse/internal/errors"
)

// DefaultSheets are the SitRep workbook sheets extracted when no override is given
var DefaultSheets = []string{
	"Total G&A beds",
	"Adult G&A beds",
	"Adult critical care",
	"Flu",
	"RSV",
}

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Paths    PathConfig
	Fetch    FetchConfig
	Extract  ExtractConfig
}

// DatabaseConfig holds optional database connection settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// PathConfig holds file system paths rooted at the workspace directory
type PathConfig struct {
	WorkspaceDir string
}

// FetchConfig holds settings for the external data providers
type FetchConfig struct {
	Cities       []weather.City
	Keywords     []string
	Range        core.DateRange
	WeatherDelay time.Duration
	TrendsDelay  time.Duration
}

// ExtractConfig holds settings for workbook extraction
type ExtractConfig struct {
	Sheets []string
}

// fileConfig mirrors the optional YAML overrides file
type fileConfig struct {
	Cities   []weather.City `yaml:"cities"`
	Keywords []string       `yaml:"keywords"`
	Sheets   []string       `yaml:"sheets"`
	Days     int            `yaml:"days"`
}

// Load reads configuration from environment variables, applies defaults,
// and merges overrides from an optional YAML file.
func Load() (*Config, error) {
	config := &Config{
		Database: loadDatabaseConfig(),
		Paths:    loadPathConfig(),
		Fetch:    loadFetchConfig(),
		Extract:  loadExtractConfig(),
	}

	if path := getEnvOrDefault("CONFIG_FILE", "config.yaml"); path != "" {
		if err := applyFileOverrides(config, path); err != nil {
			return nil, errors.Wrap(err, "failed to load configuration file")
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	url := os.Getenv("DATABASE_URL")
	return DatabaseConfig{
		URL:     url,
		Enabled: url != "",
	}
}

func loadPathConfig() PathConfig {
	return PathConfig{
		WorkspaceDir: getEnvOrDefault("WORKSPACE_DIR", "."),
	}
}

func loadFetchConfig() FetchConfig {
	days := getEnvIntOrDefault("FETCH_DAYS", 730)
	return FetchConfig{
		Cities:       weather.DefaultCities(),
		Keywords:     trends.DefaultKeywords(),
		Range:        core.LastNDays(core.NewDay(time.Now().UTC()), days),
		WeatherDelay: getEnvDurationOrDefault("WEATHER_FETCH_DELAY", 1*time.Second),
		TrendsDelay:  getEnvDurationOrDefault("TRENDS_FETCH_DELAY", 5*time.Second),
	}
}

func loadExtractConfig() ExtractConfig {
	return ExtractConfig{
		Sheets: append([]string(nil), DefaultSheets...),
	}
}

func applyFileOverrides(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrap(err, "failed to parse "+path)
	}

	if len(fc.Cities) > 0 {
		config.Fetch.Cities = fc.Cities
	}
	if len(fc.Keywords) > 0 {
		config.Fetch.Keywords = fc.Keywords
	}
	if len(fc.Sheets) > 0 {
		config.Extract.Sheets = fc.Sheets
	}
	if fc.Days > 0 {
		config.Fetch.Range = core.LastNDays(core.NewDay(time.Now().UTC()), fc.Days)
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Paths.WorkspaceDir == "" {
		return errors.ConfigInvalid("workspace directory is required")
	}
	if len(config.Fetch.Cities) == 0 {
		return errors.ConfigInvalid("at least one city is required")
	}
	for _, city := range config.Fetch.Cities {
		if city.Name == "" {
			return errors.ConfigInvalid("city name cannot be empty")
		}
		if city.Latitude < -90 || city.Latitude > 90 {
			return errors.ConfigInvalid("city latitude out of range: " + city.Name)
		}
		if city.Longitude < -180 || city.Longitude > 180 {
			return errors.ConfigInvalid("city longitude out of range: " + city.Name)
		}
	}
	if len(config.Fetch.Keywords) == 0 {
		return errors.ConfigInvalid("at least one keyword is required")
	}
	if len(config.Extract.Sheets) == 0 {
		return errors.ConfigInvalid("at least one target sheet is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
