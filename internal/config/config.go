package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	TeamID        int
	VenueTimezone string
	Provider      string
	StatsAPI      StatsAPIConfig
	Fixture       FixtureConfig
	Events        EventsConfig
	Secondary     SecondaryConfig
	Logging       LoggingConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Variables from a .env file (ENV_FILE) are applied first without overriding
// ones already set in the process environment.
func Load() Config {
	_ = loadDotEnv(envOrDefault(envFile, defaultEnvFile))

	fixture := loadFixture()
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		TeamID:        intEnvOrDefault(envTeamID, defaultTeamID),
		VenueTimezone: envOrDefault(envVenueTimezone, defaultVenueTimezone),
		Provider:      resolveProvider(envOrDefault(envProvider, ""), fixture),
		StatsAPI:      loadStatsAPI(),
		Fixture:       fixture,
		Events:        loadEvents(),
		Secondary:     loadSecondary(),
		Logging:       loadLogging(),
		Metrics:       loadMetrics(),
	}
}

// UseFixtureFiles switches the config to file mode for the given documents.
// Empty paths leave the current values in place.
func (c *Config) UseFixtureFiles(todayFile, nextFile string) {
	if todayFile != "" {
		c.Fixture.TodayFile = todayFile
	}
	if nextFile != "" {
		c.Fixture.NextFile = nextFile
	}
	c.Provider = resolveProvider("", c.Fixture)
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func resolveProvider(explicit string, fixture FixtureConfig) string {
	explicit = strings.ToLower(strings.TrimSpace(explicit))
	if explicit != "" {
		return explicit
	}
	if fixture.Enabled() {
		return ProviderFixture
	}
	return ProviderStatsAPI
}
