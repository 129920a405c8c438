package config

import "time"

// StatsAPIConfig controls how we talk to the stats API.
type StatsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// FixtureConfig names saved stats API documents used instead of the network.
type FixtureConfig struct {
	TodayFile string
	NextFile  string
}

// Enabled reports whether either document is configured.
func (f FixtureConfig) Enabled() bool {
	return f.TodayFile != "" || f.NextFile != ""
}

// EventsConfig points at an optional YAML dated-event list.
type EventsConfig struct {
	File  string
	Label string
}

// SecondaryConfig points at an optional secondary team schedule page.
type SecondaryConfig struct {
	URL     string
	Label   string
	Timeout time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Timeout: durationEnvOrDefault(envStatsAPITimeout, defaultStatsAPITimeout),
	}
}

func loadFixture() FixtureConfig {
	return FixtureConfig{
		TodayFile: envOrDefault(envTodayFile, ""),
		NextFile:  envOrDefault(envNextFile, ""),
	}
}

func loadEvents() EventsConfig {
	return EventsConfig{
		File:  envOrDefault(envEventsFile, ""),
		Label: envOrDefault(envEventsLabel, defaultEventsLabel),
	}
}

func loadSecondary() SecondaryConfig {
	return SecondaryConfig{
		URL:     envOrDefault(envSecondaryURL, ""),
		Label:   envOrDefault(envSecondaryLabel, defaultSecondaryLabel),
		Timeout: durationEnvOrDefault(envSecondaryTimeout, defaultSecondaryTimeout),
	}
}
