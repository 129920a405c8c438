package config

import "time"

const (
	envFile             = "ENV_FILE"
	envPort             = "PORT"
	envTeamID           = "TEAM_ID"
	envVenueTimezone    = "VENUE_TIMEZONE"
	envProvider         = "PROVIDER"
	envStatsAPIBaseURL  = "STATSAPI_BASE_URL"
	envStatsAPITimeout  = "STATSAPI_TIMEOUT"
	envTodayFile        = "TODAY_FILE"
	envNextFile         = "NEXT_FILE"
	envEventsFile       = "EVENTS_FILE"
	envEventsLabel      = "EVENTS_LABEL"
	envSecondaryURL     = "SECONDARY_SCHEDULE_URL"
	envSecondaryLabel   = "SECONDARY_LABEL"
	envSecondaryTimeout = "SECONDARY_TIMEOUT"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLogFile          = "LOG_FILE"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultEnvFile          = ".env"
	defaultPort             = "8080"
	defaultTeamID           = 28
	defaultVenueTimezone    = "America/Los_Angeles"
	defaultStatsAPIBaseURL  = "https://statsapi.web.nhl.com/api/v1"
	defaultStatsAPITimeout  = 10 * time.Second
	defaultSecondaryTimeout = 10 * time.Second
	defaultEventsLabel      = "Coming Up"
	defaultSecondaryLabel   = "Cuda Next"
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultMetricsPort      = "9090"
	defaultServiceName      = "magtag-gateway"

	// ProviderStatsAPI fetches from the network.
	ProviderStatsAPI = "statsapi"
	// ProviderFixture reads saved documents from TODAY_FILE and NEXT_FILE.
	ProviderFixture  = "fixture"
)
