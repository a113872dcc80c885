package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envCFBDToken     = "CFB_DATA_TOKEN"
	envCFBDBaseURL   = "CFBD_BASE_URL"
	envCFBDTimeout   = "CFBD_TIMEOUT"
	envRetryAttempts = "PROVIDER_MAX_ATTEMPTS"
	envRetryBackoff  = "PROVIDER_BACKOFF"
	envLogoDir       = "LOGO_DIR"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envSeasonConfig  = "SEASON_CONFIG"
	envSeasonPrefix  = "SEASON_"

	defaultPort          = "3000"
	defaultProvider      = "cfbd"
	defaultCFBDBaseURL   = "https://api.collegefootballdata.com"
	defaultCFBDTimeout   = 10 * time.Second
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * time.Millisecond
	defaultLogoDir       = "public/logos"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "msom-squad-service"

	defaultSeasonYear = 2023
	defaultSeasonType = "regular"
	defaultSeasonTeam = "maryland"
	defaultHomeTeam   = "Maryland"
)
