package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	CFBD     CFBDConfig
	Retry    RetryConfig
	LogoDir  string
	Metrics  MetricsConfig
	Season   Season
}

// Load reads configuration from environment variables with sensible defaults.
// The season table is layered from defaults, the optional SEASON_CONFIG file
// and SEASON_* overrides; an invalid table is the only failure.
func Load() (Config, error) {
	season, err := LoadSeason()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		CFBD:     loadCFBD(),
		Retry:    loadRetry(),
		LogoDir:  envOrDefault(envLogoDir, defaultLogoDir),
		Metrics:  loadMetrics(),
		Season:   season,
	}, nil
}
