package config

import "time"

// CFBDConfig controls how we talk to the CollegeFootballData API.
type CFBDConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// RetryConfig controls the retry decorator wrapped around the schedule provider.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

func loadCFBD() CFBDConfig {
	return CFBDConfig{
		BaseURL: envOrDefault(envCFBDBaseURL, defaultCFBDBaseURL),
		Token:   envOrDefault(envCFBDToken, ""),
		Timeout: durationEnvOrDefault(envCFBDTimeout, defaultCFBDTimeout),
	}
}

func loadRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Backoff:     durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
