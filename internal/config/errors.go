package config

import "errors"

var (
	// ErrLoadSeason is returned when the season file or env overrides cannot be read.
	ErrLoadSeason = errors.New("load season config")
	// ErrInvalidSeason is returned when the season table fails validation.
	ErrInvalidSeason = errors.New("invalid season config")
)
