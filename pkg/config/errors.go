package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig wraps any failure to parse environment variables into
	// the destination struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a config type cannot be served from
	// the cache after loading.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil destination is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
