// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 and adds
// two things on top: per-type caching, so each configuration struct is parsed
// at most once per process, and strict numeric handling, routing sized
// integer and float fields through pkg/strconvx so a value like "8080x" or an
// out-of-range port is a load error instead of a silent surprise. Sized
// integer fields also accept the 0x/0o/0b prefixes.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type DaemonConfig struct {
//	    Name    string  `env:"DAEMON_NAME" envDefault:"audiokitd"`
//	    Rate    int32   `env:"DAEMON_RATE" envDefault:"48000"`
//	    Volume  float32 `env:"DAEMON_VOLUME" envDefault:"1.0"`
//	    Socket  string  `env:"DAEMON_SOCKET,required"`
//	}
//
// Optionally load .env files, then populate and cache the struct:
//
//	if err := config.LoadEnv(); err != nil { ... }
//
//	var cfg DaemonConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// Subsequent Load calls for the same type are served from the cache.
//
// # Error handling
//
// Sentinel errors compare with errors.Is: ErrParsingConfig wraps any parse
// failure, ErrNilPointer flags a nil destination, ErrConfigNotLoaded reports
// a cache miss that should not happen in practice.
//
// # Testing helpers
//
// ResetCache clears all cached configurations; ForceReloadConfig reparses a
// single type after the process environment changed. Both exist for tests.
package config
