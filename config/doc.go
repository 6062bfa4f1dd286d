// Package config loads funkit configuration from a config.yml, an optional
// .env file and the process environment.
//
// Files are searched in the usual locations relative to the working
// directory (./cmd/<name>/config.yml, ./config/config.yml, ./config.yml).
// Environment variables override file values: LOGGING_LEVEL sets
// logging.level, OBSERVABILITY_TRACING sets observability.tracing.
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("funkit", &cfg); err != nil {
//		return err
//	}
//	cfg.ApplyDefaults()
package config
