// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag parsing. Parsed values are cached
// per Go type so repeated Load calls are cheap and consistent across
// goroutines.
//
// # Usage
//
//	type Config struct {
//		URL  string        `env:"MONGODB_URL,required"`
//		Wait time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Use WithPrefix to read the same struct under a different namespace and
// WithReload (or Reset in tests) to bypass the cache.
package config
