package mongeasy

import (
	"github.com/dmitrymomot/mongeasy/pkg/config"
	"github.com/dmitrymomot/mongeasy/pkg/mongo"
	"github.com/dmitrymomot/mongeasy/pkg/password"
)

// Config is the environment-driven configuration for a Mongeasy instance.
type Config struct {
	// Mongo holds the connection settings (MONGODB_* variables).
	Mongo mongo.Config

	Database   string `env:"MONGEASY_DATABASE"`                    // Database name. Empty means the one in the connection URL.
	Collection string `env:"MONGEASY_COLLECTION"`                  // Default collection used when a call passes "".
	BcryptCost int    `env:"MONGEASY_BCRYPT_COST" envDefault:"10"` // Cost factor for Helpers.Hash.
}

// DefaultConfig returns a Config for url with collection as the default collection.
func DefaultConfig(url, collection string) Config {
	return Config{
		Mongo:      mongo.DefaultConfig(url),
		Collection: collection,
		BcryptCost: password.DefaultCost,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
