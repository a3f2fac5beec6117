package mongo

import "time"

// Config represents the configuration for the database connection.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // ConnectionURL is the URL of the database.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is the maximum time that a connection can remain idle in the pool.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // RetryWrites specifies whether to retry write operations.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // RetryReads specifies whether to retry read operations.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the pause between connection attempts.

	// Legacy connection flags. Modern drivers always parse URLs with the new
	// parser and use the unified topology, so these are accepted and ignored.
	UseNewURLParser    bool `env:"MONGODB_USE_NEW_URL_PARSER" envDefault:"true"`
	UseUnifiedTopology bool `env:"MONGODB_USE_UNIFIED_TOPOLOGY" envDefault:"true"`
}

// DefaultConfig returns a Config for url with the same defaults the env tags declare.
func DefaultConfig(url string) Config {
	return Config{
		ConnectionURL:      url,
		ConnectTimeout:     10 * time.Second,
		MaxPoolSize:        100,
		MinPoolSize:        1,
		MaxConnIdleTime:    300 * time.Second,
		RetryWrites:        true,
		RetryReads:         true,
		RetryAttempts:      3,
		RetryInterval:      5 * time.Second,
		UseNewURLParser:    true,
		UseUnifiedTopology: true,
	}
}
