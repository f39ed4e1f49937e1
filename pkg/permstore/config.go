package permstore

import (
	"context"
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Config describes the Redis connection and storage behavior of a [Store].
// Fields can be populated from environment variables via LoadConfig.
type Config struct {
	ConnectionURL  string        `env:"PERMSTORE_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the Redis URL, e.g. "redis://:password@localhost:6379/0".
	KeyPrefix      string        `env:"PERMSTORE_KEY_PREFIX" envDefault:"permtree"`                // KeyPrefix namespaces the stored keys, e.g. "permtree:alice".
	TTL            time.Duration `env:"PERMSTORE_TTL" envDefault:"0"`                              // TTL expires stored trees after the given duration; zero keeps them forever.
	RetryAttempts  int           `env:"PERMSTORE_RETRY_ATTEMPTS" envDefault:"3"`                   // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval  time.Duration `env:"PERMSTORE_RETRY_INTERVAL" envDefault:"5s"`                  // RetryInterval is the wait between connection attempts.
	ConnectTimeout time.Duration `env:"PERMSTORE_CONNECT_TIMEOUT" envDefault:"30s"`                // ConnectTimeout bounds the total time spent connecting.
}

// LoadConfig populates a Config from the environment. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToParseConfig, err)
	}
	return cfg, nil
}

// Connect establishes a Redis connection using the given configuration,
// retrying up to cfg.RetryAttempts times with cfg.RetryInterval between
// attempts, bounded overall by cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
