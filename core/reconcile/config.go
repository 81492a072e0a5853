package reconcile

import "time"

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the reconciliation cache settings.
type Config struct {
	// Backend selects where entries live: memory or redis.
	Backend string `mapstructure:"backend" default:"memory"`
	// TTLSeconds is the lifetime of a cached snapshot.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
	// RedisAddr is the redis endpoint used by the redis backend.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword authenticates against redis.
	RedisPassword string `mapstructure:"redis_password"`
	// RedisDB is the logical redis database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// KeyPrefix namespaces redis keys.
	KeyPrefix string `mapstructure:"key_prefix" default:"ledger:cache:"`
}

// TTL returns the configured lifetime, five minutes when unset.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
