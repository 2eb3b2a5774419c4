package config

import "time"

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Port the HTTP server listens on.
	Port string

	// APIKey, when non-empty, is the single shared key required in the
	// X-API-Key header for all /api/v1 routes.
	APIKey string

	// ReadTimeout and WriteTimeout bound request processing.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadServerConfigFromEnv builds a ServerConfig from environment variables.
func LoadServerConfigFromEnv() *ServerConfig {
	return &ServerConfig{
		Port:         getEnvOrDefault("HTTP_PORT", "8080"),
		APIKey:       getEnvOrDefault("API_KEY", ""),
		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
	}
}

// RedisConfig configures the optional Redis cache used for leaderboard
// responses. An empty Addr disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// LeaderboardTTL is how long cached leaderboard responses stay fresh.
	LeaderboardTTL time.Duration
}

// LoadRedisConfigFromEnv builds a RedisConfig from environment variables.
func LoadRedisConfigFromEnv() *RedisConfig {
	return &RedisConfig{
		Addr:           getEnvOrDefault("REDIS_ADDR", ""),
		Password:       getEnvOrDefault("REDIS_PASSWORD", ""),
		DB:             getEnvInt("REDIS_DB", 0),
		LeaderboardTTL: getEnvDuration("REDIS_LEADERBOARD_TTL", 60*time.Second),
	}
}
