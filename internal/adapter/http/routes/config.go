package routes

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hvac_service/internal/infrastructure/cache"
	"hvac_service/internal/infrastructure/messaging"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	defaultPort = "8080"
)

// Config is read once at startup. Unset keys fall back to local-friendly defaults.
type Config struct {
	Port           string
	StorageDriver  string
	DatabaseDSN    string
	RunMigrations  bool
	RedisAddr      string
	LockTTL        time.Duration
	RabbitMQURL    string
	EventsExchange string
}

func LoadConfig() Config {
	return Config{
		Port:           getenvDefault("PORT", defaultPort),
		StorageDriver:  strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		RunMigrations:  getenvBool("RUN_MIGRATIONS", false),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		LockTTL:        getenvDuration("APPROVAL_LOCK_TTL", cache.DefaultLockTTL),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsExchange: getenvDefault("EVENTS_EXCHANGE", messaging.DefaultExchange),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
