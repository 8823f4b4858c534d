package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type InvalidationCfg struct {
	Enabled bool
	Brokers string
	Topic   string
	GroupID string
}

type Config struct {
	Addr             string
	LogLevel         string
	ProfileTablePath string
	ProfileCacheSize int
	RedisAddr        string
	CacheEnabled     bool
	CacheTTL         time.Duration
	CacheOpTimeout   time.Duration
	Invalidation     InvalidationCfg
}

func FromEnv() Config {
	return Config{
		Addr:             getenv("ADDR", ":8091"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		ProfileTablePath: getenv("PROFILE_TABLE_PATH", ""),
		ProfileCacheSize: getint("PROFILE_CACHE_SIZE", 4096),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		CacheEnabled:     getbool("CACHE_ENABLED", false),
		CacheTTL:         getduration("CACHE_TTL", 5*time.Minute),
		CacheOpTimeout:   getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),
		Invalidation: InvalidationCfg{
			Enabled: getbool("INVALIDATION_ENABLED", false),
			Brokers: getenv("KAFKA_BROKERS", "localhost:9092"),
			Topic:   getenv("KAFKA_TOPIC", "collection-updates"),
			GroupID: getenv("KAFKA_GROUP_ID", "renderconfig-invalidator"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
