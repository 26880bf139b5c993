package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	StoreDriver     string
	DefaultTimezone string
	LogLevel        string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// Current LoadConfig 最後一次載入的設定
var Current *Config

// LoadConfig 讀取環境變數；若目錄下有 .env 會先載入 (已存在的環境變數優先)
func LoadConfig() *Config {
	_ = godotenv.Load()

	Current = &Config{
		Server:   GetServerConfig(),
		App:      GetAppConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}

	return Current
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Enabled:  true,
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
		CacheTTL: time.Minute,
	}

	return &Config{
		Server: ServerConfig{Port: "5000"},
		App: AppConfig{
			StoreDriver:     StoreDriverMemory,
			DefaultTimezone: "America/New_York",
			LogLevel:        "debug",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("SERVER_PORT", "5000"),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		StoreDriver:     getEnv("STORE_DRIVER", StoreDriverPostgres),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "America/New_York"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	enabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "true"))
	if err != nil {
		panic(err)
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Enabled:  enabled,
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
		CacheTTL: ttl,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
