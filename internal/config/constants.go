package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvStorageBackend  = "STORAGE_BACKEND"
	EnvSaveDir         = "SAVE_DIR"
	EnvSaveKey         = "SAVE_KEY"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBSSLMode       = "DB_SSLMODE"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvDBMaxIdleTime   = "DB_MAX_IDLE_TIME"
	EnvDBMaxLifetime   = "DB_MAX_LIFETIME"
	EnvOneSecondPolicy = "ONE_SECOND_POLICY"
	EnvGoldBombChance  = "GOLD_BOMB_CHANCE"
	EnvGoldBombLength  = "GOLD_BOMB_DURATION"
	EnvGameCacheSize   = "GAME_CACHE_SIZE"
	EnvGameIdleTTL     = "GAME_IDLE_TTL"
	EnvSaveRetry       = "SAVE_RETRY_INTERVAL"
	EnvDiscordToken    = "DISCORD_TOKEN"
	EnvDiscordAppID    = "DISCORD_APP_ID"
	EnvAPIURL          = "API_URL"

	EnvDiscordNotificationChannel = "DISCORD_NOTIFICATION_CHANNEL_ID"
	EnvDiscordHealthPort          = "DISCORD_HEALTH_PORT"
	EnvDiscordForceCommandUpdate  = "DISCORD_FORCE_COMMAND_UPDATE"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "simple-ig"
	DefaultVersion           = "dev"
	DefaultStorageBackend    = "file"
	DefaultSaveDir           = "saves"
	DefaultSaveKey           = "simpleIGSave"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "simpleig"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 10
	DefaultDBMaxIdleTime     = 5 * time.Minute
	DefaultDBMaxLifetime     = time.Hour
	DefaultOneSecondPolicy   = "immediate"
	DefaultGoldBombChance    = 0.02
	DefaultGoldBombDuration  = 20 * time.Second
	DefaultGameCacheSize     = 1024
	DefaultGameIdleTTL       = 30 * time.Minute
	DefaultSaveRetry         = 30 * time.Second
	DefaultAPIURL            = "http://localhost:8080"
	DefaultDiscordHealthPort = "8082"
)

// Accepted values
var (
	StorageBackends   = []string{"file", "memory", "postgres"}
	OneSecondPolicies = []string{"immediate", "next_prestige"}
)

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
