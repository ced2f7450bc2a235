package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	// Storage
	StorageBackend string
	SaveDir        string
	SaveKey        string

	// Database (postgres backend)
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	// Game rules
	OneSecondPolicy  string
	GoldBombChance   float64
	GoldBombDuration time.Duration
	GameCacheSize    int
	GameIdleTTL      time.Duration
	SaveRetry        time.Duration

	// Discord front end
	DiscordToken               string
	DiscordAppID               string
	DiscordNotificationChannel string
	DiscordHealthPort          string
	DiscordForceCommandUpdate  bool
	APIURL                     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt(EnvPort, DefaultPort),
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
		StorageBackend:   strings.ToLower(getEnv(EnvStorageBackend, DefaultStorageBackend)),
		SaveDir:          getEnv(EnvSaveDir, DefaultSaveDir),
		SaveKey:          getEnv(EnvSaveKey, DefaultSaveKey),
		DBUser:           getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:       getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:           getEnv(EnvDBHost, DefaultDBHost),
		DBPort:           getEnv(EnvDBPort, DefaultDBPort),
		DBName:           getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:        getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		DBMaxConns:       getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxIdleTime:    getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime),
		DBMaxLifetime:    getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxLifetime),
		OneSecondPolicy:  getEnv(EnvOneSecondPolicy, DefaultOneSecondPolicy),
		GoldBombChance:   getEnvAsFloat(EnvGoldBombChance, DefaultGoldBombChance),
		GoldBombDuration: getEnvAsDuration(EnvGoldBombLength, DefaultGoldBombDuration),
		GameCacheSize:    getEnvAsInt(EnvGameCacheSize, DefaultGameCacheSize),
		GameIdleTTL:      getEnvAsDuration(EnvGameIdleTTL, DefaultGameIdleTTL),
		SaveRetry:        getEnvAsDuration(EnvSaveRetry, DefaultSaveRetry),
		DiscordToken:     getEnv(EnvDiscordToken, ""),
		DiscordAppID:     getEnv(EnvDiscordAppID, ""),

		DiscordNotificationChannel: getEnv(EnvDiscordNotificationChannel, ""),
		DiscordHealthPort:          getEnv(EnvDiscordHealthPort, DefaultDiscordHealthPort),
		DiscordForceCommandUpdate:  strings.EqualFold(getEnv(EnvDiscordForceCommandUpdate, ""), "true"),

		APIURL: getEnv(EnvAPIURL, DefaultAPIURL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Presence of command specific secrets is checked by ValidateEnv.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s value: %d", EnvPort, c.Port)
	}
	if !slices.Contains(StorageBackends, c.StorageBackend) {
		return fmt.Errorf("invalid %s value %q: expected one of %s", EnvStorageBackend, c.StorageBackend, strings.Join(StorageBackends, ", "))
	}
	if !slices.Contains(OneSecondPolicies, c.OneSecondPolicy) {
		return fmt.Errorf("invalid %s value %q: expected one of %s", EnvOneSecondPolicy, c.OneSecondPolicy, strings.Join(OneSecondPolicies, ", "))
	}
	if c.GoldBombChance < 0 || c.GoldBombChance > 1 {
		return fmt.Errorf("invalid %s value: %v must be within [0,1]", EnvGoldBombChance, c.GoldBombChance)
	}
	if c.GoldBombDuration <= 0 {
		return fmt.Errorf("invalid %s value: must be positive", EnvGoldBombLength)
	}
	if c.SaveKey == "" {
		return fmt.Errorf("%s must not be empty", EnvSaveKey)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration strings ("20s", "30m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}
