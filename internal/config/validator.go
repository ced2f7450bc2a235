package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Required environment variables per command
var (
	ServerRequiredEnvVars   = []string{EnvAPIKey}
	DatabaseRequiredEnvVars = []string{EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName}
	DiscordRequiredEnvVars  = []string{EnvAPIKey, EnvDiscordToken, EnvDiscordAppID, EnvAPIURL}
)

// ValidateEnv checks the schema version and that every listed variable is set
func ValidateEnv(required ...string) error {
	// Check schema version first
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(required ...string) ([]string, error) {
	if err := ValidateEnv(required...); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	return warnings, nil
}
