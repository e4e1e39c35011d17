package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Biometrics BiometricsConfig
	Speech     SpeechConfig
	Demo       DemoConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type DatabaseConfig struct {
	// DSN defaults to a shared in-memory sqlite database: the account data
	// is mock data and is never persisted across restarts.
	DSN             string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxPingAttempts int
	PingInterval    time.Duration
}

type BiometricsConfig struct {
	EnabledByDefault bool
	HardwarePresent  bool
	Enrolled         bool
	GrantChallenge   bool
	ChallengeDelay   time.Duration
	PromptText       string
}

type SpeechConfig struct {
	DefaultLanguage    string
	SupportedLanguages []string
}

type DemoConfig struct {
	SeedHistory  bool
	HistoryCount int
	HistorySeed  uint64
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "pocketbank"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN", "file::memory:?cache=shared"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 1),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			MaxPingAttempts: getIntEnv("DB_MAX_PING_ATTEMPTS", 5),
			PingInterval:    getDurationEnv("DB_PING_INTERVAL", 200*time.Millisecond),
		},
		Biometrics: BiometricsConfig{
			EnabledByDefault: getBoolEnv("BIOMETRICS_ENABLED", false),
			HardwarePresent:  getBoolEnv("BIOMETRIC_HARDWARE_PRESENT", true),
			Enrolled:         getBoolEnv("BIOMETRIC_ENROLLED", true),
			GrantChallenge:   getBoolEnv("BIOMETRIC_GRANT_CHALLENGE", true),
			ChallengeDelay:   getDurationEnv("BIOMETRIC_CHALLENGE_DELAY", 300*time.Millisecond),
			PromptText:       getEnv("BIOMETRIC_PROMPT", "Login with Face ID / Fingerprint"),
		},
		Speech: SpeechConfig{
			DefaultLanguage:    getEnv("SPEECH_DEFAULT_LANGUAGE", "en-US"),
			SupportedLanguages: getStringSliceEnv("SPEECH_LANGUAGES", []string{"en-US", "hi-IN", "es-ES", "fr-FR", "de-DE"}),
		},
		Demo: DemoConfig{
			SeedHistory:  getBoolEnv("DEMO_SEED_HISTORY", true),
			HistoryCount: getIntEnv("DEMO_HISTORY_COUNT", 12),
			HistorySeed:  uint64(getIntEnv("DEMO_HISTORY_SEED", 0)),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
