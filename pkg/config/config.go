// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string
	DevUserID  string

	// Policy persistence
	PolicyBackend string // "json" o "mongo"
	PolicyFile    string

	// MongoDB
	MongoDBURL string
	DBName     string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string

	// Automod thresholds
	Automod AutomodConfig
}

// AutomodConfig holds the tunable thresholds of the decision engine.
// The defaults are the documented engine behavior; env vars exist so
// operators can tune a guild fleet without a rebuild.
type AutomodConfig struct {
	MaxMessages    int           // mensajes permitidos por ventana
	RateWindow     time.Duration // ventana deslizante
	RateTimeout    time.Duration // castigo por spam de mensajes
	MaxMentions    int           // menciones permitidas por mensaje
	MentionTimeout time.Duration // castigo por spam de menciones
	WarnThreshold  int           // advertencias antes del ban automático
	MinAccountAge  time.Duration // edad mínima de cuenta al unirse
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:   getEnv("botToken", ""),
		DevGuildID: getEnv("devGuildId", ""),
		DevUserID:  getEnv("devUserId", ""),

		// Policy persistence
		PolicyBackend: getEnv("policyBackend", "json"),
		PolicyFile:    getEnv("policyFile", "data/policies.json"),

		// MongoDB
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "SentinelBot"),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", "localhost"),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),

		Automod: AutomodConfig{
			MaxMessages:    getEnvInt("automodMaxMessages", 10),
			RateWindow:     getEnvSeconds("automodRateWindowSec", 60),
			RateTimeout:    getEnvSeconds("automodRateTimeoutSec", 300),
			MaxMentions:    getEnvInt("automodMaxMentions", 5),
			MentionTimeout: getEnvSeconds("automodMentionTimeoutSec", 120),
			WarnThreshold:  getEnvInt("automodWarnThreshold", 3),
			MinAccountAge:  getEnvSeconds("automodMinAccountAgeSec", int(7*24*time.Hour/time.Second)),
		},
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvSeconds gets a duration (in seconds) environment variable
func getEnvSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Second
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// UsesMongo returns true if the policy store is backed by MongoDB
func (c *Config) UsesMongo() bool {
	return c.PolicyBackend == "mongo"
}
