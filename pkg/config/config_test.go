package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %v, want %v", got, 42)
	}

	if got := getEnvInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt() default = %v, want %v", got, 7)
	}

	// Non-numeric and non-positive values fall back to the default
	os.Setenv("TEST_INT_BAD", "abc")
	defer os.Unsetenv("TEST_INT_BAD")
	if got := getEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("getEnvInt() bad value = %v, want %v", got, 7)
	}
}

func TestAutomodDefaults(t *testing.T) {
	os.Unsetenv("automodMaxMessages")
	os.Unsetenv("automodRateWindowSec")
	os.Unsetenv("automodMaxMentions")
	os.Unsetenv("automodWarnThreshold")
	os.Unsetenv("automodMinAccountAgeSec")

	resetForTesting()
	config, _ := Load()

	am := config.Automod
	if am.MaxMessages != 10 {
		t.Errorf("MaxMessages default = %v, want %v", am.MaxMessages, 10)
	}
	if am.RateWindow != 60*time.Second {
		t.Errorf("RateWindow default = %v, want %v", am.RateWindow, 60*time.Second)
	}
	if am.RateTimeout != 5*time.Minute {
		t.Errorf("RateTimeout default = %v, want %v", am.RateTimeout, 5*time.Minute)
	}
	if am.MaxMentions != 5 {
		t.Errorf("MaxMentions default = %v, want %v", am.MaxMentions, 5)
	}
	if am.MentionTimeout != 2*time.Minute {
		t.Errorf("MentionTimeout default = %v, want %v", am.MentionTimeout, 2*time.Minute)
	}
	if am.WarnThreshold != 3 {
		t.Errorf("WarnThreshold default = %v, want %v", am.WarnThreshold, 3)
	}
	if am.MinAccountAge != 7*24*time.Hour {
		t.Errorf("MinAccountAge default = %v, want %v", am.MinAccountAge, 7*24*time.Hour)
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestDefaultValues(t *testing.T) {
	os.Unsetenv("botToken")
	os.Unsetenv("policyBackend")
	os.Unsetenv("policyFile")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	if config.PolicyBackend != "json" {
		t.Errorf("PolicyBackend default = %v, want %v", config.PolicyBackend, "json")
	}

	if config.PolicyFile != "data/policies.json" {
		t.Errorf("PolicyFile default = %v, want %v", config.PolicyFile, "data/policies.json")
	}

	if config.UsesMongo() {
		t.Error("UsesMongo() should be false by default")
	}

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "SentinelBot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "SentinelBot")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}
}
