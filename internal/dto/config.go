package dto

import (
	"encoding/base64"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                string
	DatabaseURL         string
	SQLitePath          string
	TokenSecret         string
	TokenTTL            time.Duration
	RequireVerification bool
	CodeTTL             time.Duration
	FirebaseKeyBase64   string
	StaticDir           string
}

func LoadConfig() Config {
	return Config{
		Port:                getEnv("PORT", "3000"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		SQLitePath:          getEnv("SQLITE_PATH", "voting.db"),
		TokenSecret:         getEnv("TOKEN_SECRET", "change-this-secret-in-production"),
		TokenTTL:            getDurationEnv("TOKEN_TTL", 2*time.Hour),
		RequireVerification: getBoolEnv("REQUIRE_VERIFICATION", false),
		CodeTTL:             getDurationEnv("CODE_TTL", 15*time.Minute),
		FirebaseKeyBase64:   os.Getenv("FIREBASE_KEY_BASE64"),
		StaticDir:           os.Getenv("STATIC_DIR"),
	}
}

func (c Config) DecodeFirebaseKey() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.FirebaseKeyBase64)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
