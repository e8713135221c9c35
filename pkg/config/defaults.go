// Package config provides centralized default values for LuxeGate
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Persisted store. StoreDatabaseURL switches the backend to a remote
	// libsql database; otherwise StorePath names the local sqlite file.
	StorePath        string
	StoreDatabaseURL string
	StoreAuthToken   string

	// Secrets. AdminPassword may be a bcrypt hash or plaintext.
	AdminPassword string
	JWTSecret     string

	// Token lifetimes
	AdminTokenTTL  time.Duration
	UnlockTokenTTL time.Duration

	// Media
	MediaPath string

	// Operator notification email (disabled when ResendAPIKey is unset)
	ResendAPIKey        string
	NotifyEmailTo       string
	NotifyEmailFrom     string
	NotifyEmailFromName string

	// Observability
	LogDirectory       string
	SlowQueryThreshold time.Duration

	// Websocket lead stream
	LeadStreamSendBuffer int
)

func init() {
	// .env is optional, real environment variables always win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration overrides from .env")
	}

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Persisted store
	StorePath = getEnvString("STORE_PATH", "luxegate.db")
	StoreDatabaseURL = getEnvString("STORE_DATABASE_URL", "")
	StoreAuthToken = getEnvString("STORE_AUTH_TOKEN", "")

	// Secrets. An empty JWT secret gets a generated one at startup, so
	// tokens from before a restart stop verifying unless JWT_SECRET is set.
	AdminPassword = getEnvString("ADMIN_PASSWORD", "admin")
	JWTSecret = getEnvString("JWT_SECRET", "")

	// Token lifetimes
	AdminTokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", 24*time.Hour)
	UnlockTokenTTL = getEnvDuration("UNLOCK_TOKEN_TTL", 30*24*time.Hour)

	// Media
	MediaPath = getEnvString("MEDIA_PATH", "media")

	// Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	NotifyEmailTo = getEnvString("NOTIFY_EMAIL_TO", "")
	NotifyEmailFrom = getEnvString("NOTIFY_EMAIL_FROM", "noreply@luxeestates.com")
	NotifyEmailFromName = getEnvString("NOTIFY_EMAIL_FROM_NAME", "LuxeEstates")

	// Observability
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 100*time.Millisecond)

	// Websocket lead stream
	LeadStreamSendBuffer = getEnvInt("LEAD_STREAM_SEND_BUFFER", 16)
}
