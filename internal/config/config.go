package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// memory | leveldb | postgres
	StoreDriver string
	LevelDBPath string
	DatabaseURL string

	JWTIssuer         string
	JWTAccessSecret   string
	AccessTokenTTLMin int

	AdminUsername string
	AdminPassword string

	GeminiAPIKey string
	GeminiModel  string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// bounds one confirmation delivery, from dial to QUIT
	SMTPTimeoutSec int

	ShutdownTimeoutSec int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		StoreDriver: get("STORE_DRIVER", "leveldb"),
		LevelDBPath: get("LEVELDB_PATH", "data/store"),
		DatabaseURL: get("DATABASE_URL", ""),

		JWTIssuer:         get("JWT_ISSUER", "mido-store"),
		JWTAccessSecret:   get("JWT_ACCESS_SECRET", "dev-access-secret"),
		AccessTokenTTLMin: getInt("ACCESS_TOKEN_TTL_MIN", 60),

		AdminUsername: get("ADMIN_USERNAME", "mido admin"),
		AdminPassword: get("ADMIN_PASSWORD", "admin123"),

		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-2.5-flash"),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		SMTPFrom: get("SMTP_FROM", ""),

		SMTPTimeoutSec: getInt("SMTP_TIMEOUT_SEC", 10),

		ShutdownTimeoutSec: getInt("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
