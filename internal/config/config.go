package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

const AppName = "gestion-locative"

// Config holds everything the server reads from the environment.
type Config struct {
	AppPort        string
	DBUrl          string
	JWTSecret      []byte
	AllowedOrigins []string
	UploadDir      string

	SendGridAPIKey   string
	SendGridFrom     string
	SendGridFromName string
	SendGridSandbox  bool

	NotifierQueueSize int
}

// LoadConfig reads .env when present, then the environment. Missing
// critical values are fatal; the process must not come up half
// configured.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found; using environment variables")
	}

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DBUrl:             mustEnv("DATABASE_URL"),
		JWTSecret:         []byte(mustEnv("JWT_SECRET")),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:      getEnv("SENDGRID_FROM_EMAIL", "no-reply@gestion-locative.local"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Gestion Locative"),
		SendGridSandbox:   getEnvBool("SENDGRID_SANDBOX_MODE", true),
		NotifierQueueSize: getEnvInt("NOTIFIER_QUEUE_SIZE", 64),
	}

	if cfg.SendGridAPIKey == "" {
		utils.Logger.Warn("SENDGRID_API_KEY not set; email notifications are disabled")
	}
	return cfg
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s is required", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Logger.Warnf("Invalid boolean for %s: %q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Logger.Warnf("Invalid integer for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
