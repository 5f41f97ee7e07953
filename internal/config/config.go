package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort            string
	GinMode            string
	DbDriver           string
	SqlitePath         string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	TrustedProxies     []string
	CorsAllowedOrigins []string
	JWTSecret          string
	InviteBaseURL      string
	TranslationFolder  string
	LogFile            string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "release"),
		DbDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		SqlitePath:         getEnv("SQLITE_PATH", "workstream.db"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "workstream"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "workstream"),
		DbName:             getEnv("MYSQL_DATABASE", "workstream"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		InviteBaseURL:      strings.TrimRight(getEnv("INVITE_BASE_URL", "https://www.workstream.it"), "/"),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		LogFile:            getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// parseList splits a comma separated value, dropping blank entries.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
