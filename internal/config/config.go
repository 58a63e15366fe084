package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string

	LogLevel  string
	LogFormat string

	// ColumnsFile points at the YAML list of workflow columns. Empty means
	// the built-in clinical-trial stages.
	ColumnsFile string

	DayWidth           float64
	MinBarWidth        float64
	ActivationDistance float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}

	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "trialboard"),
		DBPassword:         getEnv("DB_PASSWORD", "trialboard"),
		DBName:             getEnv("DB_NAME", "trialboard"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		CORSOrigins:        getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		ColumnsFile:        getEnv("COLUMNS_FILE", ""),
		DayWidth:           getEnvFloat("TIMELINE_DAY_WIDTH", 32),
		MinBarWidth:        getEnvFloat("TIMELINE_MIN_BAR_WIDTH", 8),
		ActivationDistance: getEnvFloat("DRAG_ACTIVATION_DISTANCE", 8),
	}
}

// DSN is the key/value connection string used by GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// MigrateURL is the URL form of the connection used by migrations.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid numeric setting", "key", key, "value", value)
		return defaultVal
	}
	return f
}

func getEnvList(key string, defaultVal []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
