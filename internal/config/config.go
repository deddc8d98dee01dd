package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
	StorageDriverBolt     = "bolt"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Driver     string // "postgres", "memory" or "bolt"
	Connection string
	BoltPath   string
}

type EventsConfig struct {
	NatsURL    string // empty disables the NATS sink
	NatsStream string
	Topic      string // in-process activity topic
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("STORAGE_DRIVER", StorageDriverPostgres),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			BoltPath:   getEnv("BOLT_PATH", "data/annotations.db"),
		},
		Events: EventsConfig{
			NatsURL:    getEnv("NATS_URL", ""),
			NatsStream: getEnv("NATS_STREAM", "ANNOTATION_EVENTS"),
			Topic:      getEnv("EVENTS_TOPIC", "annotation.activity"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "annotation-notes-backend"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
