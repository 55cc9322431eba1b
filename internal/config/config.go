package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mail     MailConfig
	SMS      SMSConfig
	Dispatch DispatchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	DeliveryLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

// MailConfig covers both email tiers. Local is the direct, unauthenticated
// submission tried first; Relay is the authenticated fallback and must be
// fully configured or the relay stays disabled.
type MailConfig struct {
	LocalHost   string
	LocalPort   int
	RelayHost   string
	RelayPort   int
	RelayUser   string
	RelayPass   string
	SenderEmail string
}

type SMSConfig struct {
	APIURL       string
	APIKey       string
	SenderNumber string
}

type DispatchConfig struct {
	Workers            int
	SendTimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			DeliveryLogPath:    getEnv("DELIVERY_LOG_PATH", "logs/delivery.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Mail: MailConfig{
			LocalHost:   getEnv("MAIL_LOCAL_HOST", "localhost"),
			LocalPort:   getEnvAsInt("MAIL_LOCAL_PORT", 25),
			RelayHost:   getEnv("SMTP_HOST", ""),
			RelayPort:   getEnvAsInt("SMTP_PORT", 0),
			RelayUser:   getEnv("SMTP_USER", ""),
			RelayPass:   getEnv("SMTP_PASS", ""),
			SenderEmail: getEnv("SMTP_FROM", ""),
		},
		SMS: SMSConfig{
			APIURL:       getEnv("SMS_API_URL", ""),
			APIKey:       getEnv("SMS_API_KEY", ""),
			SenderNumber: getEnv("SMS_SENDER_NUMBER", ""),
		},
		Dispatch: DispatchConfig{
			Workers:            getEnvAsInt("DISPATCH_WORKERS", 8),
			SendTimeoutSeconds: getEnvAsInt("DISPATCH_SEND_TIMEOUT_SECONDS", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
