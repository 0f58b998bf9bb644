package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                      string
	VerifyToken               string
	WhatsAppToken             string
	PhoneNumberID             string
	WhatsAppBusinessAccountID string
	AppID                     string
	AppSecret                 string
	GraphBaseURL              string

	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	LogLevel            string
	SessionTTL          time.Duration
	GraphTimeout        time.Duration
	BreakerTimeout      time.Duration
	SubmitRatePerMinute int

	// PolicyFile points at a TOML file overriding the template rules.
	PolicyFile string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:                      getEnv("PORT", "8080"),
		VerifyToken:               getEnv("VERIFY_TOKEN", ""),
		WhatsAppToken:             getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:             getEnv("PHONE_NUMBER_ID", ""),
		WhatsAppBusinessAccountID: getEnv("WABA_ID", ""),
		AppID:                     getEnv("META_APP_ID", ""),
		AppSecret:                 getEnv("META_APP_SECRET", ""),
		GraphBaseURL:              getEnv("GRAPH_BASE_URL", "https://graph.facebook.com/v19.0"),
		DBPath:                    getEnv("DB_PATH", "./templates.db"),
		DBHost:                    getEnv("DB_HOST", ""),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", ""),
		DBName:                    getEnv("DB_NAME", "whatsapp_studio"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBSSLMode:                 getEnv("DB_SSLMODE", "disable"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		SessionTTL:                getEnvAsDuration("WIZARD_SESSION_TTL", 30*time.Minute),
		GraphTimeout:              getEnvAsDuration("GRAPH_TIMEOUT", 15*time.Second),
		BreakerTimeout:            getEnvAsDuration("GRAPH_BREAKER_TIMEOUT", 30*time.Second),
		SubmitRatePerMinute:       getEnvAsInt("SUBMIT_RATE_PER_MINUTE", 20),
		PolicyFile:                getEnv("TEMPLATE_POLICY_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("invalid duration for %s; using default %s", key, fallback)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid integer for %s; using default %d", key, fallback)
	}
	return fallback
}
