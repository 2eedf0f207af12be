package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Brevo    BrevoConfig
	Storage  StorageConfig
	Esewa    EsewaConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type AuthConfig struct {
	JWTSecret   string
	AdminEmails []string
}

type BrevoConfig struct {
	BrevoBaseUrl     string
	BrevoAPIKey      string
	BrevoSenderName  string
	BrevoSenderEmail string
	BrevoAdminEmail  string
}

type StorageConfig struct {
	StorageBaseUrl    string
	StorageBucket     string
	StorageServiceKey string
}

type EsewaConfig struct {
	EsewaMerchantCode string
	EsewaSecretKey    string
	EsewaPaymentUrl   string
	SuccessUrl        string
	FailureUrl        string
	Enabled           bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Nepolian Store API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "nepolian_store"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("AUTH_JWT_SECRET", ""),
			AdminEmails: splitList(getEnv("AUTH_ADMIN_EMAILS", "kiranadhikari.htd@gmail.com,spandanbhattarai79@gmail.com")),
		},
		Brevo: BrevoConfig{
			BrevoBaseUrl:     getEnv("BREVO_BASE_URL", "https://api.brevo.com"),
			BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
			BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "Nepolian Hair and Beauty Academy"),
			BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", "nepolianhairandbeautyacademy@gmail.com"),
			BrevoAdminEmail:  getEnv("BREVO_ADMIN_EMAIL", "kiranadhikari.htd@gmail.com"),
		},
		Storage: StorageConfig{
			StorageBaseUrl:    getEnv("STORAGE_BASE_URL", ""),
			StorageBucket:     getEnv("STORAGE_BUCKET", "products"),
			StorageServiceKey: getEnv("STORAGE_SERVICE_KEY", ""),
		},
		Esewa: EsewaConfig{
			EsewaMerchantCode: getEnv("ESEWA_MERCHANT_CODE", "EPAYTEST"),
			EsewaSecretKey:    getEnv("ESEWA_SECRET_KEY", ""),
			EsewaPaymentUrl:   getEnv("ESEWA_PAYMENT_URL", "https://rc-epay.esewa.com.np/api/epay/main/v2/form"),
			SuccessUrl:        getEnv("ESEWA_SUCCESS_URL", ""),
			FailureUrl:        getEnv("ESEWA_FAILURE_URL", ""),
			Enabled:           getEnv("ESEWA_ENABLED", "false") == "true",
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("missing auth jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if len(cfg.Auth.AdminEmails) == 0 {
		return nil, errors.New("missing admin emails")
	}

	if cfg.Esewa.Enabled && cfg.Esewa.EsewaSecretKey == "" {
		return nil, errors.New("missing esewa secret key")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
