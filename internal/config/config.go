package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the keyword/value connection string used by GORM.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the URL form of the connection string used by migrate.
func (c DatabaseConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// KafkaConfig holds Kafka broker and consumer-group settings.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// JWTConfig holds token signing settings for the admin session.
type JWTConfig struct {
	Secret    string
	AccessTTL time.Duration
}

// AdminConfig holds the dashboard login credential. The password is stored
// as a bcrypt hash, never in the clear.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// WhatsAppConfig holds the operator number that receives new-booking alerts.
type WhatsAppConfig struct {
	OperatorNumber string
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port     string
	AppEnv   string
	DB       DatabaseConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Admin    AdminConfig
	WhatsApp WhatsAppConfig
}

// Load reads configuration from BOOKING_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "kunci_cimahi")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "kunci-cimahi.")
	v.SetDefault("JWT_ACCESS_TTL", "12h")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("WHATSAPP_OPERATOR_NUMBER", "")

	if v.GetString("JWT_SECRET") == "" {
		return nil, fmt.Errorf("BOOKING_JWT_SECRET is required")
	}
	if v.GetString("ADMIN_PASSWORD_HASH") == "" {
		return nil, fmt.Errorf("BOOKING_ADMIN_PASSWORD_HASH is required")
	}

	accessTTL, err := time.ParseDuration(v.GetString("JWT_ACCESS_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_JWT_ACCESS_TTL: %w", err)
	}

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:   port,
		AppEnv: v.GetString("APP_ENV"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Brokers:     strings.Split(v.GetString("KAFKA_BROKERS"), ","),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			AccessTTL: accessTTL,
		},
		Admin: AdminConfig{
			Username:     v.GetString("ADMIN_USERNAME"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		},
		WhatsApp: WhatsAppConfig{
			OperatorNumber: v.GetString("WHATSAPP_OPERATOR_NUMBER"),
		},
	}, nil
}
