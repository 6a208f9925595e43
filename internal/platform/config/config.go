// Package config builds service configuration from the environment so main
// stays lean. A local .env file is honored in development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RegistryCacheTTL bounds how long cached directive documents may be served
// without a registry read.
var RegistryCacheTTL = 5 * time.Minute

// RedisConfig captures cache connection settings. An empty URL disables the
// cache layer entirely.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig captures audit trail settings. Empty brokers disable the
// kafka publisher; verdicts then go to the in-memory sink only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Server captures everything cmd/server needs to wire the service.
// APICredentialHash is the bcrypt hash of the shared API credential; when
// set, the token issuance endpoint is mounted. The plaintext credential is
// never configured.
type Server struct {
	Addr              string
	JWTSigningKey     string
	JWTIssuer         string
	JWTAudience       string
	APICredentialHash string
	TokenTTL          time.Duration
	PostgresURL       string
	Redis             RedisConfig
	Kafka             KafkaConfig
	AuditBufferSize   int
}

// FromEnv builds a Server config from environment variables. A missing
// .env file is fine; set variables always win over file values.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Addr:              envOr("ADCHECK_ADDR", ":8080"),
		JWTSigningKey:     envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:         envOr("JWT_ISSUER", "adcheck"),
		JWTAudience:       envOr("JWT_AUDIENCE", "adcheck-api"),
		APICredentialHash: os.Getenv("API_CREDENTIAL_HASH"),
		TokenTTL:          envDuration("TOKEN_TTL", time.Hour),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envOr("KAFKA_TOPIC", "adcheck.verdicts"),
		},
		AuditBufferSize: envInt("AUDIT_BUFFER_SIZE", 1024),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func envInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return fallback
}
