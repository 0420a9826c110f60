package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "forkcast-dev-secret"

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Store selection
	StoreBackend string
	AutoMigrate  bool

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// MongoDB configuration
	MongoURL      string
	MongoDatabase string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Meal suggestions
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string

	// Image uploads
	S3BucketName    string
	AWSRegion       string
	S3PublicBaseURL string

	CORSAllowedOrigins []string
	LogLevel           string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	// .env files are a development convenience only
	if env != Production && env != CI {
		_ = godotenv.Load()
	}

	src := source{env: env, secretsDir: secretsDir()}
	cfg, err := src.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// source resolves configuration keys. Environment variables win; outside CI
// a Docker secret named after the lowercased key is consulted next.
type source struct {
	env        Environment
	secretsDir string
}

func (s source) lookup(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if s.env.UsesSecretsFiles() {
		return readSecretFrom(s.secretsDir, strings.ToLower(key))
	}
	return ""
}

func (s source) get(key, fallback string) string {
	if v := s.lookup(key); v != "" {
		return v
	}
	return fallback
}

func (s source) load() (*Config, error) {
	cfg := &Config{
		Environment:   s.env,
		ServerPort:    s.get("SERVER_PORT", "8080"),
		ServerHost:    s.get("SERVER_HOST", "0.0.0.0"),
		StoreBackend:  strings.ToLower(s.get("STORE_BACKEND", BackendMemory)),
		DBHost:        s.get("DB_HOST", "localhost"),
		DBPort:        s.get("DB_PORT", "5432"),
		DBUser:        s.get("DB_USER", "postgres"),
		DBPassword:    s.lookup("DB_PASSWORD"),
		DBName:        s.get("DB_NAME", "forkcast"),
		DBSSLMode:     s.get("DB_SSL_MODE", "disable"),
		SQLitePath:    s.get("SQLITE_PATH", "forkcast.db"),
		MongoURL:      s.get("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase: s.get("MONGO_DB", "forkcast"),
		RedisHost:     s.lookup("REDIS_HOST"),
		RedisPort:     s.get("REDIS_PORT", "6379"),
		RedisPassword: s.lookup("REDIS_PASSWORD"),
		RedisURL:      s.lookup("REDIS_URL"),
		JWTSecret:     s.lookup("JWT_SECRET"),
		LLMAPIKey:     s.lookup("LLM_API_KEY"),
		LLMAPIURL:     s.get("LLM_API_URL", "https://api.openai.com/v1/chat/completions"),
		LLMModel:      s.get("LLM_MODEL", "gpt-4o-mini"),
		S3BucketName:  s.lookup("S3_BUCKET_NAME"),
		AWSRegion:     s.get("AWS_REGION", "us-east-1"),
		LogLevel:      s.get("LOG_LEVEL", "info"),
	}

	if cfg.LLMAPIKey == "" {
		if path := os.Getenv("LLM_API_KEY_FILE"); path != "" {
			key, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read API key file: %w", err)
			}
			cfg.LLMAPIKey = strings.TrimSpace(string(key))
		}
	}

	if cfg.JWTSecret == "" && s.env != Production {
		cfg.JWTSecret = DefaultJWTSecret
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(s.get("REDIS_DB", "0")); err != nil {
		return nil, ValidationError{Field: "REDIS_DB", Message: "must be an integer"}
	}
	if cfg.JWTTTL, err = time.ParseDuration(s.get("JWT_TTL", "168h")); err != nil {
		return nil, ValidationError{Field: "JWT_TTL", Message: "must be a duration such as 168h"}
	}
	if cfg.AutoMigrate, err = strconv.ParseBool(s.get("AUTO_MIGRATE", "true")); err != nil {
		return nil, ValidationError{Field: "AUTO_MIGRATE", Message: "must be true or false"}
	}

	cfg.S3PublicBaseURL = strings.TrimRight(s.lookup("S3_PUBLIC_BASE_URL"), "/")
	if cfg.S3PublicBaseURL == "" && cfg.S3BucketName != "" {
		cfg.S3PublicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.S3BucketName)
	}

	origins := s.get("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// Address returns the listen address of the HTTP server.
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecretFrom reads a Docker secret from the secrets directory
func readSecretFrom(dir, name string) string {
	if data, err := os.ReadFile(filepath.Join(dir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
