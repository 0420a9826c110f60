package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message}.Error())
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	switch cfg.StoreBackend {
	case BackendMemory:
		if cfg.Environment == Production {
			add("STORE_BACKEND", "memory backend is not allowed in production")
		}
	case BackendPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				add(field, "is required for the postgres backend")
			}
		}
		if cfg.DBPassword == "" && (cfg.Environment == Production || cfg.Environment == CI) {
			add("DB_PASSWORD", "is required for the postgres backend")
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for the sqlite backend")
		}
	case BackendMongo:
		if cfg.MongoURL == "" {
			add("MONGO_URL", "is required for the mongo backend")
		}
	default:
		add("STORE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.StoreBackend))
	}

	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required")
	} else if cfg.Environment == Production && cfg.JWTSecret == DefaultJWTSecret {
		add("JWT_SECRET", "must not use the development default in production")
	}
	if cfg.JWTTTL <= 0 {
		add("JWT_TTL", "must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
