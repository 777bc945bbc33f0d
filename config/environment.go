package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Environment struct {
	IsDevelopment bool
	Port          string

	StorageBackend string
	StoragePath    string
	DBURL          string
	CacheSize      int

	GeminiAPIKey string
	GeminiModel  string
	CardLimit    int

	JWTSecretKey string
	JWTIssuer    string
	JWTAudience  string

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadEnv reads .env files (outside of production) and then the process
// environment.
func LoadEnv() (Environment, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: .env file could not be loaded: %v", err)
		}
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_BACKEND", BackendFile)
	v.SetDefault("STORAGE_PATH", "./data")
	v.SetDefault("CACHE_SIZE", 128)
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("CARD_LIMIT", 200)
	v.SetDefault("JWT_ISSUER", "nodebook-local")
	v.SetDefault("JWT_AUDIENCE", "nodebook-app")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "auto")
	return v
}

// FromViper builds an Environment from an already configured viper instance.
func FromViper(v *viper.Viper) (Environment, error) {
	env := Environment{
		IsDevelopment:  strings.EqualFold(v.GetString("APP_ENV"), "development"),
		Port:           v.GetString("PORT"),
		StorageBackend: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		StoragePath:    v.GetString("STORAGE_PATH"),
		DBURL:          v.GetString("DB_URL"),
		CacheSize:      v.GetInt("CACHE_SIZE"),
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		GeminiModel:    v.GetString("GEMINI_MODEL"),
		CardLimit:      v.GetInt("CARD_LIMIT"),
		JWTSecretKey:   v.GetString("JWT_SECRET_KEY"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		JWTAudience:    v.GetString("JWT_AUDIENCE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
	}
	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			env.AllowedOrigins = append(env.AllowedOrigins, origin)
		}
	}

	switch env.StorageBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	case BackendPostgres:
		if env.DBURL == "" {
			return env, fmt.Errorf("config: DB_URL is required for the %s backend", BackendPostgres)
		}
	default:
		return env, fmt.Errorf("config: unknown STORAGE_BACKEND %q", env.StorageBackend)
	}
	if env.CardLimit < 0 {
		return env, fmt.Errorf("config: CARD_LIMIT must not be negative, got %d", env.CardLimit)
	}
	return env, nil
}
