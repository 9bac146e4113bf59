package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Mongo  Mongo
	Redis  Redis
	Auth   Auth
}

type Server struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type Mongo struct {
	URI      string
	Database string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	// AdminSignupCode elevates a registration to the admin role when the
	// submitted code matches. Configured server-side so it can be rotated.
	AdminSignupCode string
	SessionTTL      time.Duration
	GuestSessionTTL time.Duration
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: Server{
			Port:            getEnv("HTTP_PORT", "8080"),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mongo: Mongo{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB_NAME", "digimarket"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Auth: Auth{
			AdminSignupCode: getEnv("ADMIN_SIGNUP_CODE", ""),
			SessionTTL:      getEnvDuration("SESSION_TTL", 7*24*time.Hour),
			GuestSessionTTL: getEnvDuration("GUEST_SESSION_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
