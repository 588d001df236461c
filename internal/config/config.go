package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreMemory  = "memory"
	StoreMongoDB = "mongodb"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	BookingStore    string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string
	CORSOrigins     []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		BookingStore:    strings.ToLower(getEnvWithDefault("BOOKING_STORE", StoreMemory)),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		MongoDBDatabase: getEnvWithDefault("MONGODB_DATABASE", "eventbook"),
		CORSOrigins:     splitList(getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000")),
	}

	switch cfg.BookingStore {
	case StoreMemory:
	case StoreMongoDB:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required when BOOKING_STORE=mongodb")
		}
	default:
		return nil, fmt.Errorf("unsupported BOOKING_STORE %q (expected memory or mongodb)", cfg.BookingStore)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) UsesMongoDB() bool {
	return c.BookingStore == StoreMongoDB
}
