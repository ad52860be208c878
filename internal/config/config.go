// Package config provides environment configuration for the API server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Model provider settings
	ModelProvider   string
	ModelID         string
	GoogleAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	MaxRetries      int
	RetryBaseWait   time.Duration

	// CORS
	CORSOrigins []string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from the environment, preloading a .env
// file when one is present.
func Load() *Config {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		// Server
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),

		// Model provider
		ModelProvider:   getEnv("MODEL_PROVIDER", "gemini"),
		ModelID:         getEnv("MODEL_ID", "gemini-1.5-flash"),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		MaxRetries:      getIntEnv("MODEL_MAX_RETRIES", 2),
		RetryBaseWait:   getDurationEnv("MODEL_RETRY_BASE_WAIT", 2*time.Second),

		// CORS
		CORSOrigins: getSliceEnv("CORS_ORIGINS", []string{"http://localhost:3000"}),

		// Rate limiting
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

// APIKey returns the credential for the selected model provider.
func (c *Config) APIKey() string {
	switch c.ModelProvider {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	default:
		return c.GoogleAPIKey
	}
}

// Validate checks that the configuration is usable. The API key for
// the selected provider is required at startup.
func (c *Config) Validate() error {
	switch c.ModelProvider {
	case "gemini", "openai", "anthropic":
	default:
		return fmt.Errorf("unknown model provider %q", c.ModelProvider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("API key for provider %q is not set", c.ModelProvider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
