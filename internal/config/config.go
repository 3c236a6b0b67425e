package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Ollama backend
	OllamaBaseURL string
	OllamaDebug   bool

	// Chat rate limiting (per IP)
	ChatRateLimit  int
	ChatRateWindow time.Duration

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("ENV", "development"),
		OllamaBaseURL:  getEnvOrDefault("OLLAMA_BASE_URL", ""),
		OllamaDebug:    getEnvAsBoolOrDefault("OLLAMA_DEBUG", false),
		ChatRateLimit:  getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 30),
		ChatRateWindow: time.Duration(getEnvAsIntOrDefault("CHAT_RATE_WINDOW_SECONDS", 60)) * time.Second,
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
