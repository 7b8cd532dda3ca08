// Package config provides centralized default values for PullPane
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// CORS Configuration
	AllowedOrigins []string

	// Cache Configuration
	MaxSessions     int
	SessionTTL      time.Duration
	HTMLChunkTTL    time.Duration
	CleanupInterval time.Duration

	// Preview Websocket Configuration
	PreviewWriteTimeout time.Duration
	PreviewSendBuffer   int

	// Logging Configuration
	LogJSONFormat   bool
	LogLevel        string
	LogToConsole    bool
	LogDirectory    string
	LogToFile       bool

	// Static Assets
	PreviewDir string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// CORS Configuration
	AllowedOrigins = strings.Split(getEnvString("ALLOWED_ORIGINS",
		"http://localhost:3000,http://localhost:4321,http://127.0.0.1:3000,http://127.0.0.1:4321"), ",")

	// Cache Configuration
	MaxSessions = getEnvInt("MAX_SESSIONS", 5000)
	SessionTTL = time.Duration(getEnvInt("SESSION_TTL_HOURS", 4)) * time.Hour
	HTMLChunkTTL = time.Duration(getEnvInt("HTML_CHUNK_TTL_HOURS", 1)) * time.Hour
	CleanupInterval = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute

	// Preview Websocket Configuration
	PreviewWriteTimeout = getEnvDuration("PREVIEW_WRITE_TIMEOUT", 10*time.Second)
	PreviewSendBuffer = getEnvInt("PREVIEW_SEND_BUFFER", 16)

	// Logging Configuration
	LogJSONFormat = getEnvBool("LOG_JSON_FORMAT", false)
	LogLevel = getEnvString("LOG_LEVEL", "info")
	LogToConsole = getEnvBool("LOG_TO_CONSOLE", true)
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")

	// Static Assets
	PreviewDir = getEnvString("PREVIEW_DIR", "web/preview")
}
