// Package config loads the application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // host IP for the server
	RESTPort int    // port for the REST API
	GinMode  string // mode for the Gin framework (release, debug, test)

	DBHost     string // hostname or IP address of MongoDB
	DBPort     int    // port of MongoDB
	DBUser     string // MongoDB username
	DBPassword string // MongoDB password
	DBName     string // MongoDB database name

	RedisHost     string // hostname or IP address of Redis
	RedisPort     int    // port of Redis
	RedisPassword string // Redis password, empty for none

	JWTSecret string // secret key for JWT signing
	JWTIssuer string // issuer claim for JWTs

	OperatorKeyHash string // bcrypt hash of the operator key

	MaxMazeDimension int // largest accepted maze width or height
	CacheTTLMinutes  int // TTL for cached mazes and traces
}

// Envs holds the configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration. It loads
// environment variables from a .env file when one is present.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:   mustGetEnv("HOST_IP"),
		RESTPort: mustGetEnvAsInt("REST_PORT"),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),

		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnvAsInt("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASS"),
		DBName:     mustGetEnv("DB_NAME"),

		RedisHost:     mustGetEnv("REDIS_HOST"),
		RedisPort:     mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),

		JWTSecret: mustGetEnv("JWT_SECRET"),
		JWTIssuer: mustGetEnv("JWT_ISSUER"),

		OperatorKeyHash: mustGetEnv("OPERATOR_KEY_HASH"),

		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 256),
		CacheTTLMinutes:  getEnvAsIntWithDefault("CACHE_TTL_MINUTES", 24*60),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal
// error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an
// integer or logs a fatal error if not set or not parseable.
func mustGetEnvAsInt(key string) int {
	value, err := strconv.Atoi(mustGetEnv(key))
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or
// returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as
// an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return parsed
}
