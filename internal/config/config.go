package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	DevMode       bool   // Development mode: enables the local DB fallback
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	AdminEmail    string // Email of the seeded administrator
	AdminName     string // Name of the seeded administrator
	AdminPassword string // Password of the seeded administrator
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       os.Getenv("APP_PORT"),           // Application port
		DBUser:        os.Getenv("DB_USER"),            // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),        // Database password
		DBHost:        os.Getenv("DB_HOST"),            // Database host
		DBPort:        os.Getenv("DB_PORT"),            // Database port
		DBName:        os.Getenv("DB_NAME"),            // Database name
		DevMode:       os.Getenv("DEV_MODE") == "true", // Development mode flag
		JWTSecret:     os.Getenv("JWT_SECRET"),         // JWT secret key
		RedisAddr:     os.Getenv("REDIS_ADDR"),         // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),         // Redis password
		RedisDB:       redisDB,                         // Redis database number
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),        // Admin seed email
		AdminName:     os.Getenv("ADMIN_NAME"),         // Admin seed name
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),     // Admin seed password
		IsProd:        os.Getenv("IS_PROD") == "true",  // Is production environment
	}
}

// DSN builds the primary MySQL Data Source Name from the DB fields
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
