package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	ClientDir    string
	StoreBackend string
	DataFile     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
}

func Load() *Config {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "3000"),
		ClientDir:    getEnv("CLIENT_DIR", "client"),
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataFile:     getEnv("DATA_FILE", "data.json"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "levellore"),
		DBPassword:   getEnv("DB_PASSWORD", "levellore_dev_password"),
		DBName:       getEnv("DB_NAME", "levellore"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
