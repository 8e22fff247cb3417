package config

import "os"

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	AdminPassword string
	ServerPort    string
	BridgeURL     string
	AutoResume    bool
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "tiktokquiz"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "quizmaster"),
		ServerPort:    getEnv("SERVER_PORT", "3001"),
		BridgeURL:     getEnv("BRIDGE_URL", "ws://localhost:8765"),
		AutoResume:    getEnv("AUTO_RESUME", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
