package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// ServerAddress is the TCP address the HTTP server binds to.
	ServerAddress string
	// DatabaseURL is a go-sql-driver DSN, e.g.
	// "user:pass@tcp(db:3306)/orchestrator?parseTime=true". Required.
	DatabaseURL string
	// MaxOpenConns bounds the store connection pool.
	MaxOpenConns int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	return Config{
		ServerAddress: getenv("SERVER_ADDRESS", "127.0.0.1:7878"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MaxOpenConns:  getenvInt("DB_MAX_OPEN_CONNS", 16),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
