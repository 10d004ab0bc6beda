package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DirectoryDSN string
	ShareBaseURL string
	LogFile      string
}

func Load() Config {
	// Optional .env for local runs; real env always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DIRECTORY_DSN")
	if dsn == "" {
		dsn = ":memory:" // seller directory is seed data, nothing persists
	}
	share := os.Getenv("SHARE_BASE_URL")
	if share == "" {
		share = "https://bookworm.app"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DirectoryDSN: dsn, ShareBaseURL: share, LogFile: logFile}
	log.Printf("[config] PORT=%s DIRECTORY_DSN=%s SHARE_BASE_URL=%s LOG_FILE=%s", cfg.Port, cfg.DirectoryDSN, cfg.ShareBaseURL, cfg.LogFile)
	return cfg
}
