package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort     string
	CORSOrigins  string
	SnapshotPath string // optional JSON snapshot file; empty serves the compiled-in figures
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		SnapshotPath: getEnv("SNAPSHOT_PATH", ""),
	}

	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own frontend origin for production.")
	}
	if cfg.SnapshotPath == "" {
		log.Println("[WARN] SNAPSHOT_PATH not set, serving the compiled-in snapshot figures.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
