package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=minhas_db port=5432 sslmode=disable"

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	UploadPath  string // Directory where uploaded images are stored

	// Seed admin credentials, only used when the user does not exist yet.
	AdminUsername string
	AdminPassword string

	MaxUploadMB int
}

func Load() *Config {
	// Local development convenience, same role as the dotenv setup the
	// site always shipped with. A missing .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		UploadPath:    getEnv("UPLOAD_PATH", "./uploads"),
		AdminUsername: getEnv("ADMIN_USERNAME", "Aamir"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "minhas666021"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 20),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required, there is no default.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN uses the local default, set your own Postgres DSN for production.")
	}
	if cfg.AdminPassword == "minhas666021" {
		log.Println("[WARN] ADMIN_PASSWORD uses the default seed password, rotate it for any real deployment.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS uses the local default, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("[WARN] %s=%q is not a positive integer, using %d", key, v, def)
	}
	return def
}
