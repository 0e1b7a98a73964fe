package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs, assembled once in main
// and passed down by injection. Nothing reads the environment after boot.
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	JWTSecret string
	JWTTTL    time.Duration

	Media MediaConfig
}

// MediaConfig points at the S3-compatible host that serves uploaded images.
type MediaConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is what clients can actually reach, e.g. a CDN or the
	// minio endpoint itself. Object keys are appended to it.
	PublicBaseURL string
}

// Load reads .env (when present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:      getenv("PORT", "3000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getenv("DB_NAME", "blog"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Hour,
		Media: MediaConfig{
			Endpoint:      os.Getenv("MEDIA_ENDPOINT"),
			AccessKey:     os.Getenv("MEDIA_ACCESS_KEY"),
			SecretKey:     os.Getenv("MEDIA_SECRET_KEY"),
			Bucket:        getenv("MEDIA_BUCKET", "uploads"),
			UseSSL:        getenvBool("MEDIA_USE_SSL", false),
			PublicBaseURL: os.Getenv("MEDIA_PUBLIC_URL"),
		},
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
		}
		cfg.JWTTTL = d
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// MustLoad is Load for main: any missing required value is fatal at boot.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
