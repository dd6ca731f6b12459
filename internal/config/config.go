package config

import (
	"os"
	"strconv"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendAuto    = "auto"
	BackendSurreal = "surreal"
	BackendLocal   = "local"
)

// StoreConfig selects the record store backend for the whole process.
// The decision is made once at startup; there is no per-request switching.
type StoreConfig struct {
	Backend string // auto | surreal | local
}

// SurrealConfig holds connection settings for the SurrealDB record store.
type SurrealConfig struct {
	URL       string // websocket RPC endpoint, e.g. ws://localhost:8000/rpc
	User      string
	Pass      string
	Namespace string
	Database  string
}

// LocalConfig holds settings for the embedded fallback store.
type LocalConfig struct {
	Path string // sqlite database file; ":memory:" is valid for tests
}

// MinIOConfig holds object storage settings for PDF uploads.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Store   StoreConfig
	Surreal SurrealConfig
	Local   LocalConfig
	MinIO   MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", BackendAuto),
		},
		Surreal: SurrealConfig{
			URL:       getEnv("SURREAL_URL", "ws://localhost:8000/rpc"),
			User:      getEnv("SURREAL_USER", ""),
			Pass:      getEnv("SURREAL_PASS", ""),
			Namespace: getEnv("SURREAL_NS", "studyhub"),
			Database:  getEnv("SURREAL_DB", "studyhub"),
		},
		Local: LocalConfig{
			Path: getEnv("LOCAL_STORE_PATH", "data/studyhub.db"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "studyhub-pdfs"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
