package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"resume-builder/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string
	RedisURL        string
	SnapshotStore   string
	SnapshotDir     string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	S3Endpoint      string
	ExportEngine    string
	WkhtmltopdfPath string
	DefaultTemplate string
	LogLevel        string
	LogFormat       string
	MaxUploadBytes  int64
	ArchiveExports  bool
	SessionTTL      time.Duration
	MaxSessions     int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	snapshotStore := normalizeSnapshotStore(getEnv("SNAPSHOT_STORE", "memory"))

	if snapshotStore == "postgres" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"snapshot_store": snapshotStore})
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DatabaseURL:     dbURL,
		RedisURL:        getEnv("REDIS_URL", ""),
		SnapshotStore:   snapshotStore,
		SnapshotDir:     getEnv("SNAPSHOT_DIR", "./data/snapshots"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		ExportEngine:    normalizeExportEngine(getEnv("EXPORT_ENGINE", "html")),
		WkhtmltopdfPath: getEnv("WKHTMLTOPDF_PATH", "wkhtmltopdf"),
		DefaultTemplate: strings.ToLower(getEnv("DEFAULT_TEMPLATE", "classic")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		ArchiveExports:  getEnvBool("ARCHIVE_EXPORTS", false),
		SessionTTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		MaxSessions:     int(getEnvInt64("MAX_SESSIONS", 10000)),
	}
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already set in the environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeSnapshotStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "file", "local":
		return "file"
	case "postgres", "pg":
		return "postgres"
	case "redis":
		return "redis"
	default:
		return "memory"
	}
}

func normalizeExportEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "wkhtmltopdf", "pdf":
		return "wkhtmltopdf"
	default:
		return "html"
	}
}
