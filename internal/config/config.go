package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	SessionBackend    string
	SessionTTL        time.Duration
	RedisAddr         string
	MediaBackend      string
	UploadDir         string
	MediaBaseURL      string
	MaxUploadBytes    int64
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKey       string
	S3SecretKey       string
	JanitorInterval   time.Duration
	ShutdownTimeout   time.Duration
	StrictEmailUpdate bool
}

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	MediaBackendDisk = "disk"
	MediaBackendS3   = "s3"
)

const (
	defaultRunAddress      = ":8080"
	defaultSessionBackend  = SessionBackendMemory
	defaultSessionTTL      = 24 * time.Hour
	defaultMediaBackend    = MediaBackendDisk
	defaultUploadDir       = "uploads/profile_pics"
	defaultMediaBaseURL    = "/media/profile_pics"
	defaultMaxUploadBytes  = 2 << 20
	defaultJanitorInterval = 10 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		SessionBackend:    getString(lookup, "SESSION_BACKEND", defaultSessionBackend),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		RedisAddr:         getString(lookup, "REDIS_ADDR", ""),
		MediaBackend:      getString(lookup, "MEDIA_BACKEND", defaultMediaBackend),
		UploadDir:         getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		MediaBaseURL:      getString(lookup, "MEDIA_BASE_URL", defaultMediaBaseURL),
		MaxUploadBytes:    getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		S3Bucket:          getString(lookup, "S3_BUCKET", ""),
		S3Region:          getString(lookup, "S3_REGION", ""),
		S3Endpoint:        getString(lookup, "S3_ENDPOINT", ""),
		S3AccessKey:       getString(lookup, "S3_ACCESS_KEY", ""),
		S3SecretKey:       getString(lookup, "S3_SECRET_KEY", ""),
		JanitorInterval:   getDuration(lookup, "JANITOR_INTERVAL", defaultJanitorInterval),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StrictEmailUpdate: getBool(lookup, "STRICT_EMAIL_UPDATE", false),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		janitorIntervalStr = cfg.JanitorInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store backend (memory|redis)")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session lifetime")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session backend")
	fs.StringVar(&cfg.MediaBackend, "media-backend", cfg.MediaBackend, "Media store backend (disk|s3)")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for uploaded profile pictures")
	fs.StringVar(&cfg.MediaBaseURL, "media-base-url", cfg.MediaBaseURL, "Public base URL for uploaded files")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum accepted upload size in bytes")
	fs.StringVar(&janitorIntervalStr, "janitor-interval", janitorIntervalStr, "Interval between orphaned media sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.StrictEmailUpdate, "strict-email-update", cfg.StrictEmailUpdate, "Re-check email uniqueness on profile update")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.JanitorInterval, err = time.ParseDuration(janitorIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid janitor interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.JanitorInterval <= 0 {
		cfg.JanitorInterval = defaultJanitorInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	switch cfg.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis address must be provided for the redis session backend")
		}
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	switch cfg.MediaBackend {
	case MediaBackendDisk:
	case MediaBackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 bucket must be provided for the s3 media backend")
		}
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.MediaBackend)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
