package config

import (
	"os"
	"strconv"
	"strings"
)

// parseEnv overlays cfg with values from the environment.
//
// Recognized variables:
//
//	TESTLY_ADDR              HTTP bind address
//	TESTLY_DATABASE_DSN      PostgreSQL DSN
//	TESTLY_PUBLIC_BASE_URL   public base URL for response links
//	TESTLY_STORAGE_DIR       local storage root
//	TESTLY_MAX_UPLOAD_BYTES  upload size limit in bytes
//	TESTLY_CORS_ORIGINS      comma-separated list of allowed origins
//	TESTLY_STORAGE_BACKEND   "local" or "s3"
//	TESTLY_S3_ACCESS_KEY     S3 access key
//	TESTLY_S3_SECRET_KEY     S3 secret key
//	TESTLY_S3_BUCKET         S3 bucket name
//	TESTLY_S3_REGION         S3 region
//	TESTLY_S3_BASE_ENDPOINT  S3 base endpoint
func parseEnv(cfg *Config) {
	if v := os.Getenv("TESTLY_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TESTLY_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("TESTLY_PUBLIC_BASE_URL"); v != "" {
		cfg.PublicBaseURL = v
	}
	if v := os.Getenv("TESTLY_STORAGE_DIR"); v != "" {
		cfg.StorageDir = v
	}
	if v := os.Getenv("TESTLY_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("TESTLY_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
	if v := os.Getenv("TESTLY_STORAGE_BACKEND"); v != "" {
		cfg.StorageBackend = v
	}
	if v := os.Getenv("TESTLY_S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("TESTLY_S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
	if v := os.Getenv("TESTLY_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("TESTLY_S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("TESTLY_S3_BASE_ENDPOINT"); v != "" {
		cfg.S3BaseEndpoint = v
	}
}
