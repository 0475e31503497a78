package config

import (
	"encoding/json"
	"os"

	"testly/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Its values
// are copied into the runtime Config after decoding.
type JsonConfig struct {
	Addr           string   `json:"addr"`
	DatabaseDSN    string   `json:"database_dsn"`
	PublicBaseURL  string   `json:"public_base_url"`
	StorageDir     string   `json:"storage_dir"`
	MaxUploadBytes int64    `json:"max_upload_bytes"`
	CORSOrigins    []string `json:"cors_origins"`
	StorageBackend string   `json:"storage_backend"`
	S3AccessKey    string   `json:"s3_access_key"`
	S3SecretKey    string   `json:"s3_secret_key"`
	S3Bucket       string   `json:"s3_bucket"`
	S3Region       string   `json:"s3_region"`
	S3BaseEndpoint string   `json:"s3_base_endpoint"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named the function returns without
// touching cfg. Only fields present in the file override; absent fields
// keep their earlier values. An unreadable or malformed file panics.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PublicBaseURL != "" {
		cfg.PublicBaseURL = jc.PublicBaseURL
	}
	if jc.StorageDir != "" {
		cfg.StorageDir = jc.StorageDir
	}
	if jc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}
	if len(jc.CORSOrigins) > 0 {
		cfg.CORSOrigins = jc.CORSOrigins
	}
	if jc.StorageBackend != "" {
		cfg.StorageBackend = jc.StorageBackend
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
