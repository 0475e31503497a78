package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays cfg with values from the environment.
//
// Recognized variables:
//
//	TESTLY_PROCESSOR_URL   processing endpoint root
//	TESTLY_PHOTOS_DIR      capture storage directory
//	TESTLY_SUBMIT_TIMEOUT  submission timeout, time.ParseDuration format
//	TESTLY_FOLDERS         comma-separated seed folder names
func parseEnv(cfg *Config) {
	if v := os.Getenv("TESTLY_PROCESSOR_URL"); v != "" {
		cfg.ProcessorBaseURL = v
	}
	if v := os.Getenv("TESTLY_PHOTOS_DIR"); v != "" {
		cfg.PhotosDir = v
	}
	if v := os.Getenv("TESTLY_SUBMIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SubmitTimeout = d
		}
	}
	if v := os.Getenv("TESTLY_FOLDERS"); v != "" {
		var folders []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				folders = append(folders, f)
			}
		}
		if len(folders) > 0 {
			cfg.SeedFolders = folders
		}
	}
}
