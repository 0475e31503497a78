package config

import (
	"encoding/json"
	"os"
	"time"

	"testly/internal/flagx"
	"testly/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "60s" or as integer nanoseconds.
type JsonConfig struct {
	ProcessorBaseURL string         `json:"processor_base_url"`
	PhotosDir        string         `json:"photos_dir"`
	SubmitTimeout    timex.Duration `json:"submit_timeout"`
	SeedFolders      []string       `json:"seed_folders"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named the function returns without
// touching cfg. Only fields present in the file override; absent fields
// keep their earlier values.
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

	if jc.ProcessorBaseURL != "" {
		cfg.ProcessorBaseURL = jc.ProcessorBaseURL
	}
	if jc.PhotosDir != "" {
		cfg.PhotosDir = jc.PhotosDir
	}
	if jc.SubmitTimeout.Duration != 0 {
		cfg.SubmitTimeout = time.Duration(jc.SubmitTimeout.Duration)
	}
	if len(jc.SeedFolders) > 0 {
		cfg.SeedFolders = jc.SeedFolders
	}
}
