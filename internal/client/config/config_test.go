package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.ProcessorBaseURL)
	assert.Equal(t, "photos", c.PhotosDir)
	assert.Equal(t, 60*time.Second, c.SubmitTimeout)
	assert.Equal(t, []string{"Matematik", "Fizik", "Kimya"}, c.SeedFolders)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5000", c.ProcessorBaseURL)
	assert.Equal(t, "photos", c.PhotosDir)
	assert.Equal(t, 60*time.Second, c.SubmitTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "https://api.example.com", "-d", "/tmp/photos", "-t", "30",
		}, expectPanic: false,
			expected: &Config{
				ProcessorBaseURL: "https://api.example.com",
				PhotosDir:        "/tmp/photos",
				SubmitTimeout:    30 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TESTLY_PROCESSOR_URL", "https://env.example.com")
	t.Setenv("TESTLY_PHOTOS_DIR", "/env/photos")
	t.Setenv("TESTLY_SUBMIT_TIMEOUT", "90s")
	t.Setenv("TESTLY_FOLDERS", "Tarih, Edebiyat")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "https://env.example.com", c.ProcessorBaseURL)
	assert.Equal(t, "/env/photos", c.PhotosDir)
	assert.Equal(t, 90*time.Second, c.SubmitTimeout)
	assert.Equal(t, []string{"Tarih", "Edebiyat"}, c.SeedFolders)
}

func TestParseEnv_InvalidTimeoutKeepsPrevious(t *testing.T) {
	t.Setenv("TESTLY_SUBMIT_TIMEOUT", "soon")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 60*time.Second, c.SubmitTimeout)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")

	jc := JsonConfig{
		ProcessorBaseURL: "https://json.example.com",
		PhotosDir:        "/json/photos",
		SeedFolders:      []string{"Biyoloji"},
	}
	data, err := json.Marshal(jc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o660))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd", "-c", file}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "https://json.example.com", c.ProcessorBaseURL)
	assert.Equal(t, "/json/photos", c.PhotosDir)
	assert.Equal(t, []string{"Biyoloji"}, c.SeedFolders)
	assert.Equal(t, 60*time.Second, c.SubmitTimeout, "absent JSON fields keep defaults")
}
