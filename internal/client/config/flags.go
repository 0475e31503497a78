package config

import (
	"flag"
	"os"
	"time"

	"testly/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   processing endpoint root (default from Config)
//	-d string   photos directory (default from Config)
//	-t int      submission timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProcessorBaseURL, "a", cfg.ProcessorBaseURL, "processing endpoint root url")
	fs.StringVar(&cfg.PhotosDir, "d", cfg.PhotosDir, "captured photos directory")
	submitTimeout := fs.Int("t", int(cfg.SubmitTimeout.Seconds()), "submission timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitTimeout = time.Duration(*submitTimeout) * time.Second
}
