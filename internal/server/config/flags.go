package config

import (
	"flag"
	"os"

	"testly/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-p string   public base URL for response links
//	-s string   local storage root directory
//	-m int      upload size limit in bytes
//	-k string   storage backend, "local" or "s3"
//	-u string   S3 access key
//	-w string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-s", "-m", "-k", "-u", "-w", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.PublicBaseURL, "p", cfg.PublicBaseURL, "public base url")
	fs.StringVar(&cfg.StorageDir, "s", cfg.StorageDir, "local storage root")
	fs.Int64Var(&cfg.MaxUploadBytes, "m", cfg.MaxUploadBytes, "upload size limit (in bytes)")
	fs.StringVar(&cfg.StorageBackend, "k", cfg.StorageBackend, "storage backend (local or s3)")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "w", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
