package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"testly/internal/client/cli"
	"testly/internal/client/config"
)

func main() {

	// Optional; real deployments pass env vars directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
