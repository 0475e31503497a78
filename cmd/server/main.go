package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"testly/internal/server"
	"testly/internal/server/config"
)

func main() {

	// Optional; real deployments pass env vars directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
