package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/abookhq/abook/internal/cli"
	"github.com/abookhq/abook/internal/config"
	"github.com/abookhq/abook/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
