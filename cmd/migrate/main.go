package main

import (
	"log/slog"
	"os"

	"github.com/answerking/answerking-api/migrations/answerking"
	"github.com/answerking/answerking-api/pkg/config"
	"github.com/answerking/answerking-api/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, answerking.FS); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
