package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/morfeolab/morfeo/config"
	"github.com/morfeolab/morfeo/pkg/otel"
	"github.com/morfeolab/morfeo/server"
)

var version string

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "morfeo", version); err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
