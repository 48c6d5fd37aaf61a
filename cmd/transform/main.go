package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/globalmarket/analytics-etl/internal/config"
	"github.com/globalmarket/analytics-etl/internal/logging"
	"github.com/globalmarket/analytics-etl/internal/transform"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log, _ := logging.NewRun()

	// Seed 0 means non-reproducible: derive from the clock.
	seed := cfg.Sales.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log.Info("transform starting",
		"input", cfg.Input.CSVPath,
		"output", cfg.Output.Dir,
		"sales_count", cfg.Sales.Count,
	)

	if err := transform.Run(cfg, rng, time.Now(), log); err != nil {
		log.Error("transform failed", "error", err)
		os.Exit(1)
	}

	log.Info("transform complete")
}
