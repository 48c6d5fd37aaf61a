package main

import (
	"log/slog"
	"os"

	"github.com/globalmarket/analytics-etl/internal/config"
	"github.com/globalmarket/analytics-etl/internal/logging"
	"github.com/globalmarket/analytics-etl/internal/validate"
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

	log.Info("validation starting", "dir", cfg.Output.Dir)

	summary, err := validate.Run(cfg.Output.Dir, log)
	if err != nil {
		log.Error("validation aborted", "error", err)
		os.Exit(1)
	}

	log.Info("validation summary",
		"products", summary.Products,
		"users", summary.Users,
		"reviews", summary.Reviews,
		"sales", summary.Sales,
		"total", summary.Total(),
	)

	if summary.Total() > 0 {
		log.Error("validation failed", "total_issues", summary.Total())
		os.Exit(1)
	}

	log.Info("all collections consistent and ready for import")
}
