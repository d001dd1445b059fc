package main

import (
	"errors"
	stdlog "log"

	"github.com/joho/godotenv"

	"invoicemaker/cmd"
	"invoicemaker/internal/config"
	"invoicemaker/internal/logger"
)

func main() {
	// Optional .env for LOG_* and INVOICE_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load()
	switch {
	case err == nil:
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	case errors.Is(err, config.ErrNotConfigured):
		// First run: commands that need a data root report this
		// themselves and point at 'config'.
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	default:
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	cmd.Execute()
}
