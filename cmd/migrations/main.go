// Command migrations applies the schema for the transaction store or the
// audit database.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/payouts7000-backend/internal/migrations"
)

type config struct {
	DatabaseURL   string `long:"database-url" env:"MIGRATIONS_DATABASE_URL" required:"true" description:"target URL (postgres://..., sqlite3://path.db or clickhouse://...)"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" default:"migrations/postgres" description:"path to migration files"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := ctx.Err(); err != nil {
		return
	}
	if err := migrations.Up(cfg.MigrationsDir, cfg.DatabaseURL, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}
