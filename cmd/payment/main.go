// Command payment queues and aborts payouts in the transaction store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/payouts7000-backend/internal/metrics"
	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"github.com/goodnatureofminers/payouts7000-backend/internal/repository/sqlstore"
	"github.com/goodnatureofminers/payouts7000-backend/pkg/workerpool"
)

type options struct {
	DBDriver string `long:"db-driver" env:"PAYOUTS_DB_DRIVER" description:"store driver (postgres or sqlite3)" default:"postgres"`
	DBDSN    string `long:"db-dsn" env:"PAYOUTS_DB_DSN" description:"store DSN" required:"true"`
}

type app struct {
	ctx    context.Context
	opts   *options
	logger *zap.Logger
}

func (a *app) openStore() (*sqlstore.Store, error) {
	store, err := sqlstore.Open(a.ctx, a.opts.DBDriver, a.opts.DBDSN, metrics.NewStore(a.opts.DBDriver))
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return store, nil
}

type addCommand struct {
	app      *app
	Address  string `long:"address" description:"destination address" required:"true"`
	Amount   string `long:"amount" description:"amount in whole units" required:"true"`
	Currency string `long:"currency" description:"issued currency code, empty for native"`
	Issuer   string `long:"issuer" description:"issuer of the currency"`
	Memo     string `long:"memo" description:"free-form note stored with the payment"`
}

func (c *addCommand) Execute(_ []string) error {
	tx, err := newPayment(c.Address, c.Amount, c.Currency, c.Issuer, c.Memo)
	if err != nil {
		return err
	}
	store, err := c.app.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.InsertTransaction(c.app.ctx, tx)
	if err != nil {
		return err
	}
	c.app.logger.Info("payment queued",
		zap.Int64("transaction_id", id),
		zap.String("address", tx.Address),
		zap.Stringer("amount", tx.Amount),
	)
	return nil
}

type importCommand struct {
	app     *app
	File    string `long:"file" description:"CSV file with address,amount[,currency,issuer,memo]" required:"true"`
	Workers int    `long:"workers" description:"concurrent inserts" default:"4"`
}

func (c *importCommand) Execute(_ []string) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.File, err)
	}
	defer f.Close()

	txs, err := readPayments(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}
	store, err := c.app.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := workerpool.Process(c.app.ctx, c.Workers, txs, func(ctx context.Context, tx model.Transaction) error {
		id, err := store.InsertTransaction(ctx, tx)
		if err != nil {
			return err
		}
		c.app.logger.Debug("payment queued", zap.Int64("transaction_id", id), zap.String("address", tx.Address))
		return nil
	}, func(err error) {
		c.app.logger.Warn("import stopped after an insert failure", zap.Error(err))
	})
	c.app.logger.Info("payments imported",
		zap.String("file", c.File),
		zap.Int("inserted", inserted),
		zap.Int("total", len(txs)),
	)
	return err
}

type abortCommand struct {
	app *app
	ID  int64 `long:"id" description:"transaction id to abort" required:"true"`
}

func (c *abortCommand) Execute(_ []string) error {
	store, err := c.app.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.AbortTransaction(c.app.ctx, c.ID); err != nil {
		return err
	}
	c.app.logger.Info("payment aborted", zap.Int64("transaction_id", c.ID))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	a := &app{ctx: ctx, opts: &options{}, logger: logger}
	parser := flags.NewParser(a.opts, flags.HelpFlag|flags.PassDoubleDash)
	commands := []struct {
		name, short string
		data        any
	}{
		{"add", "queue a single payment", &addCommand{app: a}},
		{"import", "queue payments from a CSV file", &importCommand{app: a}},
		{"abort", "abort a payment so the processor can resume", &abortCommand{app: a}},
	}
	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.short, cmd.data); err != nil {
			logger.Fatal("failed to register command", zap.String("command", cmd.name), zap.Error(err))
		}
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		logger.Fatal("payment command failed", zap.Error(err))
	}
}
