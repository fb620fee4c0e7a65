// Command payouts runs the unattended payment processor for one paying account.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"

	"github.com/goodnatureofminers/payouts7000-backend/internal/address"
	"github.com/goodnatureofminers/payouts7000-backend/internal/audit"
	"github.com/goodnatureofminers/payouts7000-backend/internal/events"
	"github.com/goodnatureofminers/payouts7000-backend/internal/lease"
	"github.com/goodnatureofminers/payouts7000-backend/internal/ledger/rpc"
	"github.com/goodnatureofminers/payouts7000-backend/internal/metrics"
	"github.com/goodnatureofminers/payouts7000-backend/internal/payments"
	"github.com/goodnatureofminers/payouts7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/payouts7000-backend/internal/repository/sqlstore"
	"github.com/goodnatureofminers/payouts7000-backend/internal/transport"
)

type config struct {
	EnvFile string `long:"env-file" env:"PAYOUTS_ENV_FILE" description:"optional .env file loaded before parsing" default:".env"`

	Address string `long:"address" env:"PAYOUTS_ADDRESS" description:"paying account address" required:"true"`
	Secret  string `long:"secret" env:"PAYOUTS_SECRET" description:"paying account secret" required:"true"`
	Fee     int64  `long:"fee" env:"PAYOUTS_FEE" description:"fee in native units per payment" default:"10"`

	DBDriver string `long:"db-driver" env:"PAYOUTS_DB_DRIVER" description:"store driver (postgres or sqlite3)" default:"postgres"`
	DBDSN    string `long:"db-dsn" env:"PAYOUTS_DB_DSN" description:"store DSN" required:"true"`

	RPCURL     string        `long:"rpc-url" env:"PAYOUTS_RPC_URL" description:"ledger node JSON-RPC URL" default:"http://127.0.0.1:5005"`
	RPCTimeout time.Duration `long:"rpc-timeout" env:"PAYOUTS_RPC_TIMEOUT" description:"ledger RPC timeout" default:"30s"`
	RPCRPS     int           `long:"rpc-rps" env:"PAYOUTS_RPC_RPS" description:"ledger RPC requests per second, 0 for unlimited" default:"20"`

	Interval    time.Duration `long:"interval" env:"PAYOUTS_INTERVAL" description:"pause between payment cycles" default:"10s"`
	MaxInFlight int           `long:"max-in-flight" env:"PAYOUTS_MAX_IN_FLIGHT" description:"signed but unconfirmed payments allowed at once" default:"10"`

	RedisAddr     string        `long:"redis-addr" env:"PAYOUTS_REDIS_ADDR" description:"redis address for the account lease, empty to disable"`
	RedisPassword string        `long:"redis-password" env:"PAYOUTS_REDIS_PASSWORD" description:"redis password"`
	RedisDB       int           `long:"redis-db" env:"PAYOUTS_REDIS_DB" description:"redis database" default:"0"`
	LeaseTTL      time.Duration `long:"lease-ttl" env:"PAYOUTS_LEASE_TTL" description:"account lease ttl" default:"2m"`

	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"PAYOUTS_CLICKHOUSE_DSN" description:"ClickHouse DSN for the submission audit trail, empty to disable"`
	AuditFlushSize     int           `long:"audit-flush-size" env:"PAYOUTS_AUDIT_FLUSH_SIZE" description:"audit rows per batch" default:"100"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"PAYOUTS_AUDIT_FLUSH_INTERVAL" description:"audit flush interval" default:"5s"`

	KafkaBrokers []string `long:"kafka-broker" env:"PAYOUTS_KAFKA_BROKERS" env-delim:"," description:"kafka broker for outcome events, repeatable"`
	KafkaTopic   string   `long:"kafka-topic" env:"PAYOUTS_KAFKA_TOPIC" description:"kafka topic for outcome events" default:"payouts7000.submissions"`

	GRPCAddr    string `long:"grpc-addr" env:"PAYOUTS_GRPC_ADDR" description:"gRPC health server address" default:":8000"`
	HTTPAddr    string `long:"http-addr" env:"PAYOUTS_HTTP_ADDR" description:"REST status server address" default:":8001"`
	MetricsAddr string `long:"metrics-addr" env:"PAYOUTS_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	loadEnvFile(os.Args, logger)
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("payouts failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := address.Validate(cfg.Address); err != nil {
		return fmt.Errorf("invalid paying address: %w", err)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBDSN, metrics.NewStore(cfg.DBDriver))
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	client, err := rpc.NewClient(cfg.RPCURL, cfg.RPCTimeout, cfg.RPCRPS, metrics.NewRPCClient(cfg.RPCURL))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	var accountLease payments.Lease
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			_ = rdb.Close()
		}()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		l, err := lease.NewRedis(rdb, cfg.Address, cfg.LeaseTTL, logger)
		if err != nil {
			return fmt.Errorf("init lease: %w", err)
		}
		accountLease = l
	}

	var recorders []payments.SubmissionRecorder
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init audit repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		recorder := audit.NewRecorder(repo, audit.Config{
			FlushSize:     cfg.AuditFlushSize,
			FlushInterval: cfg.AuditFlushInterval,
		}, logger)
		recorder.Start(context.WithoutCancel(ctx))
		defer recorder.Stop()
		recorders = append(recorders, recorder)
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewPublisher(events.Config{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}, metrics.NewEvents(cfg.KafkaTopic), logger)
		if err != nil {
			return fmt.Errorf("init events publisher: %w", err)
		}
		publisher.Start(context.WithoutCancel(ctx))
		defer func() {
			if err := publisher.Stop(); err != nil {
				logger.Warn("stop events publisher", zap.Error(err))
			}
		}()
		recorders = append(recorders, publisher)
	}

	processor, err := payments.NewProcessor(
		store,
		client,
		accountLease,
		metrics.NewPayments(),
		payments.Account{Address: cfg.Address, Secret: cfg.Secret, Fee: cfg.Fee},
		logger,
		recorders...,
	)
	if err != nil {
		return err
	}

	if err := startStatusServers(ctx, cfg, processor, logger); err != nil {
		return err
	}

	logger.Info("payouts started",
		zap.String("account", cfg.Address),
		zap.Duration("interval", cfg.Interval),
		zap.Int("max_in_flight", cfg.MaxInFlight),
	)
	return processor.Run(ctx, cfg.Interval, cfg.MaxInFlight)
}

func loadEnvFile(args []string, logger *zap.Logger) {
	var pre struct {
		EnvFile string `long:"env-file" env:"PAYOUTS_ENV_FILE" default:".env"`
	}
	parser := flags.NewParser(&pre, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args[1:]); err != nil || pre.EnvFile == "" {
		return
	}
	if err := godotenv.Load(pre.EnvFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to load env file", zap.String("file", pre.EnvFile), zap.Error(err))
		}
		return
	}
	logger.Info("loaded env file", zap.String("file", pre.EnvFile))
}

func startStatusServers(ctx context.Context, cfg config, processor *payments.Processor, logger *zap.Logger) error {
	healthServer := health.NewServer()
	grpcServer := transport.NewGRPCServer(logger, healthServer)
	go transport.NewHealthUpdater(healthServer, processor, logger).Run(ctx, time.Second)

	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddr, err)
	}
	go func() {
		if err := grpcServer.Serve(socket); err != nil {
			logger.Error("grpc server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	if err := transport.RegisterStatusRoutes(gw, processor, logger); err != nil {
		return fmt.Errorf("register status routes: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(gw),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("starting status server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown status server", zap.Error(err))
		}
	}()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
