package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/payouts7000-backend/internal/payments"
)

// ServiceName is the health service name reported for the payment processor.
const ServiceName = "payouts7000.Payouts"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusSource interface {
		Status() payments.Status
	}
)

// HealthUpdater mirrors the processor state into a gRPC health server. A
// latched fatal error reports NOT_SERVING until it is cleared.
type HealthUpdater struct {
	server *health.Server
	source StatusSource
	logger *zap.Logger
	last   healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthUpdater(server *health.Server, source StatusSource, logger *zap.Logger) *HealthUpdater {
	return &HealthUpdater{
		server: server,
		source: source,
		logger: logger.Named("health"),
		last:   healthpb.HealthCheckResponse_UNKNOWN,
	}
}

// Run refreshes the health status every interval until ctx is done, then
// marks every service NOT_SERVING.
func (u *HealthUpdater) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	u.Update()
	for {
		select {
		case <-ctx.Done():
			u.server.Shutdown()
			return
		case <-ticker.C:
			u.Update()
		}
	}
}

// Update sets the serving status from the current processor snapshot.
func (u *HealthUpdater) Update() {
	status := servingStatus(u.source.Status())
	if status != u.last {
		u.logger.Info("health status changed",
			zap.Stringer("from", u.last),
			zap.Stringer("to", status),
		)
		u.last = status
	}
	u.server.SetServingStatus("", status)
	u.server.SetServingStatus(ServiceName, status)
}

func servingStatus(s payments.Status) healthpb.HealthCheckResponse_ServingStatus {
	if s.FatalError != "" {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}
