package ledger

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

const (
	readiness = "readiness"
	liveness  = "liveness"

	maxStallDurationDefault = 10 * time.Minute
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer reports readiness from the store connection and liveness from the progress of
// the running sync cycle.
type HealthServer struct {
	grpc_health_v1.UnimplementedHealthServer

	logger           *slog.Logger
	store            pinger
	scheduler        *Scheduler
	maxStallDuration time.Duration
	now              func() time.Time
}

func WithMaxStallDuration(d time.Duration) func(*HealthServer) {
	return func(h *HealthServer) {
		if d > 0 {
			h.maxStallDuration = d
		}
	}
}

func WithHealthNow(nowFunc func() time.Time) func(*HealthServer) {
	return func(h *HealthServer) {
		h.now = nowFunc
	}
}

func NewHealthServer(logger *slog.Logger, ledgerStore store.LedgerStore, scheduler *Scheduler, opts ...func(*HealthServer)) *HealthServer {
	h := &HealthServer{
		logger:           logger.With(slog.String("module", "health")),
		store:            ledgerStore,
		scheduler:        scheduler,
		maxStallDuration: maxStallDurationDefault,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *HealthServer) storeStatus(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	err := h.store.Ping(ctx)
	if err != nil {
		h.logger.Error("no connection to DB", slog.String("err", err.Error()))
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	return grpc_health_v1.HealthCheckResponse_SERVING
}

func (h *HealthServer) syncStatus() grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.scheduler == nil || !h.scheduler.IsRunning() {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}

	stalled := h.now().Sub(h.scheduler.LastActivity())
	if stalled > h.maxStallDuration {
		h.logger.Error("sync cycle stalled", slog.String("since", stalled.String()))
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	return grpc_health_v1.HealthCheckResponse_SERVING
}

func (h *HealthServer) status(ctx context.Context, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	switch service {
	case readiness:
		return h.storeStatus(ctx)
	case liveness:
		return h.syncStatus()
	}

	return grpc_health_v1.HealthCheckResponse_SERVING
}

func (h *HealthServer) List(ctx context.Context, _ *grpc_health_v1.HealthListRequest) (*grpc_health_v1.HealthListResponse, error) {
	return &grpc_health_v1.HealthListResponse{
		Statuses: map[string]*grpc_health_v1.HealthCheckResponse{
			"server": {Status: grpc_health_v1.HealthCheckResponse_SERVING},
			"store":  {Status: h.storeStatus(ctx)},
			"sync":   {Status: h.syncStatus()},
		},
	}, nil
}

func (h *HealthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	h.logger.Debug("checking health", slog.String("service", req.Service))

	return &grpc_health_v1.HealthCheckResponse{
		Status: h.status(ctx, req.Service),
	}, nil
}

func (h *HealthServer) Watch(req *grpc_health_v1.HealthCheckRequest, server grpc_health_v1.Health_WatchServer) error {
	h.logger.Info("watching health", slog.String("service", req.Service))

	return server.Send(&grpc_health_v1.HealthCheckResponse{
		Status: h.status(server.Context(), req.Service),
	})
}
