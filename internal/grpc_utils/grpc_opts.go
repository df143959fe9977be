package grpc_utils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	prometheusclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrGRPCFailedToRegisterPanics  = errors.New("failed to register panics total metric")
	ErrGRPCFailedToRegisterMetrics = errors.New("failed to register grpc server metrics")
)

// GetGRPCServerOpts returns the server options with panic recovery, optional prometheus
// interceptors and optional tracing. The returned cleanup unregisters the collectors.
func GetGRPCServerOpts(logger *slog.Logger, cfg ServerConfig) (*prometheus.ServerMetrics, []grpc.ServerOption, func(), error) {
	rpcLogger := logger.With(slog.String("service", "gRPC/server"))

	srvMetrics := prometheus.NewServerMetrics(
		prometheus.WithServerHandlingTimeHistogram(
			prometheus.WithHistogramBuckets([]float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6}),
		),
	)

	panicsTotal := prometheusclient.NewCounter(prometheusclient.CounterOpts{
		Name: fmt.Sprintf("pandascan_grpc_req_panics_recovered_%s_total", cfg.Name),
		Help: "Total number of gRPC requests recovered from internal panic.",
	})

	collectors := []prometheusclient.Collector{panicsTotal}
	if cfg.PrometheusEnabled {
		collectors = append(collectors, srvMetrics)
	}

	for i, c := range collectors {
		err := prometheusclient.Register(c)
		if err != nil {
			for _, registered := range collectors[:i] {
				prometheusclient.Unregister(registered)
			}
			if i == 0 {
				return nil, nil, nil, errors.Join(ErrGRPCFailedToRegisterPanics, err)
			}
			return nil, nil, nil, errors.Join(ErrGRPCFailedToRegisterMetrics, err)
		}
	}

	opts := make([]grpc.ServerOption, 0)

	if cfg.TracingConfig.IsEnabled() {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	grpcPanicRecoveryHandler := func(p any) (err error) {
		panicsTotal.Inc()
		rpcLogger.Error("recovered from panic", "panic", p, "stack", string(debug.Stack()))
		return status.Errorf(codes.Internal, "%s", p)
	}

	var chainUnaryInterceptors []grpc.UnaryServerInterceptor
	var chainStreamInterceptors []grpc.StreamServerInterceptor

	if cfg.PrometheusEnabled {
		exemplarFromContext := func(ctx context.Context) prometheusclient.Labels {
			if span := trace.SpanContextFromContext(ctx); span.IsSampled() {
				return prometheusclient.Labels{"traceID": span.TraceID().String()}
			}
			return nil
		}
		chainUnaryInterceptors = append(chainUnaryInterceptors, srvMetrics.UnaryServerInterceptor(prometheus.WithExemplarFromContext(exemplarFromContext)))
		chainStreamInterceptors = append(chainStreamInterceptors, srvMetrics.StreamServerInterceptor(prometheus.WithExemplarFromContext(exemplarFromContext)))
	}

	chainUnaryInterceptors = append(chainUnaryInterceptors, recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(grpcPanicRecoveryHandler)))
	chainStreamInterceptors = append(chainStreamInterceptors, recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(grpcPanicRecoveryHandler)))

	opts = append(opts, grpc.ChainUnaryInterceptor(chainUnaryInterceptors...))
	opts = append(opts, grpc.ChainStreamInterceptor(chainStreamInterceptors...))

	cleanup := func() {
		for _, c := range collectors {
			prometheusclient.Unregister(c)
		}
	}

	return srvMetrics, opts, cleanup, nil
}
