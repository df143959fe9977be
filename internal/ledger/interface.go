package ledger

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pandanite/pandascan/internal/node_client"
)

// ChainClient reads the canonical chain from the remote node.
type ChainClient interface {
	GetBlockCount(ctx context.Context) (uint64, error)
	GetBlock(ctx context.Context, height uint64) (*node_client.Block, error)
	GetPeers(ctx context.Context) ([]string, error)
	GetPeerName(ctx context.Context, peerURL string) (*node_client.PeerName, error)
	GetPeerStats(ctx context.Context, peerURL string) (*node_client.PeerStats, error)
}

type MessageQueueClient interface {
	Publish(ctx context.Context, channel string, data []byte) error
}

// CycleRunner is driven by the Scheduler.
type CycleRunner interface {
	RunCycle(ctx context.Context, backfill bool) (CycleResult, error)
	LastActivity() time.Time
}

type HealthWatchServer interface {
	Send(*grpc_health_v1.HealthCheckResponse) error
	grpc.ServerStream
}
