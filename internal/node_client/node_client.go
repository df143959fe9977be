package node_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pandanite/pandascan/internal/tracing"
)

var (
	ErrTransientFetch    = errors.New("failed to fetch from node")
	ErrMalformedResponse = errors.New("malformed response from node")
	ErrInvalidURL        = errors.New("invalid node url")
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 64 << 20
)

type NodeClient struct {
	client         *http.Client
	baseURL        string
	logger         *slog.Logger
	retries        uint64
	retryInterval  time.Duration
	tracingEnabled bool
}

func WithLogger(logger *slog.Logger) func(*NodeClient) {
	return func(c *NodeClient) {
		c.logger = logger.With(slog.String("module", "node-client"))
	}
}

// WithTimeout sets the timeout of every single request.
func WithTimeout(timeout time.Duration) func(*NodeClient) {
	return func(c *NodeClient) {
		c.client.Timeout = timeout
	}
}

// WithRetries retries failed requests with a constant backoff. Malformed responses are not retried.
func WithRetries(retries uint64, interval time.Duration) func(*NodeClient) {
	return func(c *NodeClient) {
		c.retries = retries
		c.retryInterval = interval
	}
}

func WithHTTPClient(client *http.Client) func(*NodeClient) {
	return func(c *NodeClient) {
		c.client = client
	}
}

func WithTracer() func(*NodeClient) {
	return func(c *NodeClient) {
		c.tracingEnabled = true
	}
}

func New(baseURL string, opts ...func(*NodeClient)) (*NodeClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(ErrInvalidURL, fmt.Errorf("url: %s", baseURL))
	}

	c := &NodeClient{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetBlockCount returns the height of the node's chain tip.
func (c *NodeClient) GetBlockCount(ctx context.Context) (uint64, error) {
	body, err := c.get(ctx, c.baseURL+"/block_count")
	if err != nil {
		return 0, err
	}

	var count Int
	if err = json.Unmarshal(body, &count); err != nil {
		// some node versions wrap the count in an object
		var wrapped blockCount
		if werr := json.Unmarshal(body, &wrapped); werr != nil {
			return 0, errors.Join(ErrMalformedResponse, fmt.Errorf("block count %s: %w", truncate(body), err))
		}
		count = wrapped.Count
	}

	height, err := safecast.ToUint64(int64(count))
	if err != nil {
		return 0, errors.Join(ErrMalformedResponse, fmt.Errorf("block count %d: %w", count, err))
	}

	return height, nil
}

func (c *NodeClient) GetBlock(ctx context.Context, height uint64) (*Block, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/block?blockId=%d", c.baseURL, height))
	if err != nil {
		return nil, err
	}

	var block Block
	if err = json.Unmarshal(body, &block); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("block %d: %w", height, err))
	}

	if block.Hash == "" {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("block %d has no hash", height))
	}

	return &block, nil
}

// GetPeers returns the urls of the peers known to the node.
func (c *NodeClient) GetPeers(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.baseURL+"/peers")
	if err != nil {
		return nil, err
	}

	var peers []string
	if err = json.Unmarshal(body, &peers); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("peers: %w", err))
	}

	return peers, nil
}

func (c *NodeClient) GetPeerName(ctx context.Context, peerURL string) (*PeerName, error) {
	body, err := c.get(ctx, strings.TrimRight(peerURL, "/")+"/name")
	if err != nil {
		return nil, err
	}

	var name PeerName
	if err = json.Unmarshal(body, &name); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("peer %s name: %w", peerURL, err))
	}

	return &name, nil
}

func (c *NodeClient) GetPeerStats(ctx context.Context, peerURL string) (*PeerStats, error) {
	body, err := c.get(ctx, strings.TrimRight(peerURL, "/")+"/stats")
	if err != nil {
		return nil, err
	}

	var stats PeerStats
	if err = json.Unmarshal(body, &stats); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("peer %s stats: %w", peerURL, err))
	}

	return &stats, nil
}

func (c *NodeClient) get(ctx context.Context, requestURL string) (body []byte, err error) {
	ctx, span := tracing.StartTracing(ctx, "NodeClient_get", c.tracingEnabled, attribute.String("url", requestURL))
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if c.retries == 0 {
		return c.fetch(ctx, requestURL)
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.retries)
	policyContext := backoff.WithContext(policy, ctx)

	operation := func() ([]byte, error) {
		b, err := c.fetch(ctx, requestURL)
		if err != nil && !errors.Is(err, ErrTransientFetch) {
			return nil, backoff.Permanent(err)
		}
		return b, err
	}

	notify := func(err error, nextTry time.Duration) {
		c.logger.Warn("request to node failed", slog.String("url", requestURL), slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	return backoff.RetryNotifyWithData(operation, policyContext, notify)
}

func (c *NodeClient) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransientFetch, fmt.Errorf("request to %s failed: %w", requestURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(ErrTransientFetch, fmt.Errorf("response status not OK: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Join(ErrTransientFetch, fmt.Errorf("failed to read response body: %w", err))
	}

	return body, nil
}

func truncate(body []byte) string {
	const limit = 64
	if len(body) > limit {
		return strconv.Quote(string(body[:limit])) + "..."
	}
	return strconv.Quote(string(body))
}
