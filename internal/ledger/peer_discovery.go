package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

var ErrInvalidPeerURL = errors.New("invalid peer url")

// PeerDiscovery records the peers of the remote node. Peers are probed one after another.
type PeerDiscovery struct {
	logger     *slog.Logger
	client     ChainClient
	store      store.LedgerStore
	quarantine *cache.Cache
	now        func() time.Time
}

func WithQuarantine(d time.Duration) func(*PeerDiscovery) {
	return func(pd *PeerDiscovery) {
		if d > 0 {
			pd.quarantine = cache.New(d, 2*d)
		}
	}
}

func WithPeerDiscoveryNow(nowFunc func() time.Time) func(*PeerDiscovery) {
	return func(pd *PeerDiscovery) {
		pd.now = nowFunc
	}
}

func NewPeerDiscovery(logger *slog.Logger, client ChainClient, ledgerStore store.LedgerStore, opts ...func(*PeerDiscovery)) *PeerDiscovery {
	pd := &PeerDiscovery{
		logger: logger.With(slog.String("module", "peer-discovery")),
		client: client,
		store:  ledgerStore,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(pd)
	}

	return pd
}

// Discover upserts every reachable peer and returns how many were recorded. A failing peer is
// skipped, a failing store aborts the pass.
func (pd *PeerDiscovery) Discover(ctx context.Context) (int, error) {
	peerURLs, err := pd.client.GetPeers(ctx)
	if err != nil {
		return 0, err
	}

	recorded := 0
	for _, peerURL := range peerURLs {
		if pd.quarantine != nil {
			if _, found := pd.quarantine.Get(peerURL); found {
				pd.logger.Debug("skipping quarantined peer", slog.String("peer", peerURL))
				continue
			}
		}

		peer, err := pd.probe(ctx, peerURL)
		if err != nil {
			pd.logger.Warn("failed to probe peer", slog.String("peer", peerURL), slog.String("err", err.Error()))
			if pd.quarantine != nil {
				pd.quarantine.SetDefault(peerURL, struct{}{})
			}
			continue
		}

		err = pd.upsert(ctx, peer)
		if err != nil {
			return recorded, err
		}
		recorded++
	}

	pd.logger.Debug("peers discovered", slog.Int("listed", len(peerURLs)), slog.Int("recorded", recorded))

	return recorded, nil
}

func (pd *PeerDiscovery) probe(ctx context.Context, peerURL string) (*store.Peer, error) {
	host, port, err := parsePeerAddress(peerURL)
	if err != nil {
		return nil, err
	}

	name, err := pd.client.GetPeerName(ctx, peerURL)
	if err != nil {
		return nil, err
	}

	stats, err := pd.client.GetPeerStats(ctx, peerURL)
	if err != nil {
		return nil, err
	}

	var currentBlock uint64
	if stats.CurrentBlock > 0 {
		currentBlock = uint64(stats.CurrentBlock)
	}

	return &store.Peer{
		Name:         name.Name,
		IPAddress:    host,
		Port:         port,
		Version:      name.NetworkName + ":" + name.Version,
		CurrentBlock: currentBlock,
		LastSeenAt:   pd.now().UTC(),
	}, nil
}

func (pd *PeerDiscovery) upsert(ctx context.Context, peer *store.Peer) error {
	existing, err := pd.store.GetPeer(ctx, peer.IPAddress, peer.Port)
	if err != nil {
		if !errors.Is(err, store.ErrPeerNotFound) {
			return err
		}

		_, err = pd.store.InsertPeer(ctx, peer)
		return err
	}

	peer.ID = existing.ID
	return pd.store.UpdatePeer(ctx, peer)
}

// parsePeerAddress returns host and port of a peer url. Without an explicit port the scheme's
// default port is used.
func parsePeerAddress(peerURL string) (string, int, error) {
	u, err := url.Parse(peerURL)
	if err != nil {
		return "", 0, errors.Join(ErrInvalidPeerURL, err)
	}

	host := u.Hostname()
	if host == "" {
		return "", 0, errors.Join(ErrInvalidPeerURL, fmt.Errorf("no host in %q", peerURL))
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return "", 0, errors.Join(ErrInvalidPeerURL, err)
		}
		return host, port, nil
	}

	switch u.Scheme {
	case "http":
		return host, 80, nil
	case "https":
		return host, 443, nil
	}

	return "", 0, errors.Join(ErrInvalidPeerURL, fmt.Errorf("no port in %q", peerURL))
}
