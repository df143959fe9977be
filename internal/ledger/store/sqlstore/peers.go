package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pandanite/pandascan/internal/ledger/store"
)

const peerColumns = `id, name, ip_address, port, version, current_block, last_seen_at`

func (q *queries) GetPeer(ctx context.Context, ipAddress string, port int) (*store.Peer, error) {
	qSelect := `SELECT ` + peerColumns + ` FROM peers WHERE ip_address = ? AND port = ?`

	var peer store.Peer
	err := sqlx.GetContext(ctx, q.db, &peer, q.db.Rebind(qSelect), ipAddress, port)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPeerNotFound
		}
		return nil, err
	}

	return &peer, nil
}

func (q *queries) InsertPeer(ctx context.Context, peer *store.Peer) (int64, error) {
	qInsert := `
		INSERT INTO peers (name, ip_address, port, version, current_block, last_seen_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := q.db.QueryRowxContext(ctx, q.db.Rebind(qInsert),
		peer.Name,
		peer.IPAddress,
		peer.Port,
		peer.Version,
		int64(peer.CurrentBlock),
		peer.LastSeenAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, errors.Join(store.ErrFailedToUpsertPeer, err)
	}

	return id, nil
}

// UpdatePeer updates the peer identified by ip address and port.
func (q *queries) UpdatePeer(ctx context.Context, peer *store.Peer) error {
	qUpdate := `
		UPDATE peers
		SET name = ?,
			version = ?,
			current_block = ?,
			last_seen_at = ?
		WHERE ip_address = ? AND port = ?
	`

	res, err := q.db.ExecContext(ctx, q.db.Rebind(qUpdate),
		peer.Name,
		peer.Version,
		int64(peer.CurrentBlock),
		peer.LastSeenAt.UTC(),
		peer.IPAddress,
		peer.Port,
	)
	if err != nil {
		return errors.Join(store.ErrFailedToUpsertPeer, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Join(store.ErrFailedToUpsertPeer, err)
	}

	if rows == 0 {
		return store.ErrPeerNotFound
	}

	return nil
}

// GetActivePeers returns the peers seen at or after since, most recently seen first.
func (q *queries) GetActivePeers(ctx context.Context, since time.Time) ([]*store.Peer, error) {
	qSelect := `SELECT ` + peerColumns + ` FROM peers WHERE last_seen_at >= ? ORDER BY last_seen_at DESC, id`

	peers := make([]*store.Peer, 0)
	err := sqlx.SelectContext(ctx, q.db, &peers, q.db.Rebind(qSelect), since.UTC())
	if err != nil {
		return nil, errors.Join(store.ErrFailedToGetRows, err)
	}

	return peers, nil
}
