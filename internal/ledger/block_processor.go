package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccoveille/go-safecast"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/node_client"
	"github.com/pandanite/pandascan/internal/tracing"
)

// processedBlock describes a committed block.
type processedBlock struct {
	height      uint64
	txIDs       []string
	newAccounts []string
}

func (pb *processedBlock) events() []Event {
	events := make([]Event, 0, len(pb.newAccounts)+len(pb.txIDs)+1)
	for _, address := range pb.newAccounts {
		events = append(events, NewAccountEvent(address))
	}
	for _, txID := range pb.txIDs {
		events = append(events, NewTransactionEvent(txID))
	}

	return append(events, NewBlockEvent(pb.height))
}

func validateBlock(height uint64, block *node_client.Block) error {
	id, err := safecast.ToUint64(int64(block.ID))
	if err != nil || id != height {
		return errors.Join(ErrMalformedData, fmt.Errorf("requested block %d, got block %d", height, block.ID))
	}

	seen := make(map[string]struct{}, len(block.Transactions))
	for _, tx := range block.Transactions {
		err = validateTransaction(tx)
		if err != nil {
			return err
		}

		if _, found := seen[tx.TxID]; found {
			return errors.Join(ErrMalformedData, fmt.Errorf("duplicate transaction %s", tx.TxID))
		}
		seen[tx.TxID] = struct{}{}
	}

	return nil
}

// processBlock fetches the block at the given height and books it in a single store transaction.
func (e *Engine) processBlock(ctx context.Context, height uint64) (pb *processedBlock, err error) {
	ctx, span := tracing.StartTracing(ctx, "Engine_processBlock", e.tracingEnabled, append(e.tracingAttributes, attribute.Int64("height", int64(height)))...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	nodeBlock, err := e.client.GetBlock(ctx, height)
	if err != nil {
		return nil, err
	}

	err = validateBlock(height, nodeBlock)
	if err != nil {
		return nil, err
	}

	header := &store.Block{
		Height:           height,
		Hash:             nodeBlock.Hash,
		Nonce:            string(nodeBlock.Nonce),
		Difficulty:       int64(nodeBlock.Difficulty),
		Timestamp:        int64(nodeBlock.Timestamp),
		MerkleRoot:       nodeBlock.MerkleRoot,
		LastBlockHash:    nodeBlock.LastBlockHash,
		TransactionCount: int64(len(nodeBlock.Transactions)),
		Status:           store.BlockStatusPending,
	}

	var acc *blockAccumulator
	err = e.store.WithBlockTx(ctx, func(ctx context.Context, w store.BlockWriter) error {
		acc = &blockAccumulator{}

		blockID, err := w.InsertBlock(ctx, header)
		if err != nil {
			return err
		}
		header.ID = blockID

		for _, tx := range nodeBlock.Transactions {
			err = e.accountant.Apply(ctx, w, header, tx, acc)
			if err != nil {
				return fmt.Errorf("transaction %s: %w", tx.TxID, err)
			}
		}

		return w.FinalizeBlock(ctx, blockID, acc.aggregates())
	})
	if err != nil {
		return nil, err
	}

	txIDs := make([]string, len(nodeBlock.Transactions))
	for i, tx := range nodeBlock.Transactions {
		txIDs[i] = tx.TxID
	}

	e.logger.Debug("block processed",
		slog.Uint64("height", height),
		slog.String("hash", nodeBlock.Hash),
		slog.Int("txs", len(txIDs)),
		slog.Int64("total_value", acc.totalValue),
		slog.Int64("total_fees", acc.totalFees),
	)

	return &processedBlock{
		height:      height,
		txIDs:       txIDs,
		newAccounts: acc.newAccounts,
	}, nil
}
