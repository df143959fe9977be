package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pandanite/pandascan/internal/ledger/store"
	"github.com/pandanite/pandascan/internal/node_client"
)

// ZeroAddress is used as sender of issuance transactions by some nodes.
var ZeroAddress = strings.Repeat("0", 50)

var ErrMalformedData = errors.New("malformed chain data")

// blockAccumulator collects the aggregates of the block being processed.
type blockAccumulator struct {
	totalValue  int64
	totalFees   int64
	minedBy     *int64
	blockReward int64
	newAccounts []string
}

func (acc *blockAccumulator) aggregates() store.BlockAggregates {
	return store.BlockAggregates{
		TotalValue:  acc.totalValue,
		TotalFees:   acc.totalFees,
		MinedBy:     acc.minedBy,
		BlockReward: acc.blockReward,
	}
}

// Accountant applies the effect of single transactions to account balances.
type Accountant struct {
	knownAccounts map[string]string
}

func NewAccountant(knownAccounts map[string]string) *Accountant {
	labels := make(map[string]string, len(knownAccounts))
	for address, label := range knownAccounts {
		labels[address] = label
	}

	return &Accountant{knownAccounts: labels}
}

func (a *Accountant) Label(address string) string {
	return a.knownAccounts[address]
}

func hasSender(tx node_client.Transaction) bool {
	return tx.From != "" && tx.From != ZeroAddress
}

func validateTransaction(tx node_client.Transaction) error {
	switch {
	case tx.TxID == "":
		return errors.Join(ErrMalformedData, errors.New("transaction without id"))
	case tx.To == "":
		return errors.Join(ErrMalformedData, fmt.Errorf("transaction %s has no receiver", tx.TxID))
	case tx.Amount < 0:
		return errors.Join(ErrMalformedData, fmt.Errorf("transaction %s has negative amount %d", tx.TxID, tx.Amount))
	case tx.Fee < 0:
		return errors.Join(ErrMalformedData, fmt.Errorf("transaction %s has negative fee %d", tx.TxID, tx.Fee))
	}

	return nil
}

// Apply books one transaction of the block. The block header must already be inserted.
func (a *Accountant) Apply(ctx context.Context, w store.BlockWriter, block *store.Block, tx node_client.Transaction, acc *blockAccumulator) error {
	amount := int64(tx.Amount)
	fee := int64(tx.Fee)

	var fromID *int64
	var fromAddress string

	if hasSender(tx) {
		id, err := a.debit(ctx, w, block.Timestamp, tx, acc)
		if err != nil {
			return err
		}
		fromID = &id
		fromAddress = tx.From
	}

	var toID int64
	if fromID != nil && tx.From == tx.To {
		// the debit above already counted the transaction
		err := w.UpdateAccount(ctx, *fromID, store.AccountDelta{Balance: amount})
		if err != nil {
			return err
		}
		toID = *fromID
	} else {
		var txCount int64
		if fromID != nil {
			txCount = 1
		}

		id, err := a.credit(ctx, w, block.Timestamp, tx.To, amount, txCount, acc)
		if err != nil {
			return err
		}
		toID = id
	}

	if fromID == nil {
		acc.minedBy = &toID
		acc.blockReward = amount
	}

	_, err := w.InsertTransaction(ctx, &store.Transaction{
		TxID:          tx.TxID,
		BlockID:       block.ID,
		BlockHeight:   block.Height,
		FromAccountID: fromID,
		FromAddress:   fromAddress,
		ToAccountID:   toID,
		ToAddress:     tx.To,
		Amount:        amount,
		Fee:           fee,
		Timestamp:     block.Timestamp,
		IsGenerate:    fromID == nil,
		SigningKey:    tx.SigningKey,
		Signature:     tx.Signature,
	})
	if err != nil {
		return err
	}

	acc.totalValue += amount
	acc.totalFees += fee

	return nil
}

func (a *Accountant) debit(ctx context.Context, w store.BlockWriter, timestamp int64, tx node_client.Transaction, acc *blockAccumulator) (int64, error) {
	amount := int64(tx.Amount) + int64(tx.Fee)

	sender, err := w.GetAccount(ctx, tx.From)
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		return 0, err
	}

	if sender != nil {
		err = w.UpdateAccount(ctx, sender.ID, store.AccountDelta{
			Balance:    -amount,
			TxCount:    1,
			LastSeenAt: timestamp,
			PublicKey:  tx.SigningKey,
			Label:      a.Label(tx.From),
		})
		if err != nil {
			return 0, err
		}

		return sender.ID, nil
	}

	id, err := w.InsertAccount(ctx, &store.Account{
		Address:     tx.From,
		PublicKey:   tx.SigningKey,
		Balance:     -amount,
		FirstSeenAt: timestamp,
		LastSeenAt:  timestamp,
		TxCount:     1,
		Label:       a.Label(tx.From),
	})
	if err != nil {
		return 0, err
	}
	acc.newAccounts = append(acc.newAccounts, tx.From)

	return id, nil
}

func (a *Accountant) credit(ctx context.Context, w store.BlockWriter, timestamp int64, address string, amount int64, txCount int64, acc *blockAccumulator) (int64, error) {
	receiver, err := w.GetAccount(ctx, address)
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		return 0, err
	}

	if receiver != nil {
		err = w.UpdateAccount(ctx, receiver.ID, store.AccountDelta{
			Balance:    amount,
			TxCount:    txCount,
			LastSeenAt: timestamp,
			Label:      a.Label(address),
		})
		if err != nil {
			return 0, err
		}

		return receiver.ID, nil
	}

	id, err := w.InsertAccount(ctx, &store.Account{
		Address:     address,
		Balance:     amount,
		FirstSeenAt: timestamp,
		LastSeenAt:  timestamp,
		TxCount:     txCount,
		Label:       a.Label(address),
	})
	if err != nil {
		return 0, err
	}
	acc.newAccounts = append(acc.newAccounts, address)

	return id, nil
}
