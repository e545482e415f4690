package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

const insertTransactionsQuery = `
INSERT INTO transactions (
	id,
	chain,
	hash,
	asset_id,
	from_address,
	to_address,
	contract,
	type,
	state,
	block_number,
	sequence,
	fee,
	fee_asset_id,
	value,
	memo,
	created_at
) VALUES`

// AddTransactions appends txs in one batch. Rows sharing an ID collapse on merge,
// so appending an overlapping batch again is harmless.
func (r *Repository) AddTransactions(ctx context.Context, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_transactions", firstChain(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, tx := range txs {
		if err = batch.Append(
			tx.ID,
			string(tx.Chain),
			tx.Hash,
			tx.AssetID,
			tx.From,
			tx.To,
			tx.Contract,
			string(tx.Type),
			string(tx.State),
			tx.BlockNumber,
			tx.Sequence,
			tx.Fee,
			tx.FeeAssetID,
			tx.Value,
			tx.Memo,
			tx.CreatedAt,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func firstChain(txs []model.Transaction) model.Chain {
	if len(txs) == 0 {
		return ""
	}
	return txs[0].Chain
}
