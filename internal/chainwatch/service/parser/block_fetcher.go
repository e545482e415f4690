package parser

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BlockResult is the outcome of fetching one block.
type BlockResult struct {
	Block        int64
	Transactions []model.Transaction
	Err          error
}

type blockFetcher struct {
	provider Provider
	metrics  Metrics
	logger   *zap.Logger
}

// Fetch requests every block of the window concurrently and waits for all of
// them. Results are in block order; a failed block carries its error.
func (f *blockFetcher) Fetch(ctx context.Context, w Window) []BlockResult {
	results := make([]BlockResult, w.Len())

	var g errgroup.Group
	g.SetLimit(max(w.Len(), 1))
	for i, block := range w.Blocks() {
		i, block := i, block
		g.Go(func() error {
			started := time.Now()
			txs, err := f.provider.Transactions(ctx, block)
			f.metrics.ObserveBlockFetch(err, started)
			if err != nil {
				f.logger.Warn("fetch block failed", zap.Int64("block", block), zap.Error(err))
			}
			results[i] = BlockResult{Block: block, Transactions: txs, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
