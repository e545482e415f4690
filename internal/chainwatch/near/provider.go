// Package near implements the NEAR chain provider.
package near

import (
	"context"
	"strconv"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"golang.org/x/sync/errgroup"
)

// Provider reads NEAR blocks and their chunks.
type Provider struct {
	client *Client
}

func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

func (p *Provider) Chain() model.Chain {
	return model.Near
}

// LatestBlock returns the height of the latest final block.
func (p *Provider) LatestBlock(ctx context.Context) (int64, error) {
	b, err := p.client.finalBlock(ctx)
	if err != nil {
		return 0, err
	}
	return b.Header.Height, nil
}

// Transactions fetches every chunk of the block concurrently and returns the
// native transfers in chunk order.
func (p *Provider) Transactions(ctx context.Context, height int64) ([]model.Transaction, error) {
	b, err := p.client.block(ctx, height)
	if err != nil {
		return nil, err
	}

	chunks := make([]chunk, len(b.Chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, header := range b.Chunks {
		i, header := i, header
		g.Go(func() error {
			ch, err := p.client.chunk(gctx, b.Header.Height, header.ShardID)
			if err != nil {
				return err
			}
			chunks[i] = ch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var txs []model.Transaction
	for _, ch := range chunks {
		for _, tx := range ch.Transactions {
			if mapped, ok := mapTransaction(b.Header, tx); ok {
				txs = append(txs, mapped)
			}
		}
	}
	return txs, nil
}

// mapTransaction recognizes transactions of one or two actions whose last action is a Transfer.
func mapTransaction(header blockHeader, tx transaction) (model.Transaction, bool) {
	if len(tx.Actions) != 1 && len(tx.Actions) != 2 {
		return model.Transaction{}, false
	}
	last := tx.Actions[len(tx.Actions)-1]
	if last.Kind != actionTransfer {
		return model.Transaction{}, false
	}

	return model.Transaction{
		ID:          model.TransactionID(model.Near, tx.Hash),
		Chain:       model.Near,
		Hash:        tx.Hash,
		AssetID:     model.Near.AssetID(),
		From:        tx.SignerID,
		To:          tx.ReceiverID,
		Type:        model.TransactionTransfer,
		State:       model.TransactionConfirmed,
		BlockNumber: strconv.FormatInt(header.Height, 10),
		Sequence:    strconv.FormatUint(tx.Nonce, 10),
		Fee:         transferFee,
		FeeAssetID:  model.Near.AssetID(),
		Value:       last.Deposit,
		CreatedAt:   blockTime(header.Timestamp),
	}, true
}

func blockTime(nanos uint64) time.Time {
	if nanos == 0 || nanos > uint64(1<<63-1) {
		return time.Now().UTC()
	}
	return time.Unix(0, int64(nanos)).UTC()
}
