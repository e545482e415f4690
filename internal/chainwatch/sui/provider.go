// Package sui implements the Sui chain provider.
package sui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/chain"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// Provider reads Sui checkpoints as blocks.
type Provider struct {
	client  RPCClient
	limiter *rate.Limiter
	metrics RPCMetrics
}

// Dial connects to a Sui fullnode JSON-RPC endpoint. A non-positive rps disables pacing.
func Dial(ctx context.Context, url string, rps float64, metrics RPCMetrics) (*Provider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial sui rpc: %w", err)
	}
	return NewProvider(client, newLimiter(rps), metrics), nil
}

// NewProvider builds a Provider over an existing JSON-RPC client.
func NewProvider(client RPCClient, limiter *rate.Limiter, metrics RPCMetrics) *Provider {
	if limiter == nil {
		limiter = newLimiter(0)
	}
	return &Provider{client: client, limiter: limiter, metrics: metrics}
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func (p *Provider) Chain() model.Chain {
	return model.Sui
}

// LatestBlock returns the latest checkpoint sequence number.
func (p *Provider) LatestBlock(ctx context.Context) (int64, error) {
	var seq string
	if err := p.call(ctx, "get_latest_checkpoint", &seq, "sui_getLatestCheckpointSequenceNumber"); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(seq, 10, 64)
	if err != nil {
		return 0, chain.Decode("get_latest_checkpoint", fmt.Errorf("parse checkpoint %q: %w", seq, err))
	}
	return n, nil
}

// Transactions returns the native SUI transfers of a checkpoint.
func (p *Provider) Transactions(ctx context.Context, block int64) ([]model.Transaction, error) {
	query := map[string]any{
		"filter": map[string]any{
			"Checkpoint": strconv.FormatInt(block, 10),
		},
		"options": map[string]any{
			"showEffects":        true,
			"showInput":          false,
			"showBalanceChanges": true,
		},
	}

	var (
		cursor *string
		txs    []model.Transaction
	)
	for page := 0; page < maxPages; page++ {
		var res transactionBlocksPage
		if err := p.call(ctx, "query_transaction_blocks", &res, "suix_queryTransactionBlocks", query, cursor, pageLimit, false); err != nil {
			return nil, err
		}
		for _, tb := range res.Data {
			if tx, ok := mapTransaction(tb, block); ok {
				txs = append(txs, tx)
			}
		}
		if !res.HasNextPage || res.NextCursor == nil {
			return txs, nil
		}
		cursor = res.NextCursor
	}
	return nil, chain.Decode("query_transaction_blocks", fmt.Errorf("checkpoint %d exceeds %d pages", block, maxPages))
}

func (p *Provider) call(ctx context.Context, operation string, result any, method string, args ...any) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe(operation, err, started)
	}()
	if err = p.limiter.Wait(ctx); err != nil {
		return chain.Network(operation, err)
	}
	return chain.Classify(operation, p.client.CallContext(ctx, result, method, args...))
}

// mapTransaction recognizes a plain SUI transfer: exactly two balance changes
// of the native coin, the negative one belonging to the sender.
func mapTransaction(tb transactionBlock, block int64) (model.Transaction, bool) {
	changes := tb.BalanceChanges
	if len(changes) != 2 || changes[0].CoinType != coinType || changes[1].CoinType != coinType {
		return model.Transaction{}, false
	}
	from, to := changes[1], changes[0]
	if strings.HasPrefix(changes[0].Amount, "-") {
		from, to = changes[0], changes[1]
	}

	state := model.TransactionFailed
	if tb.Effects.Status.Status == "success" {
		state = model.TransactionConfirmed
	}

	return model.Transaction{
		ID:          model.TransactionID(model.Sui, tb.Digest),
		Chain:       model.Sui,
		Hash:        tb.Digest,
		AssetID:     model.Sui.AssetID(),
		From:        from.Owner.AddressOwner,
		To:          to.Owner.AddressOwner,
		Type:        model.TransactionTransfer,
		State:       state,
		BlockNumber: strconv.FormatInt(block, 10),
		Sequence:    "0",
		Fee:         Fee(tb.Effects.GasUsed).String(),
		FeeAssetID:  model.Sui.AssetID(),
		Value:       to.Amount,
		CreatedAt:   timestamp(tb.TimestampMs),
	}, true
}

// Fee returns computation plus storage cost minus the storage rebate, floored at zero.
func Fee(gas GasUsed) decimal.Decimal {
	return model.ClampedFee(
		model.AmountOrZero(gas.StorageRebate),
		model.AmountOrZero(gas.ComputationCost),
		model.AmountOrZero(gas.StorageCost),
	)
}

func timestamp(ms string) time.Time {
	v, err := strconv.ParseInt(ms, 10, 64)
	if err != nil || v <= 0 {
		return time.Now().UTC()
	}
	return time.UnixMilli(v).UTC()
}
