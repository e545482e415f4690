// Package ethereum implements the Ethereum chain provider for native ETH transfers.
package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/chain"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/goodnatureofminers/chainwatch-backend/pkg/safe"
)

// Provider reads Ethereum blocks with their receipts.
type Provider struct {
	client  Client
	caller  Caller
	signer  types.Signer
	metrics RPCMetrics
}

// rpcBlock is the part of an eth_getBlockByNumber response the provider
// reads. Transactions stay raw so that one unknown type does not fail the block.
type rpcBlock struct {
	Timestamp    hexutil.Uint64    `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
}

// Dial connects to an execution client JSON-RPC endpoint.
func Dial(ctx context.Context, url string, chainID int64, metrics RPCMetrics) (*Provider, error) {
	rpcClient, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}
	return NewProvider(ethclient.NewClient(rpcClient), rpcClient, big.NewInt(chainID), metrics), nil
}

// NewProvider builds a Provider that recovers senders with the latest signer for chainID.
func NewProvider(client Client, caller Caller, chainID *big.Int, metrics RPCMetrics) *Provider {
	return &Provider{
		client:  client,
		caller:  caller,
		signer:  types.LatestSignerForChainID(chainID),
		metrics: metrics,
	}
}

func (p *Provider) Chain() model.Chain {
	return model.Ethereum
}

// LatestBlock returns the most recent block number.
func (p *Provider) LatestBlock(ctx context.Context) (_ int64, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("block_number", err, started)
	}()

	n, err := p.client.BlockNumber(ctx)
	if err != nil {
		return 0, classify("block_number", err)
	}
	height, err := safe.Int64(n)
	if err != nil {
		return 0, chain.Decode("block_number", err)
	}
	return height, nil
}

// Transactions returns native transfers of the block: a recipient, empty calldata and a positive value.
func (p *Provider) Transactions(ctx context.Context, height int64) ([]model.Transaction, error) {
	block, err := p.block(ctx, height)
	if err != nil {
		return nil, err
	}
	receipts, err := p.receipts(ctx, height)
	if err != nil {
		return nil, err
	}

	byHash := make(map[common.Hash]*types.Receipt, len(receipts))
	for _, r := range receipts {
		byHash[r.TxHash] = r
	}

	createdAt := time.Unix(int64(block.Timestamp), 0).UTC()
	txs := make([]model.Transaction, 0)
	for _, raw := range block.Transactions {
		tx := new(types.Transaction)
		if err := tx.UnmarshalJSON(raw); err != nil {
			if errors.Is(err, types.ErrTxTypeNotSupported) {
				continue
			}
			return nil, chain.Decode("block_by_number", fmt.Errorf("decode tx in block %d: %w", height, err))
		}
		if !isNativeTransfer(tx) {
			continue
		}
		receipt, ok := byHash[tx.Hash()]
		if !ok {
			return nil, chain.Decode("block_receipts", fmt.Errorf("no receipt for tx %s in block %d", tx.Hash(), height))
		}
		from, err := types.Sender(p.signer, tx)
		if err != nil {
			// Skip senders this signer cannot recover.
			continue
		}
		txs = append(txs, mapTransaction(tx, receipt, from, height, createdAt))
	}
	return txs, nil
}

func (p *Provider) block(ctx context.Context, height int64) (_ *rpcBlock, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("block_by_number", err, started)
	}()

	var raw json.RawMessage
	err = p.caller.CallContext(ctx, &raw, "eth_getBlockByNumber", hexutil.EncodeBig(big.NewInt(height)), true)
	if err != nil {
		return nil, classify("block_by_number", fmt.Errorf("get block %d: %w", height, err))
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, chain.Decode("block_by_number", fmt.Errorf("block %d not found", height))
	}
	var block rpcBlock
	if err = json.Unmarshal(raw, &block); err != nil {
		return nil, chain.Decode("block_by_number", fmt.Errorf("decode block %d: %w", height, err))
	}
	return &block, nil
}

func (p *Provider) receipts(ctx context.Context, height int64) (_ []*types.Receipt, err error) {
	started := time.Now()
	defer func() {
		p.metrics.Observe("block_receipts", err, started)
	}()
	receipts, err := p.client.BlockReceipts(ctx, rpc.BlockNumberOrHashWithNumber(rpc.BlockNumber(height)))
	if err != nil {
		return nil, classify("block_receipts", fmt.Errorf("get receipts %d: %w", height, err))
	}
	return receipts, nil
}

// classify treats transaction types this client cannot decode as malformed
// responses rather than transport failures.
func classify(op string, err error) error {
	if errors.Is(err, types.ErrTxTypeNotSupported) {
		return chain.Decode(op, err)
	}
	return chain.Classify(op, err)
}

func isNativeTransfer(tx *types.Transaction) bool {
	return tx.To() != nil && len(tx.Data()) == 0 && tx.Value().Sign() > 0
}

func mapTransaction(tx *types.Transaction, receipt *types.Receipt, from common.Address, height int64, createdAt time.Time) model.Transaction {
	price := receipt.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice()
	}
	fee := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), price)

	state := model.TransactionFailed
	if receipt.Status == types.ReceiptStatusSuccessful {
		state = model.TransactionConfirmed
	}

	hash := tx.Hash().Hex()
	return model.Transaction{
		ID:          model.TransactionID(model.Ethereum, hash),
		Chain:       model.Ethereum,
		Hash:        hash,
		AssetID:     model.Ethereum.AssetID(),
		From:        from.Hex(),
		To:          tx.To().Hex(),
		Type:        model.TransactionTransfer,
		State:       state,
		BlockNumber: strconv.FormatInt(height, 10),
		Sequence:    strconv.FormatUint(tx.Nonce(), 10),
		Fee:         fee.String(),
		FeeAssetID:  model.Ethereum.AssetID(),
		Value:       tx.Value().String(),
		CreatedAt:   createdAt,
	}
}
