package bitcoin

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/chain"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/goodnatureofminers/chainwatch-backend/pkg/workerpool"
	"github.com/shopspring/decimal"
)

const defaultResolveWorkers = 8

// Provider reads Bitcoin blocks and recognizes simple one-input payments.
type Provider struct {
	rpc            NodeClient
	decoder        *scriptDecoder
	resolveWorkers int
}

// NewProvider creates a Provider for the given network name (mainnet, testnet, regtest, signet).
func NewProvider(rpc NodeClient, network string) (*Provider, error) {
	decoder, err := newScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	return &Provider{
		rpc:            rpc,
		decoder:        decoder,
		resolveWorkers: defaultResolveWorkers,
	}, nil
}

func (p *Provider) Chain() model.Chain {
	return model.Bitcoin
}

// LatestBlock returns the height of the best block.
func (p *Provider) LatestBlock(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := p.rpc.GetBlockCount()
	if err != nil {
		return 0, chain.Classify("get_block_count", err)
	}
	return count, nil
}

// Transactions returns the recognized payments of the block at height.
func (p *Provider) Transactions(ctx context.Context, height int64) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := p.rpc.GetBlockHash(height)
	if err != nil {
		return nil, chain.Classify("get_block_hash", fmt.Errorf("get block hash at height %d: %w", height, err))
	}
	src, err := p.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, chain.Classify("get_block", fmt.Errorf("get block %s: %w", hash, err))
	}

	candidates := make([]btcjson.TxRawResult, 0)
	for _, tx := range src.Tx {
		if isCandidate(tx) {
			candidates = append(candidates, tx)
		}
	}

	prevouts, err := workerpool.Map(ctx, p.resolveWorkers, candidates, p.resolvePrevout)
	if err != nil {
		return nil, err
	}

	blockTime := time.Unix(src.Time, 0).UTC()
	txs := make([]model.Transaction, 0, len(candidates))
	for i, tx := range candidates {
		mapped, ok, err := p.mapTransaction(tx, prevouts[i], height, blockTime)
		if err != nil {
			return nil, err
		}
		if ok {
			txs = append(txs, mapped)
		}
	}
	return txs, nil
}

// isCandidate keeps non-coinbase transactions with one input and one or two outputs.
func isCandidate(tx btcjson.TxRawResult) bool {
	if len(tx.Vin) != 1 || tx.Vin[0].IsCoinBase() {
		return false
	}
	return len(tx.Vout) == 1 || len(tx.Vout) == 2
}

func (p *Provider) resolvePrevout(_ context.Context, tx btcjson.TxRawResult) (btcjson.Vout, error) {
	vin := tx.Vin[0]
	hash, err := chainhash.NewHashFromStr(vin.Txid)
	if err != nil {
		return btcjson.Vout{}, chain.Decode("get_raw_transaction", fmt.Errorf("tx %s prev txid: %w", tx.Txid, err))
	}
	prev, err := p.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return btcjson.Vout{}, chain.Classify("get_raw_transaction", fmt.Errorf("get prev tx %s: %w", vin.Txid, err))
	}
	if int(vin.Vout) >= len(prev.Vout) {
		return btcjson.Vout{}, chain.Decode("get_raw_transaction", fmt.Errorf("prev tx %s has no output %d", vin.Txid, vin.Vout))
	}
	return prev.Vout[vin.Vout], nil
}

func (p *Provider) mapTransaction(tx btcjson.TxRawResult, prevout btcjson.Vout, height int64, blockTime time.Time) (model.Transaction, bool, error) {
	from := p.decoder.address(prevout)
	if from == "" {
		return model.Transaction{}, false, nil
	}
	input, err := BtcToSatoshis(prevout.Value)
	if err != nil {
		return model.Transaction{}, false, chain.Decode("map_transaction", fmt.Errorf("tx %s input value: %w", tx.Txid, err))
	}

	var (
		to      string
		value   decimal.Decimal
		outputs = make([]decimal.Decimal, 0, len(tx.Vout))
	)
	for _, vout := range tx.Vout {
		amount, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.Transaction{}, false, chain.Decode("map_transaction", fmt.Errorf("tx %s output %d value: %w", tx.Txid, vout.N, err))
		}
		outputs = append(outputs, amount)
		addr := p.decoder.address(vout)
		if to == "" && addr != "" && addr != from {
			to, value = addr, amount
		}
	}
	if to == "" {
		to = p.decoder.address(tx.Vout[0])
		value = outputs[0]
	}
	if to == "" {
		return model.Transaction{}, false, nil
	}

	return model.Transaction{
		ID:          model.TransactionID(model.Bitcoin, tx.Txid),
		Chain:       model.Bitcoin,
		Hash:        tx.Txid,
		AssetID:     model.Bitcoin.AssetID(),
		From:        from,
		To:          to,
		Type:        model.TransactionTransfer,
		State:       model.TransactionConfirmed,
		BlockNumber: strconv.FormatInt(height, 10),
		Sequence:    strconv.FormatUint(uint64(tx.Vin[0].Sequence), 10),
		Fee:         model.ClampedFee(decimal.Sum(decimal.Zero, outputs...), input).String(),
		FeeAssetID:  model.Bitcoin.AssetID(),
		Value:       value.String(),
		CreatedAt:   blockTime,
	}, true, nil
}
