package providers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/bitcoin"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/chain"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/ethereum"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/near"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/sui"
	"github.com/goodnatureofminers/chainwatch-backend/internal/metrics"
)

const defaultParallelBlocks = 5

// New builds the provider for cfg.Chain.
func New(ctx context.Context, cfg ChainConfig) (chain.Provider, error) {
	rpcMetrics := metrics.NewRPCClient(cfg.Chain)

	switch cfg.Chain {
	case model.Sui:
		p, err := sui.Dial(ctx, cfg.URL, cfg.RPS, rpcMetrics)
		if err != nil {
			return nil, err
		}
		return p, nil
	case model.Near:
		return near.NewProvider(near.NewClient(cfg.URL, cfg.RPS, rpcMetrics)), nil
	case model.Ethereum:
		p, err := ethereum.Dial(ctx, cfg.URL, cfg.ChainID, rpcMetrics)
		if err != nil {
			return nil, err
		}
		return p, nil
	case model.Bitcoin:
		host, disableTLS, err := bitcoinHost(cfg.URL)
		if err != nil {
			return nil, err
		}
		client, err := bitcoin.Dial(host, cfg.User, cfg.Password, disableTLS)
		if err != nil {
			return nil, fmt.Errorf("create bitcoin rpc client: %w", err)
		}
		p, err := bitcoin.NewProvider(bitcoin.NewRPCClient(client, rpcMetrics, int(cfg.RPS)), cfg.Network)
		if err != nil {
			client.Shutdown()
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported chain %q", cfg.Chain)
	}
}

// bitcoinHost turns a node URL into the host[:port][/path] form expected by
// rpcclient. Plain http and scheme-less hosts disable TLS.
func bitcoinHost(raw string) (string, bool, error) {
	if !strings.Contains(raw, "://") {
		return raw, true, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("parse bitcoin url: %w", err)
	}
	return u.Host + strings.TrimRight(u.Path, "/"), u.Scheme != "https", nil
}
