package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the subset of ethclient.Client used by the provider.
	Client interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockReceipts(ctx context.Context, blockNrOrHash rpc.BlockNumberOrHash) ([]*types.Receipt, error)
	}
	// Caller issues raw JSON-RPC requests. Blocks are fetched through it so
	// that transactions are decoded one by one.
	Caller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
