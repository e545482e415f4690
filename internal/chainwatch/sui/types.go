package sui

import (
	"context"
	"encoding/json"
	"time"
)

type (
	// RPCClient is the subset of the go-ethereum JSON-RPC client used against a Sui fullnode.
	RPCClient interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type transactionBlocksPage struct {
	Data        []transactionBlock `json:"data"`
	NextCursor  *string            `json:"nextCursor"`
	HasNextPage bool               `json:"hasNextPage"`
}

type transactionBlock struct {
	Digest         string          `json:"digest"`
	TimestampMs    string          `json:"timestampMs"`
	Effects        effects         `json:"effects"`
	BalanceChanges []balanceChange `json:"balanceChanges"`
}

type effects struct {
	Status  executionStatus `json:"status"`
	GasUsed GasUsed         `json:"gasUsed"`
}

type executionStatus struct {
	Status string `json:"status"`
}

// GasUsed holds the gas summary of a transaction block, amounts in MIST.
type GasUsed struct {
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
}

type balanceChange struct {
	Owner    owner  `json:"owner"`
	CoinType string `json:"coinType"`
	Amount   string `json:"amount"`
}

// owner keeps only address owners; shared and immutable owners decode to an empty address.
type owner struct {
	AddressOwner string
}

func (o *owner) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return nil
	}
	var raw struct {
		AddressOwner string `json:"AddressOwner"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	o.AddressOwner = raw.AddressOwner
	return nil
}
