// Package chain defines the contract every chain integration implements.
package chain

import (
	"context"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

// Provider reads blocks of a single chain and maps them to canonical transactions.
//
// Transactions returns only the transfers the integration recognizes, in the
// order they appear in the block. Errors are either *NetworkError or *DecodeError.
type Provider interface {
	Chain() model.Chain
	LatestBlock(ctx context.Context) (int64, error)
	Transactions(ctx context.Context, block int64) ([]model.Transaction, error)
}
