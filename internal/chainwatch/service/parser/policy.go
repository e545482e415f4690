package parser

import (
	"fmt"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

// FailedBlockPolicy decides how far progress advances when some blocks of a window fail.
type FailedBlockPolicy string

var (
	// FailedBlockSkip advances to the end of the window; failed blocks are not retried.
	FailedBlockSkip FailedBlockPolicy = "skip"
	// FailedBlockHalt advances only through the blocks before the first failure.
	FailedBlockHalt FailedBlockPolicy = "halt"
)

func ParseFailedBlockPolicy(s string) (FailedBlockPolicy, error) {
	switch FailedBlockPolicy(s) {
	case "", FailedBlockSkip:
		return FailedBlockSkip, nil
	case FailedBlockHalt:
		return FailedBlockHalt, nil
	default:
		return "", fmt.Errorf("unknown failed block policy %q", s)
	}
}

// apply returns the block progress advances to, the transactions of the
// accepted blocks, and the failed blocks in window order.
func (p FailedBlockPolicy) apply(w Window, results []BlockResult) (int64, []model.Transaction, []int64) {
	advanceTo := w.Last()
	var failed []int64
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed = append(failed, r.Block)
		if p == FailedBlockHalt && r.Block-1 < advanceTo {
			advanceTo = r.Block - 1
		}
	}

	var txs []model.Transaction
	for _, r := range results {
		if r.Err != nil || r.Block > advanceTo {
			continue
		}
		txs = append(txs, r.Transactions...)
	}
	return advanceTo, txs, failed
}
