// Package bitcoin implements the Bitcoin chain provider.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// BtcToSatoshis converts a BTC amount reported by the node to satoshis.
func BtcToSatoshis(value float64) (decimal.Decimal, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if amt < 0 {
		return decimal.Zero, fmt.Errorf("negative amount: %d", amt)
	}
	return decimal.NewFromInt(int64(amt)), nil
}
