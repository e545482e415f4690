package model

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type TransactionType string
type TransactionState string

var (
	TransactionTransfer TransactionType = "transfer"
)

var (
	TransactionConfirmed TransactionState = "confirmed"
	TransactionFailed    TransactionState = "failed"
	TransactionPending   TransactionState = "pending"
	TransactionUnknown   TransactionState = "unknown"
)

// Transaction is the canonical, chain-agnostic record of a value transfer.
// Amounts are decimal strings in the smallest unit of the asset.
type Transaction struct {
	ID          string
	Chain       Chain
	Hash        string
	AssetID     string
	From        string
	To          string
	Contract    *string
	Type        TransactionType
	State       TransactionState
	BlockNumber string
	Sequence    string
	Fee         string
	FeeAssetID  string
	Value       string
	Memo        *string
	CreatedAt   time.Time
}

// TransactionID builds the globally unique identifier "<chain>_<hash>".
func TransactionID(chain Chain, hash string) string {
	return string(chain) + "_" + hash
}

// Addresses returns the set of non-empty addresses involved in the transaction.
func (t Transaction) Addresses() mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, addr := range []string{t.From, t.To} {
		if addr != "" {
			set.Add(addr)
		}
	}
	return set
}
