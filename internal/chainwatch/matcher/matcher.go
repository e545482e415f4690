// Package matcher pairs transactions with the subscriptions watching their addresses.
package matcher

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

// SubscriptionStore looks up subscriptions for a set of addresses on one chain.
type SubscriptionStore interface {
	Subscriptions(ctx context.Context, chain model.Chain, addresses []string) ([]model.Subscription, error)
}

// Match is one subscription whose address appears in a transaction.
type Match struct {
	Subscription model.Subscription
	Transaction  model.Transaction
}

// Matcher resolves subscriptions and pairs them with transactions.
type Matcher struct {
	store SubscriptionStore
}

func New(store SubscriptionStore) *Matcher {
	return &Matcher{store: store}
}

// Subscriptions returns subscriptions on chain whose address is in addresses.
// An empty set never reaches the store.
func (m *Matcher) Subscriptions(ctx context.Context, chain model.Chain, addresses mapset.Set[string]) ([]model.Subscription, error) {
	if addresses == nil || addresses.Cardinality() == 0 {
		return nil, nil
	}
	subs, err := m.store.Subscriptions(ctx, chain, addresses.ToSlice())
	if err != nil {
		return nil, fmt.Errorf("get subscriptions: %w", err)
	}
	return subs, nil
}

// Pairs matches every subscription with every transaction touching its
// address, subscription-major.
func Pairs(subs []model.Subscription, txs []model.Transaction) []Match {
	var matches []Match
	for _, sub := range subs {
		for _, tx := range txs {
			if tx.Addresses().Contains(sub.Address) {
				matches = append(matches, Match{Subscription: sub, Transaction: tx})
			}
		}
	}
	return matches
}

// Addresses is the union of non-empty addresses touched by txs.
func Addresses(txs []model.Transaction) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, tx := range txs {
		set.Append(tx.Addresses().ToSlice()...)
	}
	return set
}
