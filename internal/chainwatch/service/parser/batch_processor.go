package parser

import (
	"context"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/matcher"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"go.uber.org/zap"
)

// Notification is a pending push of a transaction to a device.
type Notification struct {
	Device      model.Device
	Transaction model.Transaction
}

// Batch holds the matched transactions of a window, deduplicated by ID, and
// one notification per resolved match.
type Batch struct {
	Transactions  []model.Transaction
	Notifications []Notification
}

type batchProcessor struct {
	chain      model.Chain
	matcher    SubscriptionMatcher
	devices    DeviceRepository
	dispatcher Dispatcher
	logger     *zap.Logger
}

func (p *batchProcessor) Match(ctx context.Context, txs []model.Transaction) (Batch, error) {
	if len(txs) == 0 {
		return Batch{}, nil
	}
	subs, err := p.matcher.Subscriptions(ctx, p.chain, matcher.Addresses(txs))
	if err != nil {
		return Batch{}, persistenceError("subscriptions", err)
	}

	var (
		batch Batch
		seen  = make(map[string]struct{})
	)
	for _, m := range matcher.Pairs(subs, txs) {
		if _, ok := seen[m.Transaction.ID]; !ok {
			seen[m.Transaction.ID] = struct{}{}
			batch.Transactions = append(batch.Transactions, m.Transaction)
		}

		device, err := p.devices.DeviceByID(ctx, m.Subscription.DeviceID)
		if err != nil {
			p.logger.Warn("device lookup failed; skipping notification",
				zap.Int64("device_id", m.Subscription.DeviceID),
				zap.String("tx", m.Transaction.ID),
				zap.Error(err),
			)
			continue
		}
		batch.Notifications = append(batch.Notifications, Notification{Device: device, Transaction: m.Transaction})
	}
	return batch, nil
}

// Dispatch pushes every notification once. Failures are logged and dropped.
func (p *batchProcessor) Dispatch(ctx context.Context, notifications []Notification) {
	for _, n := range notifications {
		if err := p.dispatcher.Push(ctx, n.Device, n.Transaction); err != nil {
			p.logger.Warn("push notification failed",
				zap.Int64("device_id", n.Device.ID),
				zap.String("tx", n.Transaction.ID),
				zap.Error(err),
			)
		}
	}
}
