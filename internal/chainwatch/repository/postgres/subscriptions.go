package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/lib/pq"
)

// Subscriptions returns the subscriptions on chain whose address is one of addresses.
func (r *Repository) Subscriptions(ctx context.Context, chain model.Chain, addresses []string) (subs []model.Subscription, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("subscriptions", chain, err, start)
	}()

	if len(addresses) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT device_id, chain, address
		FROM subscriptions
		WHERE chain = $1 AND address = ANY($2)
		ORDER BY id
	`, string(chain), pq.Array(addresses))
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    model.Subscription
			name string
		)
		if err = rows.Scan(&s.DeviceID, &name, &s.Address); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		s.Chain = model.Chain(name)
		subs = append(subs, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return subs, nil
}

func (r *Repository) DeviceByID(ctx context.Context, id int64) (device model.Device, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("device_by_id", "", err, start)
	}()

	var platform string
	err = r.db.QueryRowContext(ctx, `
		SELECT id, device_id, token, platform, is_push_enabled
		FROM devices
		WHERE id = $1
	`, id).Scan(&device.ID, &device.DeviceID, &device.Token, &platform, &device.IsPushEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Device{}, fmt.Errorf("get device %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return model.Device{}, fmt.Errorf("get device: %w", err)
	}
	device.Platform = model.Platform(platform)
	return device, nil
}
