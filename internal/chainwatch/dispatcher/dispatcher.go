// Package dispatcher publishes device notifications to a Redis stream read by
// the push delivery workers.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	payloadField = "payload"

	defaultStream = "chainwatch:notifications"
	defaultMaxLen = 1_000_000
)

type Metrics interface {
	Observe(chain model.Chain, skipped bool, err error, started time.Time)
}

type Config struct {
	Stream string
	// MaxLen is the approximate stream length kept by XADD trimming.
	MaxLen int64
}

// Message is the stream entry payload.
type Message struct {
	ID            string `msgpack:"id"`
	Token         string `msgpack:"token"`
	Platform      string `msgpack:"platform"`
	Chain         string `msgpack:"chain"`
	TransactionID string `msgpack:"tx_id"`
	Hash          string `msgpack:"hash"`
	From          string `msgpack:"from"`
	To            string `msgpack:"to"`
	Value         string `msgpack:"value"`
	AssetID       string `msgpack:"asset_id"`
}

type Dispatcher struct {
	client  redis.Cmdable
	stream  string
	maxLen  int64
	metrics Metrics
	newID   func() uuid.UUID
}

// Dial connects to Redis and checks the connection.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func New(client redis.Cmdable, cfg Config, metrics Metrics) (*Dispatcher, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if metrics == nil {
		return nil, errors.New("dispatcher metrics is required")
	}
	if cfg.Stream == "" {
		cfg.Stream = defaultStream
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = defaultMaxLen
	}
	return &Dispatcher{
		client:  client,
		stream:  cfg.Stream,
		maxLen:  cfg.MaxLen,
		metrics: metrics,
		newID:   uuid.New,
	}, nil
}

// Push enqueues one notification of tx for device. Devices with push disabled
// are skipped without error.
func (d *Dispatcher) Push(ctx context.Context, device model.Device, tx model.Transaction) (err error) {
	started := time.Now()
	if !device.IsPushEnabled {
		d.metrics.Observe(tx.Chain, true, nil, started)
		return nil
	}
	defer func() {
		d.metrics.Observe(tx.Chain, false, err, started)
	}()

	payload, err := msgpack.Marshal(d.message(device, tx))
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	err = d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: d.stream,
		MaxLen: d.maxLen,
		Approx: true,
		Values: map[string]interface{}{payloadField: payload},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd notification: %w", err)
	}
	return nil
}

func (d *Dispatcher) message(device model.Device, tx model.Transaction) Message {
	return Message{
		ID:            d.newID().String(),
		Token:         device.Token,
		Platform:      string(device.Platform),
		Chain:         string(tx.Chain),
		TransactionID: tx.ID,
		Hash:          tx.Hash,
		From:          tx.From,
		To:            tx.To,
		Value:         tx.Value,
		AssetID:       tx.AssetID,
	}
}

// DecodeMessage reads a stream entry payload.
func DecodeMessage(payload []byte) (Message, error) {
	var m Message
	if err := msgpack.Unmarshal(payload, &m); err != nil {
		return Message{}, fmt.Errorf("decode notification: %w", err)
	}
	return m, nil
}
