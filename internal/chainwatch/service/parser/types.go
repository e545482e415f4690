package parser

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Provider interface {
		Chain() model.Chain
		LatestBlock(ctx context.Context) (int64, error)
		Transactions(ctx context.Context, block int64) ([]model.Transaction, error)
	}
	StateRepository interface {
		InitParserState(ctx context.Context, state model.ParserState) error
		ParserState(ctx context.Context, chain model.Chain) (model.ParserState, error)
		SetLatestBlock(ctx context.Context, chain model.Chain, block int64) error
		SetCurrentBlock(ctx context.Context, chain model.Chain, block int64) error
	}
	SubscriptionMatcher interface {
		Subscriptions(ctx context.Context, chain model.Chain, addresses mapset.Set[string]) ([]model.Subscription, error)
	}
	DeviceRepository interface {
		DeviceByID(ctx context.Context, id int64) (model.Device, error)
	}
	TransactionStore interface {
		AddTransactions(ctx context.Context, txs []model.Transaction) error
	}
	Dispatcher interface {
		Push(ctx context.Context, device model.Device, tx model.Transaction) error
	}
	HealthReporter interface {
		SetServing(chain model.Chain, serving bool)
	}
	Metrics interface {
		ObserveLatestBlock(err error, started time.Time)
		ObserveBlockFetch(err error, started time.Time)
		ObserveWindow(err error, blocks, failed int, started time.Time)
		ObserveMatched(transactions int)
		ObserveAhead()
		ObserveProgress(currentBlock, latestBlock int64)
	}

	BlockFetcher interface {
		Fetch(ctx context.Context, w Window) []BlockResult
	}
	BatchProcessor interface {
		Match(ctx context.Context, txs []model.Transaction) (Batch, error)
		Dispatch(ctx context.Context, notifications []Notification)
	}
)
