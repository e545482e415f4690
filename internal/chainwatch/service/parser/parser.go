// Package parser follows one chain: it refreshes the head, catches up in
// bounded windows of concurrently fetched blocks, stores the transactions that
// match subscriptions and notifies the subscribed devices.
package parser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/goodnatureofminers/chainwatch-backend/internal/clock"
	"go.uber.org/zap"
)

// Config holds the per-chain parser settings.
type Config struct {
	// Initial is stored as the progress record when the chain has none yet.
	Initial model.ParserState
	// Interval is the wait while the parser is ahead of the chain.
	Interval time.Duration
	// Backoff decides the wait after a failed iteration. Defaults to a fixed Interval.
	Backoff clock.Backoff
	Policy  FailedBlockPolicy
}

// Service runs the parser loop of a single chain.
type Service struct {
	logger    *zap.Logger
	chain     model.Chain
	initial   model.ParserState
	provider  Provider
	state     StateRepository
	store     TransactionStore
	metrics   Metrics
	health    HealthReporter
	backoff   clock.Backoff
	interval  time.Duration
	policy    FailedBlockPolicy
	sleep     clock.SleepFunc
	fetcher   BlockFetcher
	processor BatchProcessor

	initialized bool
	failures    int
}

// NewService builds a Service for the provider's chain.
func NewService(
	cfg Config,
	provider Provider,
	state StateRepository,
	devices DeviceRepository,
	store TransactionStore,
	subscriptions SubscriptionMatcher,
	dispatcher Dispatcher,
	metrics Metrics,
	health HealthReporter,
	logger *zap.Logger,
) (*Service, error) {
	if provider == nil {
		return nil, errors.New("parser provider is required")
	}
	if metrics == nil {
		return nil, errors.New("parser metrics is required")
	}
	if health == nil {
		health = nopHealth{}
	}
	chain := provider.Chain()
	if cfg.Initial.Chain != "" && cfg.Initial.Chain != chain {
		return nil, fmt.Errorf("initial state is for %s, provider is %s", cfg.Initial.Chain, chain)
	}
	cfg.Initial.Chain = chain
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Backoff == nil {
		cfg.Backoff = clock.FixedBackoff{Interval: cfg.Interval}
	}
	if cfg.Policy == "" {
		cfg.Policy = FailedBlockSkip
	}

	logger = logger.With(zap.String("chain", string(chain)))

	return &Service{
		logger:   logger,
		chain:    chain,
		initial:  cfg.Initial,
		provider: provider,
		state:    state,
		store:    store,
		metrics:  metrics,
		health:   health,
		backoff:  cfg.Backoff,
		interval: cfg.Interval,
		policy:   cfg.Policy,
		sleep:    clock.SleepWithContext,
		fetcher: &blockFetcher{
			provider: provider,
			metrics:  metrics,
			logger:   logger.Named("blockFetcher"),
		},
		processor: &batchProcessor{
			chain:      chain,
			matcher:    subscriptions,
			devices:    devices,
			dispatcher: dispatcher,
			logger:     logger.Named("batchProcessor"),
		},
	}, nil
}

// Run follows the chain until the context is canceled. Failed iterations are
// retried after the backoff delay without limit.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("parser started", zap.String("policy", string(s.policy)), zap.Duration("interval", s.interval))
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.failures++
			delay := s.backoff.Delay(s.failures)
			var persistErr *PersistenceError
			if errors.As(err, &persistErr) {
				s.logger.Error("persistence failed, backing off",
					zap.String("operation", persistErr.Op), zap.Error(persistErr.Err), zap.Duration("sleep", delay))
			} else {
				s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			}
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.failures = 0
	}
}

// run performs one head refresh and, unless the parser is ahead, a catch-up pass.
func (s *Service) run(ctx context.Context) error {
	if !s.initialized {
		if err := s.state.InitParserState(ctx, s.initial); err != nil {
			return persistenceError("init_parser_state", err)
		}
		s.initialized = true
	}

	state, err := s.state.ParserState(ctx, s.chain)
	if err != nil {
		return persistenceError("parser_state", err)
	}

	started := time.Now()
	latest, err := s.provider.LatestBlock(ctx)
	s.metrics.ObserveLatestBlock(err, started)
	if err != nil {
		s.health.SetServing(s.chain, false)
		s.logger.Error("fetch latest block failed", zap.Error(err))
		return fmt.Errorf("fetch latest block: %w", err)
	}
	s.health.SetServing(s.chain, true)

	if err := s.state.SetLatestBlock(ctx, s.chain, latest); err != nil {
		return persistenceError("set_latest_block", err)
	}
	s.metrics.ObserveProgress(state.CurrentBlock, latest)

	if state.IsAhead(latest) {
		s.metrics.ObserveAhead()
		s.logger.Debug("parser is ahead; sleeping",
			zap.Int64("current_block", state.CurrentBlock),
			zap.Int64("latest_block", latest),
			zap.Duration("sleep", s.interval),
		)
		return s.sleep(ctx, s.interval)
	}

	windows, err := s.catchUp(ctx)
	if err != nil {
		return err
	}
	if windows == 0 {
		// The head is exactly await_blocks+1 ahead: nothing is safe to process yet.
		return s.sleep(ctx, s.interval)
	}
	return nil
}

// catchUp processes windows until the persisted progress reaches the safe head.
// It returns the number of windows processed.
func (s *Service) catchUp(ctx context.Context) (int, error) {
	windows := 0
	for {
		if err := ctx.Err(); err != nil {
			return windows, err
		}
		state, err := s.state.ParserState(ctx, s.chain)
		if err != nil {
			return windows, persistenceError("parser_state", err)
		}
		w := NextWindow(state)
		if w.Empty() {
			return windows, nil
		}
		if err := s.processWindow(ctx, state, w); err != nil {
			return windows, err
		}
		windows++
	}
}

func (s *Service) processWindow(ctx context.Context, state model.ParserState, w Window) (err error) {
	started := time.Now()
	var failed []int64
	defer func() {
		s.metrics.ObserveWindow(err, w.Len(), len(failed), started)
	}()

	results := s.fetcher.Fetch(ctx, w)
	if err = ctx.Err(); err != nil {
		return err
	}

	advanceTo, txs, failed := s.policy.apply(w, results)

	batch, err := s.processor.Match(ctx, txs)
	if err != nil {
		return err
	}

	if len(batch.Transactions) > 0 {
		if err = s.store.AddTransactions(ctx, batch.Transactions); err != nil {
			return persistenceError("add_transactions", err)
		}
	}
	if advanceTo > state.CurrentBlock {
		if err = s.state.SetCurrentBlock(ctx, s.chain, advanceTo); err != nil {
			return persistenceError("set_current_block", err)
		}
	}

	s.processor.Dispatch(ctx, batch.Notifications)

	s.metrics.ObserveMatched(len(batch.Transactions))
	s.metrics.ObserveProgress(max(advanceTo, state.CurrentBlock), state.LatestBlock)
	s.logger.Info("parser window complete",
		zap.Int64("start", w.Start),
		zap.Int64("end", w.Last()),
		zap.Int64("current_block", max(advanceTo, state.CurrentBlock)),
		zap.Int64("latest_block", state.LatestBlock),
		zap.Int("transactions", len(txs)),
		zap.Int("matched", len(batch.Transactions)),
		zap.Int("notifications", len(batch.Notifications)),
		zap.Int("failed_blocks", len(failed)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if len(failed) > 0 && s.policy == FailedBlockHalt {
		return &FailedBlocksError{Blocks: failed}
	}
	return nil
}

type nopHealth struct{}

func (nopHealth) SetServing(model.Chain, bool) {}
