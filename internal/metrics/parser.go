package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parserLatestBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "latest_block_total",
		Help:      "Count of chain head lookups.",
	}, []string{"chain", "status"})

	parserLatestBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "latest_block_duration_seconds",
		Help:      "Duration of chain head lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	parserBlockFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "block_fetch_total",
		Help:      "Count of single block fetches.",
	}, []string{"chain", "status"})

	parserBlockFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "block_fetch_duration_seconds",
		Help:      "Duration of fetching and mapping a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	parserWindowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "window_total",
		Help:      "Count of block windows processed.",
	}, []string{"chain", "status"})

	parserWindowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "window_duration_seconds",
		Help:      "Duration of processing a block window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	parserWindowSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "window_size",
		Help:      "Number of blocks per processed window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"chain"})

	parserFailedBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "failed_blocks_total",
		Help:      "Count of blocks whose fetch failed inside a window.",
	}, []string{"chain"})

	parserMatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "matched_transactions_total",
		Help:      "Count of transactions stored after subscription matching.",
	}, []string{"chain"})

	parserAheadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "ahead_total",
		Help:      "Count of iterations where the parser waited for new blocks.",
	}, []string{"chain"})

	parserCurrentBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "current_block",
		Help:      "Last block the parser has processed.",
	}, []string{"chain"})

	parserLatestBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainwatch",
		Subsystem: "parser",
		Name:      "latest_block",
		Help:      "Chain head reported by the node.",
	}, []string{"chain"})
)

// Parser tracks metrics for one chain parser.
type Parser struct {
	chain model.Chain
}

// NewParser constructs a Parser metrics collector for the chain.
func NewParser(chain model.Chain) *Parser {
	if chain == "" {
		chain = "unknown"
	}
	return &Parser{chain: chain}
}

// ObserveLatestBlock records a head lookup.
func (m Parser) ObserveLatestBlock(err error, started time.Time) {
	status := statusOf(err)
	parserLatestBlockTotal.WithLabelValues(string(m.chain), status).Inc()
	parserLatestBlockDuration.WithLabelValues(string(m.chain), status).
		Observe(time.Since(started).Seconds())
}

// ObserveBlockFetch records a single block fetch.
func (m Parser) ObserveBlockFetch(err error, started time.Time) {
	status := statusOf(err)
	parserBlockFetchTotal.WithLabelValues(string(m.chain), status).Inc()
	parserBlockFetchDuration.WithLabelValues(string(m.chain), status).
		Observe(time.Since(started).Seconds())
}

// ObserveWindow records processing of a block window.
func (m Parser) ObserveWindow(err error, blocks, failed int, started time.Time) {
	status := statusOf(err)
	parserWindowTotal.WithLabelValues(string(m.chain), status).Inc()
	parserWindowDuration.WithLabelValues(string(m.chain), status).
		Observe(time.Since(started).Seconds())
	parserWindowSize.WithLabelValues(string(m.chain)).Observe(float64(blocks))
	parserFailedBlocksTotal.WithLabelValues(string(m.chain)).Add(float64(failed))
}

// ObserveMatched adds stored transactions.
func (m Parser) ObserveMatched(transactions int) {
	parserMatchedTotal.WithLabelValues(string(m.chain)).Add(float64(transactions))
}

// ObserveAhead counts an iteration that found nothing to process.
func (m Parser) ObserveAhead() {
	parserAheadTotal.WithLabelValues(string(m.chain)).Inc()
}

// ObserveProgress publishes the processed block and the chain head.
func (m Parser) ObserveProgress(currentBlock, latestBlock int64) {
	parserCurrentBlock.WithLabelValues(string(m.chain)).Set(float64(currentBlock))
	parserLatestBlock.WithLabelValues(string(m.chain)).Set(float64(latestBlock))
}
