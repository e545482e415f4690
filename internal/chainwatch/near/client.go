package near

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/chain"
	"golang.org/x/time/rate"
)

// ErrUnknownBlock is returned when the node has no block or chunk at the requested height.
var ErrUnknownBlock = errors.New("unknown block")

// Client is a minimal NEAR JSON-RPC client. NEAR expects named object params,
// so requests are built here rather than through a positional-params client.
type Client struct {
	httpClient *http.Client
	url        string
	requestID  atomic.Int64
	limiter    *rate.Limiter
	metrics    RPCMetrics
}

// NewClient creates a NEAR client. A non-positive rps disables pacing.
func NewClient(url string, rps float64, metrics RPCMetrics) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		url:        url,
		limiter:    limiter,
		metrics:    metrics,
	}
}

func (c *Client) finalBlock(ctx context.Context) (block, error) {
	var b block
	err := c.call(ctx, "final_block", "block", map[string]any{"finality": "final"}, &b)
	return b, err
}

func (c *Client) block(ctx context.Context, height int64) (block, error) {
	var b block
	err := c.call(ctx, "block", "block", map[string]any{"block_id": height}, &b)
	return b, err
}

func (c *Client) chunk(ctx context.Context, height, shardID int64) (chunk, error) {
	var ch chunk
	err := c.call(ctx, "chunk", "chunk", map[string]any{"block_id": height, "shard_id": shardID}, &ch)
	return ch, err
}

func (c *Client) call(ctx context.Context, operation, method string, params, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		return chain.Network(operation, err)
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return chain.Decode(operation, fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return chain.Network(operation, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return chain.Network(operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return chain.Network(operation, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return chain.Network(operation, fmt.Errorf("http status %d: %s", resp.StatusCode, respBody))
	}

	var rpcResp response
	if err = json.Unmarshal(respBody, &rpcResp); err != nil {
		return chain.Decode(operation, fmt.Errorf("unmarshal response: %w", err))
	}
	if rpcResp.Error != nil {
		if rpcResp.Error.Cause.Name == "UNKNOWN_BLOCK" || rpcResp.Error.Cause.Name == "UNKNOWN_CHUNK" {
			return chain.Decode(operation, fmt.Errorf("%w: %w", ErrUnknownBlock, rpcResp.Error))
		}
		return chain.Network(operation, rpcResp.Error)
	}
	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return chain.Decode(operation, fmt.Errorf("unmarshal result: %w", err))
	}
	return nil
}
