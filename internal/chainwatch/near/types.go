package near

import (
	"encoding/json"
	"fmt"
	"time"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// RPCError is a NEAR JSON-RPC error. Cause carries the structured reason,
// for example UNKNOWN_BLOCK.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Cause   struct {
		Name string `json:"name"`
	} `json:"cause"`
	Data any `json:"data"`
}

func (e *RPCError) Error() string {
	if e.Cause.Name != "" {
		return fmt.Sprintf("near rpc %d %s: %s", e.Code, e.Cause.Name, e.Message)
	}
	return fmt.Sprintf("near rpc %d: %s", e.Code, e.Message)
}

type block struct {
	Header blockHeader   `json:"header"`
	Chunks []chunkHeader `json:"chunks"`
}

type blockHeader struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	Timestamp uint64 `json:"timestamp"`
}

type chunkHeader struct {
	ShardID int64 `json:"shard_id"`
}

type chunk struct {
	Transactions []transaction `json:"transactions"`
}

type transaction struct {
	Hash       string   `json:"hash"`
	SignerID   string   `json:"signer_id"`
	ReceiverID string   `json:"receiver_id"`
	Nonce      uint64   `json:"nonce"`
	Actions    []action `json:"actions"`
}

// action is either a bare name such as "CreateAccount" or a single-key object
// such as {"Transfer": {"deposit": "1"}}. Any other shape decodes to an empty
// Kind, which never matches a transfer.
type action struct {
	Kind    string
	Deposit string
}

func (a *action) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		a.Kind = name
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil || len(obj) != 1 {
		a.Kind = ""
		return nil
	}
	for kind, body := range obj {
		a.Kind = kind
		if kind != actionTransfer {
			continue
		}
		var transfer struct {
			Deposit string `json:"deposit"`
		}
		if err := json.Unmarshal(body, &transfer); err != nil {
			return err
		}
		a.Deposit = transfer.Deposit
	}
	return nil
}
