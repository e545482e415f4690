package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

type (
	StateReader interface {
		ParserState(ctx context.Context, chain model.Chain) (model.ParserState, error)
		ParserStates(ctx context.Context) ([]model.ParserState, error)
	}
	ServingReader interface {
		Serving(ctx context.Context, chain model.Chain) bool
	}
)

type ParserStatus struct {
	Chain          string    `json:"chain"`
	CurrentBlock   int64     `json:"current_block"`
	LatestBlock    int64     `json:"latest_block"`
	Lag            int64     `json:"lag"`
	AwaitBlocks    int64     `json:"await_blocks"`
	ParallelBlocks int64     `json:"parallel_blocks"`
	Serving        bool      `json:"serving"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusHandler serves parser progress as JSON on the REST gateway mux.
type StatusHandler struct {
	states    StateReader
	serving   ServingReader
	logger    *zap.Logger
	marshaler gwruntime.Marshaler
}

func NewStatusHandler(states StateReader, serving ServingReader, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		states:    states,
		serving:   serving,
		logger:    logger.Named("statusHandler"),
		marshaler: &gwruntime.JSONBuiltin{},
	}
}

// Register adds GET /v1/parsers and GET /v1/parsers/{chain} to mux.
func (h *StatusHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/parsers", h.list); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/v1/parsers/{chain}", h.get)
}

func (h *StatusHandler) list(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	states, err := h.states.ParserStates(r.Context())
	if err != nil {
		h.logger.Error("list parser states failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "parser states unavailable")
		return
	}

	out := make([]ParserStatus, 0, len(states))
	for _, s := range states {
		out = append(out, h.status(r.Context(), s))
	}
	h.write(w, http.StatusOK, out)
}

func (h *StatusHandler) get(w http.ResponseWriter, r *http.Request, params map[string]string) {
	chain, err := model.ParseChain(params["chain"])
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	state, err := h.states.ParserState(r.Context(), chain)
	if errors.Is(err, model.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "parser state not found")
		return
	}
	if err != nil {
		h.logger.Error("get parser state failed", zap.String("chain", string(chain)), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "parser state unavailable")
		return
	}
	h.write(w, http.StatusOK, h.status(r.Context(), state))
}

func (h *StatusHandler) status(ctx context.Context, s model.ParserState) ParserStatus {
	return ParserStatus{
		Chain:          string(s.Chain),
		CurrentBlock:   s.CurrentBlock,
		LatestBlock:    s.LatestBlock,
		Lag:            max(s.LatestBlock-s.CurrentBlock, 0),
		AwaitBlocks:    s.AwaitBlocks,
		ParallelBlocks: s.ParallelBlocks,
		Serving:        h.serving != nil && h.serving.Serving(ctx, s.Chain),
		UpdatedAt:      s.UpdatedAt,
	}
}

func (h *StatusHandler) writeError(w http.ResponseWriter, code int, message string) {
	h.write(w, code, errorBody{Code: code, Message: message})
}

func (h *StatusHandler) write(w http.ResponseWriter, code int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}
