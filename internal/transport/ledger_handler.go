// Package transport exposes HTTP handlers.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/hashledger/internal/ledger"
	"github.com/goodnatureofminers/hashledger/internal/model"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

// LedgerHandler serves read access to a chain and accepts transactions.
type LedgerHandler struct {
	chain     Chain
	submitter Submitter
	logger    *zap.Logger
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(chain Chain, submitter Submitter, logger *zap.Logger) (*LedgerHandler, error) {
	if chain == nil {
		return nil, errors.New("ledger handler chain is required")
	}
	if submitter == nil {
		return nil, errors.New("ledger handler submitter is required")
	}
	return &LedgerHandler{chain: chain, submitter: submitter, logger: logger}, nil
}

// Register mounts the handler routes on mux.
func (h *LedgerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /blocks", h.blocks)
	mux.HandleFunc("GET /blocks/{index}", h.block)
	mux.HandleFunc("GET /pending", h.pending)
	mux.HandleFunc("GET /validate", h.validate)
	mux.HandleFunc("POST /transactions", h.submit)
}

type blockResponse struct {
	model.Block
	Rendered string `json:"rendered"`
}

type validateResponse struct {
	Valid  bool `json:"valid"`
	Height int  `json:"height"`
	Issues any  `json:"issues"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *LedgerHandler) blocks(w http.ResponseWriter, _ *http.Request) {
	blocks := h.chain.Blocks()
	out := make([]blockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = blockResponse{Block: b, Rendered: b.String()}
	}
	h.write(w, http.StatusOK, out)
}

func (h *LedgerHandler) block(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		h.write(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid block index %q", r.PathValue("index"))})
		return
	}
	b, err := h.chain.Block(i)
	if err != nil {
		h.write(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	h.write(w, http.StatusOK, blockResponse{Block: b, Rendered: b.String()})
}

func (h *LedgerHandler) pending(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, h.chain.Pending())
}

// validate runs the linkage checks, or a full audit when ?difficulty is set.
func (h *LedgerHandler) validate(w http.ResponseWriter, r *http.Request) {
	var report ledger.Report
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		difficulty, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			h.write(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid difficulty %q", raw)})
			return
		}
		report, err = h.chain.Audit(r.Context(), uint(difficulty))
		if err != nil {
			h.logger.Error("audit failed", zap.Error(err))
			h.write(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
	} else {
		report = h.chain.Report()
	}

	resp := validateResponse{Valid: report.Valid(), Height: report.Height, Issues: report.Issues}
	if report.Issues == nil {
		resp.Issues = []struct{}{}
	}
	h.write(w, http.StatusOK, resp)
}

func (h *LedgerHandler) submit(w http.ResponseWriter, r *http.Request) {
	var tx model.Transaction
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tx); err != nil {
		h.write(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decode transaction: %v", err)})
		return
	}

	if err := h.submitter.Submit(r.Context(), tx); err != nil {
		h.logger.Warn("transaction rejected", zap.Error(err))
		h.write(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	h.write(w, http.StatusAccepted, tx)
}

func (h *LedgerHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}
