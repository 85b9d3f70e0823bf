package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/txproof/internal/enrichment"
	"github.com/gabapcia/txproof/internal/entropywatch"
	"github.com/gabapcia/txproof/internal/monitor"
	"github.com/gabapcia/txproof/internal/pkg/logger"

	"github.com/gorilla/mux"
)

type transactionsResponse struct {
	CycleID      string                   `json:"cycle_id"`
	UpdatedAt    *time.Time               `json:"updated_at"`
	Transactions []enrichment.Transaction `json:"transactions"`
}

type entropyResponse struct {
	CycleID   string             `json:"cycle_id"`
	UpdatedAt *time.Time         `json:"updated_at"`
	Entropy   entropywatch.State `json:"entropy"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Monitor string `json:"monitor"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func updatedAt(s monitor.Snapshot) *time.Time {
	if s.IsEmpty() {
		return nil
	}
	return &s.UpdatedAt
}

func (a *api) listTransactions(w http.ResponseWriter, r *http.Request) {
	snapshot := a.monitor.Snapshot()

	txs := snapshot.Transactions
	if txs == nil {
		txs = []enrichment.Transaction{}
	}

	writeJSON(w, r, http.StatusOK, transactionsResponse{
		CycleID:      snapshot.CycleID,
		UpdatedAt:    updatedAt(snapshot),
		Transactions: txs,
	})
}

func (a *api) getEntropy(w http.ResponseWriter, r *http.Request) {
	snapshot := a.monitor.Snapshot()

	writeJSON(w, r, http.StatusOK, entropyResponse{
		CycleID:   snapshot.CycleID,
		UpdatedAt: updatedAt(snapshot),
		Entropy:   snapshot.Entropy,
	})
}

func (a *api) verifyTransaction(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	tx, err := a.monitor.VerifyTransaction(r.Context(), hash)
	switch {
	case errors.Is(err, monitor.ErrForbidden):
		writeJSON(w, r, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, monitor.ErrTransactionNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, monitor.ErrNotRunning):
		writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	case err != nil:
		logger.Error(r.Context(), "on-demand verification failed", "transaction.hash", hash, "error", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		writeJSON(w, r, http.StatusOK, tx)
	}
}

func (a *api) health(w http.ResponseWriter, r *http.Request) {
	state := a.monitor.State()

	res := healthResponse{Status: "ok", Monitor: state.String()}
	status := http.StatusOK
	if state != monitor.Running {
		res.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, r, status, res)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "failed to write response", "error", err)
	}
}
