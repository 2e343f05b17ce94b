package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"saldo/internal/core"
	"saldo/internal/ledger"
)

type createTransactionRequest struct {
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	MainCategory string  `json:"mainCategory"`
	SubCategory  string  `json:"subCategory"`
	Amount       float64 `json:"amount"`
	Note         string  `json:"note"`
	AccountID    string  `json:"accountId"`
}

// handleListTransactions returns transactions filtered by the inclusive
// ?from= and ?to= day bounds. Without bounds only today's records come
// back, newest first.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))

	for _, bound := range []string{from, to} {
		if bound == "" {
			continue
		}
		if _, err := core.ParseDay(bound); err != nil {
			writeError(w, http.StatusBadRequest, "invalid date bound, want YYYY-MM-DD")
			return
		}
	}

	records := s.ledger.Records(from, to, s.now())
	if records == nil {
		records = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := s.ledger.CreateTransaction(r.Context(), core.Transaction{
		Date:         strings.TrimSpace(req.Date),
		Type:         core.TxType(req.Type),
		MainCategory: sanitizeInput(req.MainCategory),
		SubCategory:  sanitizeInput(req.SubCategory),
		Amount:       req.Amount,
		Note:         sanitizeInput(req.Note),
		AccountID:    strings.TrimSpace(req.AccountID),
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidDate),
			errors.Is(err, core.ErrInvalidType),
			errors.Is(err, core.ErrEmptyCategory),
			errors.Is(err, core.ErrInvalidAmount),
			errors.Is(err, core.ErrEmptyAccountRef):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.ErrorContext(r.Context(), "create transaction failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save transaction")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "delete transaction failed", "transaction_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
