package http

import (
	"net/http"
	"strings"
	"time"

	"saldo/internal/advice"
)

type adviceResponse struct {
	Month  string `json:"month"`
	Advice string `json:"advice"`
}

// handleAdvice returns advice text for ?month= (default: current month).
// The endpoint never errors on generation problems; the provider degrades
// to fallback strings internally.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		month = s.now().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		writeError(w, http.StatusBadRequest, "invalid month, want YYYY-MM")
		return
	}

	if s.advisor == nil {
		writeJSON(w, http.StatusOK, adviceResponse{Month: month, Advice: advice.FallbackError})
		return
	}

	text := s.advisor.Advise(r.Context(), s.ledger.Accounts(), s.ledger.Transactions(), month)
	writeJSON(w, http.StatusOK, adviceResponse{Month: month, Advice: text})
}
