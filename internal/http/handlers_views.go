package http

import (
	"net/http"
	"strings"

	"saldo/internal/core"
)

type balancesResponse struct {
	Balances  map[string]float64 `json:"balances"`
	NetAssets float64            `json:"netAssets"`
}

func (s *Server) handleBalances(w http.ResponseWriter, _ *http.Request) {
	balances, net := s.ledger.Balances()
	writeJSON(w, http.StatusOK, balancesResponse{Balances: balances, NetAssets: net})
}

func (s *Server) handleMonthly(w http.ResponseWriter, _ *http.Request) {
	series := s.ledger.Monthly()
	if series == nil {
		series = []core.MonthPoint{}
	}
	writeJSON(w, http.StatusOK, series)
}

// handleTrend returns the daily balance series for ?account= over ?range=
// (week, month, halfYear, year). An unknown account yields an empty series,
// matching the calculator; only a malformed range is a client error.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(r.URL.Query().Get("account"))
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account parameter")
		return
	}

	rng := core.TrendRange(strings.TrimSpace(r.URL.Query().Get("range")))
	if rng == "" {
		rng = core.RangeWeek
	}
	if !rng.Valid() {
		writeError(w, http.StatusBadRequest, "invalid range, want one of week, month, halfYear, year")
		return
	}

	writeJSON(w, http.StatusOK, s.ledger.Trend(accountID, rng, s.now()))
}

type categoriesResponse struct {
	Income           []string            `json:"income"`
	Expense          []string            `json:"expense"`
	ExpenseStructure map[string][]string `json:"expenseStructure"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Income:           core.IncomeCategories,
		Expense:          core.ExpenseCategories,
		ExpenseStructure: core.ExpenseStructure,
	})
}
