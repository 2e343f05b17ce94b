package core

import "sort"

// MonthPoint is one calendar month of aggregated activity. TotalAssets is
// the running total after the month's last transaction, not an average.
type MonthPoint struct {
	Month       string  `json:"month"` // "YYYY-MM"
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	TotalAssets float64 `json:"totalAssets"`
}

// MonthlySeries buckets all transactions by calendar month and produces a
// chronological series with a running total-assets line. The running total
// starts from the sum of every account's initial balance; the chart
// assumes all initial balances predate the first transaction. Months with
// no transactions are never synthesized; gaps are real gaps.
func MonthlySeries(accounts []Account, txs []Transaction) []MonthPoint {
	var running float64
	for _, a := range accounts {
		running += a.InitialBalance
	}

	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Seq < sorted[j].Seq
	})

	var series []MonthPoint
	index := make(map[string]int)
	for _, tx := range sorted {
		month := MonthOf(tx.Date)
		i, ok := index[month]
		if !ok {
			i = len(series)
			index[month] = i
			series = append(series, MonthPoint{Month: month})
		}
		if tx.Type == Income {
			series[i].Income += tx.Amount
		} else {
			series[i].Expense += tx.Amount
		}
		running += tx.Signed()
		series[i].TotalAssets = running
	}
	return series
}
