package core

import "sort"

// FilterRecords selects transactions inside the inclusive [from, to] day
// range and returns them newest first: date descending, tie-broken by Seq
// descending so same-day records surface in reverse insertion order. An
// empty bound is open on that side.
func FilterRecords(txs []Transaction, from, to string) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if from != "" && tx.Date < from {
			continue
		}
		if to != "" && tx.Date > to {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Seq > out[j].Seq
	})
	return out
}

// TodayRecords is the unfiltered default view: a hard equality on the
// current calendar date, not "most recent N".
func TodayRecords(txs []Transaction, today string) []Transaction {
	return FilterRecords(txs, today, today)
}
