package core

import "time"

const (
	RangeWeek     TrendRange = "week"
	RangeMonth    TrendRange = "month"
	RangeHalfYear TrendRange = "halfYear"
	RangeYear     TrendRange = "year"
)

type (
	// TrendRange is a relative, calendar-aware window ending "today".
	TrendRange string

	// TrendPoint is one day of an account's running-balance trend.
	TrendPoint struct {
		Date  string  `json:"date"` // ISO "YYYY-MM-DD"
		Value float64 `json:"value"`
	}
)

func (r TrendRange) Valid() bool {
	switch r {
	case RangeWeek, RangeMonth, RangeHalfYear, RangeYear:
		return true
	default:
		return false
	}
}

// start subtracts the range from now using calendar arithmetic: "month"
// means the same day last month, not 30 days ago, so the window length
// varies with the current date.
func (r TrendRange) start(now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeHalfYear:
		return now.AddDate(0, -6, 0)
	case RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now
	}
}

// RangeTrend produces the daily running balance of one account over a
// relative window, one point per calendar day from the window start to now
// inclusive, with no gaps. The first point already includes the
// carry-forward balance: initial balance plus every transaction dated
// strictly before the window start. An unknown account id yields an empty
// series, not an error.
func RangeTrend(accountID string, rng TrendRange, now time.Time, accounts []Account, txs []Transaction) []TrendPoint {
	var account *Account
	for i := range accounts {
		if accounts[i].ID == accountID {
			account = &accounts[i]
			break
		}
	}
	if account == nil || !rng.Valid() {
		return []TrendPoint{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startDay := rng.start(today)
	startDate := Day(startDay)

	// Carry-forward balance from all history before the window, plus a
	// per-day delta index for the window itself. Same-day transactions
	// fold in list order; the fold is commutative so order cannot change
	// the result.
	balance := account.InitialBalance
	byDay := make(map[string]float64)
	for _, tx := range txs {
		if tx.AccountID != account.ID {
			continue
		}
		if tx.Date < startDate {
			balance += tx.Signed()
		} else {
			byDay[tx.Date] += tx.Signed()
		}
	}

	var series []TrendPoint
	for d := startDay; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := Day(d)
		balance += byDay[date]
		series = append(series, TrendPoint{Date: date, Value: balance})
	}
	return series
}
