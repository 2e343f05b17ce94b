package advice

import (
	"fmt"
	"strings"
	"time"

	"saldo/internal/core"
)

// Summary is the shaped financial context fed into the advice prompt:
// current-month totals, investment income, the previous month's surplus
// and the account names. Pure input shaping, no generation here.
type Summary struct {
	Month            string
	Income           float64
	Expense          float64
	InvestmentIncome float64
	LastMonthSurplus float64
	AccountNames     []string
}

// PreviousMonth returns the "YYYY-MM" key one calendar month before the
// given one.
func PreviousMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, -1, 0).Format("2006-01")
}

// BuildSummary aggregates one month of activity for the prompt.
func BuildSummary(accounts []core.Account, txs []core.Transaction, month string) Summary {
	s := Summary{Month: month}

	lastMonth := PreviousMonth(month)
	var lastIncome, lastExpense float64
	for _, tx := range txs {
		switch core.MonthOf(tx.Date) {
		case month:
			if tx.Type == core.Income {
				s.Income += tx.Amount
				if tx.MainCategory == core.IncomeInvestment {
					s.InvestmentIncome += tx.Amount
				}
			} else {
				s.Expense += tx.Amount
			}
		case lastMonth:
			if tx.Type == core.Income {
				lastIncome += tx.Amount
			} else {
				lastExpense += tx.Amount
			}
		}
	}
	s.LastMonthSurplus = lastIncome - lastExpense

	for _, a := range accounts {
		s.AccountNames = append(s.AccountNames, a.Name)
	}
	return s
}

// Prompt renders the summary into the generation request.
func (s Summary) Prompt() string {
	return fmt.Sprintf(`You are an adorable, warm and slightly playful money buddy.
Here is my financial report for this month:
- Total income this month: %.2f
- Total expense this month: %.2f
- Investment income: %.2f
- Last month's surplus: %.2f
- My virtual accounts: %s

Based on these numbers, give me three conversational observations and tips:
1. Compare this month's surplus and spending with last month's (e.g. "you saved ... more than last month!").
2. Encourage me about the investment income (e.g. "wow, your investments are growing!").
3. Point out any unusual spending or something worth praising.

Requirements:
- Talk like a close friend, with words like "wow!", "hehe" and "keep it up".
- Keep each tip under 40 words.
- Use plenty of emoji.`,
		s.Income, s.Expense, s.InvestmentIncome, s.LastMonthSurplus,
		strings.Join(s.AccountNames, ", "))
}
