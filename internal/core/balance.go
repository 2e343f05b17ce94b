package core

// AccountBalances folds every transaction into its account's balance and
// returns a mapping from account id to current balance. Balances are
// all-time: no date window applies. Transactions whose AccountID matches no
// account contribute to nothing; accounts with no transactions keep their
// initial balance. The fold is commutative, so input order is irrelevant.
func AccountBalances(accounts []Account, txs []Transaction) map[string]float64 {
	balances := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = a.InitialBalance
	}
	for _, tx := range txs {
		if _, ok := balances[tx.AccountID]; !ok {
			continue // dangling reference, tolerated
		}
		balances[tx.AccountID] += tx.Signed()
	}
	return balances
}

// NetAssets sums all balances. The sum over zero accounts is 0.
func NetAssets(balances map[string]float64) float64 {
	var total float64
	for _, b := range balances {
		total += b
	}
	return total
}
