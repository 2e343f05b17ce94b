package core

// Built-in category taxonomy. Income has flat main categories; expense main
// categories carry optional sub-category lists. Custom categories are not
// rejected anywhere; this is the default vocabulary offered to clients.

const (
	IncomeWork       = "Work income"
	IncomeInvestment = "Investment income"
	IncomeVariable   = "Variable income"
)

// IncomeCategories lists the built-in income main categories.
var IncomeCategories = []string{
	IncomeWork,
	IncomeInvestment,
	IncomeVariable,
}

// ExpenseStructure maps expense main categories to their sub-categories.
// An empty slice means the main category takes no sub-category.
var ExpenseStructure = map[string][]string{
	"Living": {
		"Food & groceries", "Clothing", "Utilities", "Telecom & fees",
		"Rent & mortgage", "Transport & vehicle", "Education",
		"Sports & leisure", "Health & supplements", "Miscellaneous",
	},
	"Tax": {
		"Property tax", "Income tax", "Vehicle & fuel tax",
	},
	"Insurance": {
		"Health insurance", "Property insurance", "Life insurance",
		"Savings & investment insurance",
	},
	"Family":             {},
	"Savings & invest":   {},
	"Variable & one-off": {},
}

// ExpenseCategories lists the built-in expense main categories in a stable
// display order.
var ExpenseCategories = []string{
	"Living",
	"Family",
	"Tax",
	"Insurance",
	"Savings & invest",
	"Variable & one-off",
}
