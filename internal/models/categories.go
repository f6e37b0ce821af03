package models

// Category vocabularies. Income and expense sets are disjoint; a
// transaction's category must come from the set matching its type.

var ExpenseCategories = []string{
	"food",
	"transport",
	"shopping",
	"entertainment",
	"bills",
	"health",
	"education",
	"travel",
	"investment",
	"others",
}

var IncomeCategories = []string{
	"salary",
	"freelance",
	"business",
	"returns",
	"gift",
	"refund",
	"other-income",
}

func IsExpenseCategory(c string) bool { return contains(ExpenseCategories, c) }

func IsIncomeCategory(c string) bool { return contains(IncomeCategories, c) }

// CategoryForType reports whether category is valid for the given
// transaction type.
func CategoryForType(typ TransactionType, category string) bool {
	switch typ {
	case TypeIncome:
		return IsIncomeCategory(category)
	case TypeExpense:
		return IsExpenseCategory(category)
	default:
		return false
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
