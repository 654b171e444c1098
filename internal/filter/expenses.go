package filter

import (
	"fmt"
	"strings"

	"github.com/rebelice/lazystay/internal/models"
)

// ExpenseCategories are the categories the backend assigns to expenses
var ExpenseCategories = []string{
	"Rent",
	"Electricity",
	"Water",
	"Groceries",
	"Maintenance",
	"Salary",
	"Internet",
	"Other",
}

// ExpenseSections describes the Expenses filter sheet
func ExpenseSections() []Section[models.ExpenseFilter] {
	categories := make([]Option[string], len(ExpenseCategories))
	for i, c := range ExpenseCategories {
		categories[i] = Option[string]{Label: c, Value: c}
	}

	return []Section[models.ExpenseFilter]{
		&CheckboxSection[models.ExpenseFilter, string]{
			FacetKey: "category",
			Title:    "Category",
			Options:  categories,
			Field:    func(f *models.ExpenseFilter) *[]string { return &f.Category },
		},
		&CheckboxSection[models.ExpenseFilter, string]{
			FacetKey: "paymentMode",
			Title:    "Payment Mode",
			Options: []Option[string]{
				{Label: models.PaymentCash, Value: models.PaymentCash},
				{Label: models.PaymentUPI, Value: models.PaymentUPI},
				{Label: models.PaymentBank, Value: models.PaymentBank},
				{Label: models.PaymentCard, Value: models.PaymentCard},
			},
			Field: func(f *models.ExpenseFilter) *[]string { return &f.PaymentMode },
		},
		&DateRangeSection[models.ExpenseFilter]{
			FacetKey: "expenseDate",
			Title:    "Expense Date",
			Field:    func(f *models.ExpenseFilter) *models.DateRange { return &f.ExpenseDate },
		},
		amountSection(),
	}
}

// amountSection lets the user cycle through amount bands
func amountSection() *CustomSection[models.ExpenseFilter] {
	return &CustomSection[models.ExpenseFilter]{
		FacetKey: "amount",
		Title:    "Amount",
		Render: func(draft models.ExpenseFilter, _ func(models.ExpenseFilter)) string {
			var b strings.Builder
			for _, band := range models.AmountBands {
				marker := "( )"
				if band == draft.Amount {
					marker = "(•)"
				}
				fmt.Fprintf(&b, "%s %s\n", marker, band)
			}
			return strings.TrimRight(b.String(), "\n")
		},
		HandleKey: func(draft models.ExpenseFilter, key string, setDraft func(models.ExpenseFilter)) bool {
			switch key {
			case "down", "j", " ", "space":
				draft.Amount = draft.Amount.Next()
			case "up", "k":
				draft.Amount = draft.Amount.Prev()
			default:
				return false
			}
			setDraft(draft)
			return true
		},
		IsSet: func(f models.ExpenseFilter) bool { return f.Amount != models.AmountAny },
	}
}

// ApplyExpenseFilters returns the expenses visible under f and search
func ApplyExpenseFilters(expenses []models.Expense, f models.ExpenseFilter, search string) []models.Expense {
	var amount Predicate[models.Expense]
	if f.Amount != models.AmountAny {
		amount = func(e models.Expense) bool { return f.Amount.Contains(e.Amount) }
	}

	return Apply(expenses,
		Search(search,
			func(e models.Expense) string { return e.Title },
			func(e models.Expense) string { return e.PaidTo },
		),
		Member(f.Category, func(e models.Expense) string { return e.Category }),
		Member(f.PaymentMode, func(e models.Expense) string { return e.PaymentMode }),
		Within(f.ExpenseDate, func(e models.Expense) string { return e.ExpenseDate }),
		amount,
	)
}
