package models

import (
	"github.com/shopspring/decimal"
)

// Payment modes as sent by the backend
const (
	PaymentCash = "Cash"
	PaymentUPI  = "UPI"
	PaymentBank = "Bank Transfer"
	PaymentCard = "Card"
)

// Expense is a read-only snapshot of an expense entry
type Expense struct {
	ID          string          `yaml:"id" json:"id"`
	Title       string          `yaml:"title" json:"title"`
	Category    string          `yaml:"category" json:"category"`
	PaymentMode string          `yaml:"payment_mode" json:"paymentMode"`
	PaidTo      string          `yaml:"paid_to" json:"paidTo"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	ExpenseDate string          `yaml:"expense_date" json:"expenseDate"`
}

// AmountBand buckets expense amounts for the amount facet
type AmountBand int

const (
	AmountAny AmountBand = iota
	AmountUnder1K
	Amount1KTo5K
	Amount5KTo20K
	AmountOver20K
)

// AmountBands lists every band in display order
var AmountBands = []AmountBand{AmountAny, AmountUnder1K, Amount1KTo5K, Amount5KTo20K, AmountOver20K}

var (
	oneThousand    = decimal.NewFromInt(1000)
	fiveThousand   = decimal.NewFromInt(5000)
	twentyThousand = decimal.NewFromInt(20000)
)

// String returns the display label for the band
func (b AmountBand) String() string {
	switch b {
	case AmountUnder1K:
		return "Under ₹1,000"
	case Amount1KTo5K:
		return "₹1,000 – ₹5,000"
	case Amount5KTo20K:
		return "₹5,000 – ₹20,000"
	case AmountOver20K:
		return "Over ₹20,000"
	default:
		return "Any amount"
	}
}

// Next returns the following band, wrapping back to AmountAny
func (b AmountBand) Next() AmountBand {
	return AmountBand((int(b) + 1) % len(AmountBands))
}

// Prev returns the preceding band, wrapping to the last band
func (b AmountBand) Prev() AmountBand {
	n := len(AmountBands)
	return AmountBand((int(b) - 1 + n) % n)
}

// Contains reports whether amount falls in the band.
// Lower bounds are inclusive, upper bounds exclusive.
func (b AmountBand) Contains(amount decimal.Decimal) bool {
	switch b {
	case AmountAny:
		return true
	case AmountUnder1K:
		return amount.LessThan(oneThousand)
	case Amount1KTo5K:
		return amount.GreaterThanOrEqual(oneThousand) && amount.LessThan(fiveThousand)
	case Amount5KTo20K:
		return amount.GreaterThanOrEqual(fiveThousand) && amount.LessThan(twentyThousand)
	case AmountOver20K:
		return amount.GreaterThanOrEqual(twentyThousand)
	default:
		return false
	}
}
