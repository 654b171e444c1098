package models

import (
	"slices"
	"time"
)

// Domain identifies one filterable list and doubles as its store key
type Domain string

const (
	DomainRooms    Domain = "rooms"
	DomainTenants  Domain = "tenants"
	DomainBookings Domain = "advance_bookings"
	DomainExpenses Domain = "expenses"
)

// AllDomains lists the domains in screen order
var AllDomains = []Domain{DomainRooms, DomainTenants, DomainBookings, DomainExpenses}

// Title returns the screen title for a domain
func (d Domain) Title() string {
	switch d {
	case DomainRooms:
		return "Rooms"
	case DomainTenants:
		return "Tenants"
	case DomainBookings:
		return "Advance Bookings"
	case DomainExpenses:
		return "Expenses"
	default:
		return string(d)
	}
}

// DateRange is an inclusive range of calendar days.
// A nil bound leaves that side unbounded.
type DateRange struct {
	From *time.Time `yaml:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `yaml:"to,omitempty" json:"to,omitempty"`
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Clone copies both bounds so the result shares no pointers with r
func (r DateRange) Clone() DateRange {
	return DateRange{From: cloneTime(r.From), To: cloneTime(r.To)}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func countSet(facets ...bool) int {
	n := 0
	for _, set := range facets {
		if set {
			n++
		}
	}
	return n
}

// cloneSlice never returns nil so a cloned empty facet stays "[]"
func cloneSlice[V any](s []V) []V {
	if s == nil {
		return []V{}
	}
	return slices.Clone(s)
}

// RoomFilter is the facet state of the Rooms list
type RoomFilter struct {
	Sharing []int `yaml:"sharing" json:"sharing"`
	Status  []int `yaml:"status" json:"status"`
}

// EmptyRoomFilter returns the pristine Rooms filter
func EmptyRoomFilter() RoomFilter {
	return RoomFilter{Sharing: []int{}, Status: []int{}}
}

func (f RoomFilter) Clone() RoomFilter {
	return RoomFilter{Sharing: cloneSlice(f.Sharing), Status: cloneSlice(f.Status)}
}

// ActiveCount returns the number of constrained facets
func (f RoomFilter) ActiveCount() int {
	return countSet(len(f.Sharing) > 0, len(f.Status) > 0)
}

// TenantFilter is the facet state of the Tenants list
type TenantFilter struct {
	Sharing  []int     `yaml:"sharing" json:"sharing"`
	Status   []string  `yaml:"status" json:"status"`
	JoinDate DateRange `yaml:"join_date" json:"joinDate"`
}

// EmptyTenantFilter returns the pristine Tenants filter
func EmptyTenantFilter() TenantFilter {
	return TenantFilter{Sharing: []int{}, Status: []string{}}
}

func (f TenantFilter) Clone() TenantFilter {
	return TenantFilter{
		Sharing:  cloneSlice(f.Sharing),
		Status:   cloneSlice(f.Status),
		JoinDate: f.JoinDate.Clone(),
	}
}

// ActiveCount returns the number of constrained facets
func (f TenantFilter) ActiveCount() int {
	return countSet(len(f.Sharing) > 0, len(f.Status) > 0, !f.JoinDate.IsZero())
}

// AdvanceBookingFilter is the facet state of the Advance Bookings list
type AdvanceBookingFilter struct {
	Status      []int     `yaml:"status" json:"status"`
	Sharing     []int     `yaml:"sharing" json:"sharing"`
	BookingDate DateRange `yaml:"booking_date" json:"bookingDate"`
	JoiningDate DateRange `yaml:"joining_date" json:"joiningDate"`
}

// EmptyAdvanceBookingFilter returns the pristine Advance Bookings filter
func EmptyAdvanceBookingFilter() AdvanceBookingFilter {
	return AdvanceBookingFilter{Status: []int{}, Sharing: []int{}}
}

func (f AdvanceBookingFilter) Clone() AdvanceBookingFilter {
	return AdvanceBookingFilter{
		Status:      cloneSlice(f.Status),
		Sharing:     cloneSlice(f.Sharing),
		BookingDate: f.BookingDate.Clone(),
		JoiningDate: f.JoiningDate.Clone(),
	}
}

// ActiveCount returns the number of constrained facets
func (f AdvanceBookingFilter) ActiveCount() int {
	return countSet(
		len(f.Status) > 0,
		len(f.Sharing) > 0,
		!f.BookingDate.IsZero(),
		!f.JoiningDate.IsZero(),
	)
}

// ExpenseFilter is the facet state of the Expenses list
type ExpenseFilter struct {
	Category    []string   `yaml:"category" json:"category"`
	PaymentMode []string   `yaml:"payment_mode" json:"paymentMode"`
	ExpenseDate DateRange  `yaml:"expense_date" json:"expenseDate"`
	Amount      AmountBand `yaml:"amount" json:"amount"`
}

// EmptyExpenseFilter returns the pristine Expenses filter
func EmptyExpenseFilter() ExpenseFilter {
	return ExpenseFilter{Category: []string{}, PaymentMode: []string{}}
}

func (f ExpenseFilter) Clone() ExpenseFilter {
	return ExpenseFilter{
		Category:    cloneSlice(f.Category),
		PaymentMode: cloneSlice(f.PaymentMode),
		ExpenseDate: f.ExpenseDate.Clone(),
		Amount:      f.Amount,
	}
}

// ActiveCount returns the number of constrained facets
func (f ExpenseFilter) ActiveCount() int {
	return countSet(
		len(f.Category) > 0,
		len(f.PaymentMode) > 0,
		!f.ExpenseDate.IsZero(),
		f.Amount != AmountAny,
	)
}
