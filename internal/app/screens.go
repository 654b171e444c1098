package app

import (
	"fmt"

	"github.com/rebelice/lazystay/internal/export"
	"github.com/rebelice/lazystay/internal/filter"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/rebelice/lazystay/internal/source"
	"github.com/rebelice/lazystay/internal/store"
	"github.com/rebelice/lazystay/internal/ui/components"
	"github.com/rebelice/lazystay/internal/ui/theme"
	"github.com/shopspring/decimal"
)

// newScreens builds one screen per list. st may be nil to keep filters in memory only.
func newScreens(th theme.Theme, cardWidth int, st *store.Store) map[models.Domain]screen {
	return map[models.Domain]screen{
		models.DomainRooms: newListScreen(screenConfig[models.Room, models.RoomFilter]{
			domain:   models.DomainRooms,
			sections: filter.RoomSections(),
			pristine: models.EmptyRoomFilter,
			apply:    filter.ApplyRoomFilters,
			pick:     func(r source.Records) []models.Room { return r.Rooms },
			table:    export.RoomsTable,
			card:     roomCard,
			empty:    "No rooms match",
		}, th, cardWidth, st),
		models.DomainTenants: newListScreen(screenConfig[models.Tenant, models.TenantFilter]{
			domain:   models.DomainTenants,
			sections: filter.TenantSections(),
			pristine: models.EmptyTenantFilter,
			apply:    filter.ApplyTenantFilters,
			pick:     func(r source.Records) []models.Tenant { return r.Tenants },
			table:    export.TenantsTable,
			card:     tenantCard,
			empty:    "No tenants match",
		}, th, cardWidth, st),
		models.DomainBookings: newListScreen(screenConfig[models.AdvanceBooking, models.AdvanceBookingFilter]{
			domain:   models.DomainBookings,
			sections: filter.AdvanceBookingSections(),
			pristine: models.EmptyAdvanceBookingFilter,
			apply:    filter.ApplyAdvanceBookingFilters,
			pick:     func(r source.Records) []models.AdvanceBooking { return r.AdvanceBookings },
			table:    export.AdvanceBookingsTable,
			card:     bookingCard,
			empty:    "No advance bookings match",
		}, th, cardWidth, st),
		models.DomainExpenses: newListScreen(screenConfig[models.Expense, models.ExpenseFilter]{
			domain:   models.DomainExpenses,
			sections: filter.ExpenseSections(),
			pristine: models.EmptyExpenseFilter,
			apply:    filter.ApplyExpenseFilters,
			pick:     func(r source.Records) []models.Expense { return r.Expenses },
			table:    export.ExpensesTable,
			card:     expenseCard,
			empty:    "No expenses match",
		}, th, cardWidth, st),
	}
}

func rupees(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// displayDate shows a raw record date as "02 Jan 2006", or as-is if it does not parse
func displayDate(raw string) string {
	if t, ok := filter.ParseDate(raw); ok {
		return t.Format("02 Jan 2006")
	}
	if raw == "" {
		return "—"
	}
	return raw
}

func roomCard(r models.Room) components.Card {
	return components.Card{
		Title:  "Room " + r.RoomNo,
		Status: models.RoomStatusLabel(r.Status),
		Lines: []string{
			fmt.Sprintf("Floor %d · %d sharing", r.Floor, r.Sharing),
			fmt.Sprintf("%d occupied · %d vacant", r.Occupied, r.VacantBeds()),
		},
		Amount: rupees(r.Rent) + " / bed",
	}
}

func tenantCard(t models.Tenant) components.Card {
	return components.Card{
		Title:  t.Name,
		Status: t.Status,
		Lines: []string{
			fmt.Sprintf("Room %s · %d sharing", t.RoomNo, t.Sharing),
			"Joined " + displayDate(t.JoiningDate),
		},
		Amount: rupees(t.Rent) + " / month",
	}
}

func bookingCard(b models.AdvanceBooking) components.Card {
	return components.Card{
		Title:  b.Name,
		Status: models.BookingStatusLabel(b.Status),
		Lines: []string{
			"Booked " + displayDate(b.BookingDate),
			"Joining " + displayDate(b.JoiningDate),
		},
		Amount: rupees(b.AdvanceAmount) + " advance",
	}
}

func expenseCard(e models.Expense) components.Card {
	lines := []string{
		fmt.Sprintf("%s · %s", e.Category, e.PaymentMode),
		displayDate(e.ExpenseDate),
	}
	if e.PaidTo != "" {
		lines[1] += " · " + e.PaidTo
	}
	return components.Card{
		Title:  e.Title,
		Lines:  lines,
		Amount: rupees(e.Amount),
	}
}
