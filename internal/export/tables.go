package export

import (
	"strconv"

	"github.com/rebelice/lazystay/internal/models"
)

// RoomsTable flattens rooms for export
func RoomsTable(rooms []models.Room) Table {
	t := Table{
		Title:  models.DomainRooms.Title(),
		Header: []string{"Room", "Floor", "Sharing", "Occupied", "Status", "Rent"},
	}
	for _, r := range rooms {
		t.Rows = append(t.Rows, []string{
			r.RoomNo,
			strconv.Itoa(r.Floor),
			strconv.Itoa(r.Sharing),
			strconv.Itoa(r.Occupied),
			models.RoomStatusLabel(r.Status),
			r.Rent.StringFixed(2),
		})
	}
	return t
}

// TenantsTable flattens tenants for export
func TenantsTable(tenants []models.Tenant) Table {
	t := Table{
		Title:  models.DomainTenants.Title(),
		Header: []string{"Name", "Phone", "Room", "Sharing", "Status", "Joined", "Rent"},
	}
	for _, tn := range tenants {
		t.Rows = append(t.Rows, []string{
			tn.Name,
			tn.Phone,
			tn.RoomNo,
			strconv.Itoa(tn.Sharing),
			tn.Status,
			tn.JoiningDate,
			tn.Rent.StringFixed(2),
		})
	}
	return t
}

// AdvanceBookingsTable flattens advance bookings for export
func AdvanceBookingsTable(bookings []models.AdvanceBooking) Table {
	t := Table{
		Title:  models.DomainBookings.Title(),
		Header: []string{"Name", "Phone", "Room", "Sharing", "Status", "Booked", "Joining", "Advance"},
	}
	for _, b := range bookings {
		t.Rows = append(t.Rows, []string{
			b.Name,
			b.Phone,
			b.RoomNo,
			strconv.Itoa(b.Sharing),
			models.BookingStatusLabel(b.Status),
			b.BookingDate,
			b.JoiningDate,
			b.AdvanceAmount.StringFixed(2),
		})
	}
	return t
}

// ExpensesTable flattens expenses for export
func ExpensesTable(expenses []models.Expense) Table {
	t := Table{
		Title:  models.DomainExpenses.Title(),
		Header: []string{"Title", "Category", "Payment Mode", "Paid To", "Date", "Amount"},
	}
	for _, e := range expenses {
		t.Rows = append(t.Rows, []string{
			e.Title,
			e.Category,
			e.PaymentMode,
			e.PaidTo,
			e.ExpenseDate,
			e.Amount.StringFixed(2),
		})
	}
	return t
}
