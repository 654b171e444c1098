package filter

import (
	"slices"

	"github.com/rebelice/lazystay/internal/models"
)

// bookingStatuses are the only statuses the advance booking view ever shows
var bookingStatuses = []int{models.BookingActive, models.BookingExpired, models.BookingCancelled}

// AdvanceBookingSections describes the Advance Bookings filter sheet
func AdvanceBookingSections() []Section[models.AdvanceBookingFilter] {
	return []Section[models.AdvanceBookingFilter]{
		&CheckboxSection[models.AdvanceBookingFilter, int]{
			FacetKey: "status",
			Title:    "Status",
			Options: []Option[int]{
				{Label: models.BookingStatusLabel(models.BookingActive), Value: models.BookingActive},
				{Label: models.BookingStatusLabel(models.BookingExpired), Value: models.BookingExpired},
				{Label: models.BookingStatusLabel(models.BookingCancelled), Value: models.BookingCancelled},
			},
			Field: func(f *models.AdvanceBookingFilter) *[]int { return &f.Status },
		},
		&CheckboxSection[models.AdvanceBookingFilter, int]{
			FacetKey: "sharing",
			Title:    "Sharing",
			Options:  sharingOptions(),
			Field:    func(f *models.AdvanceBookingFilter) *[]int { return &f.Sharing },
		},
		&DateRangeSection[models.AdvanceBookingFilter]{
			FacetKey: "bookingDate",
			Title:    "Booking Date",
			Field:    func(f *models.AdvanceBookingFilter) *models.DateRange { return &f.BookingDate },
		},
		&DateRangeSection[models.AdvanceBookingFilter]{
			FacetKey:    "joiningDate",
			Title:       "Joining Date",
			AllowFuture: true,
			Field:       func(f *models.AdvanceBookingFilter) *models.DateRange { return &f.JoiningDate },
		},
	}
}

// ApplyAdvanceBookingFilters returns the bookings visible under f and search.
// Records outside the booking statuses are dropped before any facet runs.
func ApplyAdvanceBookingFilters(bookings []models.AdvanceBooking, f models.AdvanceBookingFilter, search string) []models.AdvanceBooking {
	return Apply(bookings,
		Where(func(b models.AdvanceBooking) bool { return slices.Contains(bookingStatuses, b.Status) }),
		Search(search, func(b models.AdvanceBooking) string { return b.Name }),
		Member(f.Status, func(b models.AdvanceBooking) int { return b.Status }),
		Member(f.Sharing, func(b models.AdvanceBooking) int { return b.Sharing }),
		Within(f.BookingDate, func(b models.AdvanceBooking) string { return b.BookingDate }),
		Within(f.JoiningDate, func(b models.AdvanceBooking) string { return b.JoiningDate }),
	)
}
