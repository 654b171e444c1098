package models

import "github.com/shopspring/decimal"

// Tenant status codes carried on advance bookings
const (
	BookingTenantActive = 1
	BookingActive       = 3
	BookingExpired      = 5
	BookingCancelled    = 6
)

// AdvanceBooking is a tenant record seen through the advance booking view
type AdvanceBooking struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Phone         string          `yaml:"phone" json:"phone"`
	RoomNo        string          `yaml:"room_no" json:"roomNo"`
	Sharing       int             `yaml:"sharing" json:"sharing"`
	Status        int             `yaml:"status" json:"status"`
	BookingDate   string          `yaml:"booking_date" json:"bookingDate"`
	JoiningDate   string          `yaml:"joining_date" json:"joiningDate"`
	AdvanceAmount decimal.Decimal `yaml:"advance_amount" json:"advanceAmount"`
}

// BookingStatusLabel returns the display label for a booking status code
func BookingStatusLabel(status int) string {
	switch status {
	case BookingTenantActive:
		return "Active"
	case BookingActive:
		return "Booked"
	case BookingExpired:
		return "Expired"
	case BookingCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
