package models

import "github.com/shopspring/decimal"

// Room status codes as sent by the backend
const (
	RoomVacant           = 0
	RoomPartiallyFilled  = 1
	RoomFull             = 2
	RoomUnderMaintenance = 3
)

// Room is a read-only snapshot of a room listing
type Room struct {
	ID       string          `yaml:"id" json:"id"`
	RoomNo   string          `yaml:"room_no" json:"roomNo"`
	Floor    int             `yaml:"floor" json:"floor"`
	Sharing  int             `yaml:"sharing" json:"sharing"`
	Status   int             `yaml:"status" json:"status"`
	Occupied int             `yaml:"occupied" json:"occupied"`
	Rent     decimal.Decimal `yaml:"rent" json:"rent"`
}

// VacantBeds returns the number of unoccupied beds
func (r Room) VacantBeds() int {
	if r.Occupied >= r.Sharing {
		return 0
	}
	return r.Sharing - r.Occupied
}

// RoomStatusLabel returns the display label for a room status code
func RoomStatusLabel(status int) string {
	switch status {
	case RoomVacant:
		return "Vacant"
	case RoomPartiallyFilled:
		return "Partially Filled"
	case RoomFull:
		return "Full"
	case RoomUnderMaintenance:
		return "Under Maintenance"
	default:
		return "Unknown"
	}
}
