package models

import "github.com/shopspring/decimal"

// Tenant status labels as sent by the backend
const (
	TenantActive = "Active"
	TenantDues   = "Dues"
	TenantNotice = "Notice"
	TenantLeft   = "Left"
)

// Tenant is a read-only snapshot of a tenant listing
type Tenant struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	Phone       string          `yaml:"phone" json:"phone"`
	RoomNo      string          `yaml:"room_no" json:"roomNo"`
	Sharing     int             `yaml:"sharing" json:"sharing"`
	Status      string          `yaml:"status" json:"status"`
	JoiningDate string          `yaml:"joining_date" json:"joiningDate"`
	Rent        decimal.Decimal `yaml:"rent" json:"rent"`
}
