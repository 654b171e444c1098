package source

import (
	"context"
	"fmt"

	"github.com/rebelice/lazystay/internal/models"
)

// Source loads the raw record lists shown by the list screens
type Source interface {
	Rooms(ctx context.Context) ([]models.Room, error)
	Tenants(ctx context.Context) ([]models.Tenant, error)
	AdvanceBookings(ctx context.Context) ([]models.AdvanceBooking, error)
	Expenses(ctx context.Context) ([]models.Expense, error)
	Close()
}

// LoadError reports which list failed to load
type LoadError struct {
	Domain models.Domain
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Domain.Title(), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Records is one full load of every list
type Records struct {
	Rooms           []models.Room
	Tenants         []models.Tenant
	AdvanceBookings []models.AdvanceBooking
	Expenses        []models.Expense
}

// Load fetches the records of a single domain into recs
func Load(ctx context.Context, src Source, domain models.Domain, recs *Records) error {
	var err error
	switch domain {
	case models.DomainRooms:
		recs.Rooms, err = src.Rooms(ctx)
	case models.DomainTenants:
		recs.Tenants, err = src.Tenants(ctx)
	case models.DomainBookings:
		recs.AdvanceBookings, err = src.AdvanceBookings(ctx)
	case models.DomainExpenses:
		recs.Expenses, err = src.Expenses(ctx)
	default:
		err = fmt.Errorf("unknown list %q", domain)
	}
	if err != nil {
		return &LoadError{Domain: domain, Err: err}
	}
	return nil
}

// LoadAll fetches every domain, stopping at the first failure
func LoadAll(ctx context.Context, src Source) (Records, error) {
	var recs Records
	for _, d := range models.AllDomains {
		if err := Load(ctx, src, d, &recs); err != nil {
			return recs, err
		}
	}
	return recs, nil
}
