package source

import (
	"context"
	"fmt"
	"os"

	"github.com/rebelice/lazystay/internal/models"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout of a fixture
type fixtureFile struct {
	Rooms           []models.Room           `yaml:"rooms"`
	Tenants         []models.Tenant         `yaml:"tenants"`
	AdvanceBookings []models.AdvanceBooking `yaml:"advance_bookings"`
	Expenses        []models.Expense        `yaml:"expenses"`
}

// Fixture serves records from a YAML file. The file is re-read on every
// call so edits show up on reload.
type Fixture struct {
	path string
}

// NewFixture creates a fixture source and checks the file parses
func NewFixture(path string) (*Fixture, error) {
	f := &Fixture{path: path}
	if _, err := f.read(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fixture) read() (*fixtureFile, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return &ff, nil
}

func (f *Fixture) Rooms(ctx context.Context) ([]models.Room, error) {
	ff, err := f.read()
	if err != nil {
		return nil, err
	}
	return ff.Rooms, nil
}

func (f *Fixture) Tenants(ctx context.Context) ([]models.Tenant, error) {
	ff, err := f.read()
	if err != nil {
		return nil, err
	}
	return ff.Tenants, nil
}

func (f *Fixture) AdvanceBookings(ctx context.Context) ([]models.AdvanceBooking, error) {
	ff, err := f.read()
	if err != nil {
		return nil, err
	}
	return ff.AdvanceBookings, nil
}

func (f *Fixture) Expenses(ctx context.Context) ([]models.Expense, error) {
	ff, err := f.read()
	if err != nil {
		return nil, err
	}
	return ff.Expenses, nil
}

func (f *Fixture) Close() {}
