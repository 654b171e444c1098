package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rebelice/lazystay/internal/db/connection"
	"github.com/rebelice/lazystay/internal/db/discovery"
	"github.com/rebelice/lazystay/internal/db/metadata"
	"github.com/rebelice/lazystay/internal/models"
	"github.com/shopspring/decimal"
)

// Postgres reads the lists of one property from the property database
type Postgres struct {
	pool       *connection.Pool
	propertyID string
}

// NewPostgres connects to the database described by cfg and checks that it
// holds the property tables
func NewPostgres(ctx context.Context, cfg models.DatabaseConfig, propertyID string) (*Postgres, error) {
	// Unix socket directories are left to the driver
	if !strings.HasPrefix(cfg.Host, "/") {
		if err := discovery.Reachable(ctx, cfg.Host, cfg.Port); err != nil {
			return nil, err
		}
	}

	pool, err := connection.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := metadata.CheckTables(ctx, pool, "public", metadata.PropertyTables); err != nil {
		pool.Close()
		return nil, err
	}
	return &Postgres{pool: pool, propertyID: propertyID}, nil
}

func (p *Postgres) Rooms(ctx context.Context) ([]models.Room, error) {
	query := `
		SELECT id::text, room_no, floor, sharing, status, occupied, rent
		FROM rooms
		WHERE property_id = $1
		ORDER BY floor, room_no;
	`

	rooms := []models.Room{}
	err := p.pool.Query(ctx, query, func(rows pgx.Rows) error {
		var r models.Room
		var rent pgtype.Numeric
		if err := rows.Scan(&r.ID, &r.RoomNo, &r.Floor, &r.Sharing, &r.Status, &r.Occupied, &rent); err != nil {
			return err
		}
		r.Rent = numericToDecimal(rent)
		rooms = append(rooms, r)
		return nil
	}, p.propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	return rooms, nil
}

func (p *Postgres) Tenants(ctx context.Context) ([]models.Tenant, error) {
	query := `
		SELECT t.id::text, t.name, COALESCE(t.phone, ''), COALESCE(r.room_no, ''),
		       COALESCE(r.sharing, 0), t.status_label, t.joining_date, t.rent
		FROM tenants t
		LEFT JOIN rooms r ON r.id = t.room_id
		WHERE t.property_id = $1
		ORDER BY t.name;
	`

	tenants := []models.Tenant{}
	err := p.pool.Query(ctx, query, func(rows pgx.Rows) error {
		var t models.Tenant
		var joined pgtype.Date
		var rent pgtype.Numeric
		if err := rows.Scan(&t.ID, &t.Name, &t.Phone, &t.RoomNo, &t.Sharing, &t.Status, &joined, &rent); err != nil {
			return err
		}
		t.JoiningDate = dateString(joined)
		t.Rent = numericToDecimal(rent)
		tenants = append(tenants, t)
		return nil
	}, p.propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	return tenants, nil
}

// AdvanceBookings returns every tenant row; the booking list narrows them
// to booking statuses itself.
func (p *Postgres) AdvanceBookings(ctx context.Context) ([]models.AdvanceBooking, error) {
	query := `
		SELECT t.id::text, t.name, COALESCE(t.phone, ''), COALESCE(r.room_no, ''),
		       COALESCE(r.sharing, 0), t.status, t.booking_date, t.joining_date, t.advance_amount
		FROM tenants t
		LEFT JOIN rooms r ON r.id = t.room_id
		WHERE t.property_id = $1
		ORDER BY t.booking_date DESC NULLS LAST;
	`

	bookings := []models.AdvanceBooking{}
	err := p.pool.Query(ctx, query, func(rows pgx.Rows) error {
		var b models.AdvanceBooking
		var booked, joining pgtype.Date
		var advance pgtype.Numeric
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.RoomNo, &b.Sharing, &b.Status, &booked, &joining, &advance); err != nil {
			return err
		}
		b.BookingDate = dateString(booked)
		b.JoiningDate = dateString(joining)
		b.AdvanceAmount = numericToDecimal(advance)
		bookings = append(bookings, b)
		return nil
	}, p.propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance bookings: %w", err)
	}
	return bookings, nil
}

func (p *Postgres) Expenses(ctx context.Context) ([]models.Expense, error) {
	query := `
		SELECT id::text, title, category, payment_mode, COALESCE(paid_to, ''), amount, expense_date
		FROM expenses
		WHERE property_id = $1
		ORDER BY expense_date DESC NULLS LAST;
	`

	expenses := []models.Expense{}
	err := p.pool.Query(ctx, query, func(rows pgx.Rows) error {
		var e models.Expense
		var amount pgtype.Numeric
		var spent pgtype.Date
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &e.PaymentMode, &e.PaidTo, &amount, &spent); err != nil {
			return err
		}
		e.Amount = numericToDecimal(amount)
		e.ExpenseDate = dateString(spent)
		expenses = append(expenses, e)
		return nil
	}, p.propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	return expenses, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// numericToDecimal converts a NUMERIC column; NULL and NaN become zero
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// dateString renders a DATE column the way the list records carry dates.
// NULL and infinite dates become "" so date facets exclude them.
func dateString(d pgtype.Date) string {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
