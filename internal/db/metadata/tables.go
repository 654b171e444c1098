package metadata

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rebelice/lazystay/internal/db/connection"
)

// Table represents a PostgreSQL table
type Table struct {
	Schema string
	Name   string
	Size   string
}

// PropertyTables are the tables the postgres source reads
var PropertyTables = []string{"expenses", "rooms", "tenants"}

// MissingTablesError lists the tables a property database lacks
type MissingTablesError struct {
	Schema string
	Tables []string
}

func (e *MissingTablesError) Error() string {
	return fmt.Sprintf("schema %q is missing tables: %s", e.Schema, strings.Join(e.Tables, ", "))
}

// ListTables returns all tables in a schema
func ListTables(ctx context.Context, pool *connection.Pool, schema string) ([]Table, error) {
	query := `
		SELECT
			schemaname as schema,
			tablename as name,
			pg_catalog.pg_size_pretty(pg_catalog.pg_total_relation_size(quote_ident(schemaname)||'.'||quote_ident(tablename))) as size
		FROM pg_catalog.pg_tables
		WHERE schemaname = $1
		ORDER BY tablename;
	`

	tables := []Table{}
	err := pool.Query(ctx, query, func(rows pgx.Rows) error {
		var t Table
		if err := rows.Scan(&t.Schema, &t.Name, &t.Size); err != nil {
			return err
		}
		tables = append(tables, t)
		return nil
	}, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// CheckTables returns a *MissingTablesError unless schema holds every required table
func CheckTables(ctx context.Context, pool *connection.Pool, schema string, required []string) error {
	tables, err := ListTables(ctx, pool, schema)
	if err != nil {
		return err
	}
	if missing := Missing(tables, required); len(missing) > 0 {
		return &MissingTablesError{Schema: schema, Tables: missing}
	}
	return nil
}

// Missing returns the required names absent from tables, sorted
func Missing(tables []Table, required []string) []string {
	var missing []string
	for _, name := range required {
		if !slices.ContainsFunc(tables, func(t Table) bool { return t.Name == name }) {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}
