package metadata

import (
	"errors"
	"slices"
	"testing"
)

func TestMissing(t *testing.T) {
	tables := []Table{
		{Schema: "public", Name: "rooms"},
		{Schema: "public", Name: "audit_log"},
	}

	got := Missing(tables, PropertyTables)
	want := []string{"expenses", "tenants"}
	if !slices.Equal(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}

	all := []Table{{Name: "tenants"}, {Name: "rooms"}, {Name: "expenses"}}
	if got := Missing(all, PropertyTables); len(got) != 0 {
		t.Errorf("Missing() = %v, want none", got)
	}
}

func TestMissingTablesError(t *testing.T) {
	var err error = &MissingTablesError{Schema: "public", Tables: []string{"expenses", "tenants"}}

	var mt *MissingTablesError
	if !errors.As(err, &mt) {
		t.Fatal("errors.As failed")
	}
	want := `schema "public" is missing tables: expenses, tenants`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
