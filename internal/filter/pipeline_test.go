package filter

import (
	"reflect"
	"testing"

	"github.com/rebelice/lazystay/internal/models"
	"github.com/shopspring/decimal"
)

func testTenants() []models.Tenant {
	return []models.Tenant{
		{ID: "t1", Name: "Arun", Sharing: 2, Status: models.TenantActive, JoiningDate: "2025-02-01"},
		{ID: "t2", Name: "Priya", Sharing: 3, Status: models.TenantDues, JoiningDate: "2025-05-01"},
		{ID: "t3", Name: "Sanjana", Sharing: 2, Status: models.TenantDues, JoiningDate: "not-a-date"},
		{ID: "t4", Name: "Kiran", Sharing: 1, Status: models.TenantActive, JoiningDate: ""},
	}
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func tenantIDs(ts []models.Tenant) []string {
	return ids(ts, func(t models.Tenant) string { return t.ID })
}

func TestApply_EmptyFilterIsIdentity(t *testing.T) {
	rooms := []models.Room{
		{ID: "r1", RoomNo: "101", Sharing: 2, Status: models.RoomFull},
		{ID: "r2", RoomNo: "102", Sharing: 3, Status: models.RoomVacant},
	}
	if got := ApplyRoomFilters(rooms, models.EmptyRoomFilter(), ""); !reflect.DeepEqual(got, rooms) {
		t.Errorf("rooms: expected identity, got %v", got)
	}

	tenants := testTenants()
	if got := ApplyTenantFilters(tenants, models.EmptyTenantFilter(), ""); !reflect.DeepEqual(got, tenants) {
		t.Errorf("tenants: expected identity, got %v", tenantIDs(got))
	}

	bookings := []models.AdvanceBooking{
		{ID: "b1", Name: "Ravi", Status: models.BookingActive},
		{ID: "b2", Name: "Meena", Status: models.BookingCancelled, BookingDate: "garbage"},
	}
	if got := ApplyAdvanceBookingFilters(bookings, models.EmptyAdvanceBookingFilter(), ""); !reflect.DeepEqual(got, bookings) {
		t.Errorf("bookings: expected identity, got %v", got)
	}

	expenses := []models.Expense{
		{ID: "e1", Title: "EB bill", Amount: decimal.NewFromInt(4200)},
		{ID: "e2", Title: "Vegetables", Amount: decimal.NewFromInt(800)},
	}
	if got := ApplyExpenseFilters(expenses, models.EmptyExpenseFilter(), ""); !reflect.DeepEqual(got, expenses) {
		t.Errorf("expenses: expected identity, got %v", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tenants := testTenants()
	snapshot := testTenants()

	f := models.EmptyTenantFilter()
	f.Status = []string{models.TenantDues}
	_ = ApplyTenantFilters(tenants, f, "a")

	if !reflect.DeepEqual(tenants, snapshot) {
		t.Error("pipeline modified its input records")
	}
}

func TestApply_Idempotent(t *testing.T) {
	f := models.EmptyTenantFilter()
	f.Sharing = []int{2, 3}

	once := ApplyTenantFilters(testTenants(), f, "")
	twice := ApplyTenantFilters(once, f, "")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent apply, got %v then %v", tenantIDs(once), tenantIDs(twice))
	}
}

func TestApplyTenantFilters_SharingScenario(t *testing.T) {
	tenants := []models.Tenant{
		{Name: "Arun", Sharing: 2, Status: "Active", JoiningDate: "2025-02-01"},
		{Name: "Priya", Sharing: 3, Status: "Dues", JoiningDate: "2025-05-01"},
	}
	f := models.TenantFilter{Sharing: []int{2}, Status: []string{}}

	got := ApplyTenantFilters(tenants, f, "")
	if len(got) != 1 || got[0].Name != "Arun" {
		t.Errorf("expected [Arun], got %v", got)
	}
}

func TestApplyTenantFilters_SearchAndStatusAreANDed(t *testing.T) {
	tenants := []models.Tenant{
		{ID: "anand", Name: "Anand", Status: models.TenantActive},
		{ID: "sanjana", Name: "Sanjana", Status: models.TenantDues},
		{ID: "kiran", Name: "Kiran", Status: models.TenantActive},
		{ID: "priya", Name: "Priya", Status: models.TenantDues},
		{ID: "arun", Name: "Arun", Status: models.TenantActive},
	}
	f := models.EmptyTenantFilter()
	f.Status = []string{models.TenantActive}

	got := tenantIDs(ApplyTenantFilters(tenants, f, "AN"))
	want := []string{"anand", "kiran"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApplyTenantFilters_ORWithinFacet(t *testing.T) {
	f := models.EmptyTenantFilter()
	f.Sharing = []int{1, 3}

	got := tenantIDs(ApplyTenantFilters(testTenants(), f, ""))
	want := []string{"t2", "t4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApplyTenantFilters_BadDatesOnlyMatterWhenActive(t *testing.T) {
	f := models.EmptyTenantFilter()
	f.JoinDate = models.DateRange{From: ptr(day(2025, 1, 1))}

	got := tenantIDs(ApplyTenantFilters(testTenants(), f, ""))
	want := []string{"t1", "t2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected records with unparseable dates excluded, got %v", got)
	}
}

func TestApplyTenantFilters_SingleDay(t *testing.T) {
	f := models.EmptyTenantFilter()
	f.JoinDate = models.DateRange{From: ptr(day(2025, 2, 1)), To: ptr(day(2025, 2, 1))}

	tenants := []models.Tenant{
		{ID: "midnight", JoiningDate: "2025-02-01"},
		{ID: "late", JoiningDate: "2025-02-01T23:30:00"},
		{ID: "prev", JoiningDate: "2025-01-31T23:59:59"},
		{ID: "next", JoiningDate: "2025-02-02"},
	}

	got := tenantIDs(ApplyTenantFilters(tenants, f, ""))
	want := []string{"midnight", "late"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApplyTenantFilters_InvertedRange(t *testing.T) {
	f := models.EmptyTenantFilter()
	f.JoinDate = models.DateRange{From: ptr(day(2025, 3, 10)), To: ptr(day(2025, 1, 1))}

	got := tenantIDs(ApplyTenantFilters(testTenants(), f, ""))
	want := []string{"t1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected inverted range to behave as 2025-01-01..2025-03-10, got %v", got)
	}
}

func TestApplyAdvanceBookingFilters_BaseStatusesOnly(t *testing.T) {
	bookings := []models.AdvanceBooking{
		{ID: "active-tenant", Name: "Anil", Status: models.BookingTenantActive},
		{ID: "booked", Name: "Bala", Status: models.BookingActive},
		{ID: "expired", Name: "Chitra", Status: models.BookingExpired},
		{ID: "cancelled", Name: "Deepa", Status: models.BookingCancelled},
		{ID: "other", Name: "Esha", Status: 2},
	}
	bookingIDs := func(bs []models.AdvanceBooking) []string {
		return ids(bs, func(b models.AdvanceBooking) string { return b.ID })
	}

	got := bookingIDs(ApplyAdvanceBookingFilters(bookings, models.EmptyAdvanceBookingFilter(), ""))
	want := []string{"booked", "expired", "cancelled"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Selecting status 1 through the facet still cannot surface it
	f := models.EmptyAdvanceBookingFilter()
	f.Status = []int{models.BookingTenantActive}
	if got := ApplyAdvanceBookingFilters(bookings, f, "anil"); len(got) != 0 {
		t.Errorf("active tenant leaked into advance bookings: %v", bookingIDs(got))
	}
}

func TestApplyAdvanceBookingFilters_TwoDateFacets(t *testing.T) {
	bookings := []models.AdvanceBooking{
		{ID: "a", Status: models.BookingActive, BookingDate: "2025-01-05", JoiningDate: "2025-02-01"},
		{ID: "b", Status: models.BookingActive, BookingDate: "2025-01-20", JoiningDate: "2025-04-01"},
		{ID: "c", Status: models.BookingExpired, BookingDate: "2024-12-01", JoiningDate: "2025-02-10"},
	}
	f := models.EmptyAdvanceBookingFilter()
	f.BookingDate = models.DateRange{From: ptr(day(2025, 1, 1))}
	f.JoiningDate = models.DateRange{To: ptr(day(2025, 2, 28))}

	got := ids(ApplyAdvanceBookingFilters(bookings, f, ""), func(b models.AdvanceBooking) string { return b.ID })
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected [a], got %v", got)
	}
}

func TestApplyRoomFilters_AllOptionsSelectedIsNotUnconstrained(t *testing.T) {
	rooms := []models.Room{
		{ID: "r1", Sharing: 2},
		{ID: "r2", Sharing: 6}, // not offered by the sheet
	}
	f := models.EmptyRoomFilter()
	for _, opt := range sharingOptions() {
		f.Sharing = append(f.Sharing, opt.Value)
	}

	got := ids(ApplyRoomFilters(rooms, f, ""), func(r models.Room) string { return r.ID })
	if !reflect.DeepEqual(got, []string{"r1"}) {
		t.Errorf("selecting every offered option must still exclude other values, got %v", got)
	}
}

func TestApplyRoomFilters_SearchRoomNo(t *testing.T) {
	rooms := []models.Room{
		{ID: "r1", RoomNo: "A-101"},
		{ID: "r2", RoomNo: "B-204"},
	}
	got := ids(ApplyRoomFilters(rooms, models.EmptyRoomFilter(), "a-1"), func(r models.Room) string { return r.ID })
	if !reflect.DeepEqual(got, []string{"r1"}) {
		t.Errorf("expected [r1], got %v", got)
	}
}

func TestApplyExpenseFilters_AmountBand(t *testing.T) {
	expenses := []models.Expense{
		{ID: "small", Title: "Tea", Category: "Groceries", Amount: decimal.RequireFromString("999.99")},
		{ID: "edge", Title: "Plumber", Category: "Maintenance", Amount: decimal.NewFromInt(1000)},
		{ID: "mid", Title: "EB bill", Category: "Electricity", Amount: decimal.NewFromInt(4999)},
		{ID: "big", Title: "Salary", Category: "Salary", Amount: decimal.NewFromInt(25000)},
	}
	expenseIDs := func(es []models.Expense) []string {
		return ids(es, func(e models.Expense) string { return e.ID })
	}

	f := models.EmptyExpenseFilter()
	f.Amount = models.Amount1KTo5K
	if got := expenseIDs(ApplyExpenseFilters(expenses, f, "")); !reflect.DeepEqual(got, []string{"edge", "mid"}) {
		t.Errorf("expected [edge mid], got %v", got)
	}

	f.Category = []string{"Electricity"}
	if got := expenseIDs(ApplyExpenseFilters(expenses, f, "")); !reflect.DeepEqual(got, []string{"mid"}) {
		t.Errorf("expected [mid], got %v", got)
	}
}

func TestApplyExpenseFilters_DateAndPaymentMode(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", PaymentMode: models.PaymentUPI, ExpenseDate: "2025-04-01"},
		{ID: "e2", PaymentMode: models.PaymentCash, ExpenseDate: "2025-04-15"},
		{ID: "e3", PaymentMode: models.PaymentUPI, ExpenseDate: "2025-05-02"},
	}
	f := models.EmptyExpenseFilter()
	f.PaymentMode = []string{models.PaymentUPI}
	f.ExpenseDate = models.DateRange{From: ptr(day(2025, 4, 1)), To: ptr(day(2025, 4, 30))}

	got := ids(ApplyExpenseFilters(expenses, f, ""), func(e models.Expense) string { return e.ID })
	if !reflect.DeepEqual(got, []string{"e1"}) {
		t.Errorf("expected [e1], got %v", got)
	}
}

func TestSections_KeysMatchFilterShape(t *testing.T) {
	check := func(name string, keys []string, want ...string) {
		t.Helper()
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("%s: expected keys %v, got %v", name, want, keys)
		}
	}
	sectionKeys := func(n int, key func(int) string) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = key(i)
		}
		return out
	}

	rs := RoomSections()
	check("rooms", sectionKeys(len(rs), func(i int) string { return rs[i].Key() }), "sharing", "status")
	ts := TenantSections()
	check("tenants", sectionKeys(len(ts), func(i int) string { return ts[i].Key() }), "sharing", "status", "joinDate")
	bs := AdvanceBookingSections()
	check("bookings", sectionKeys(len(bs), func(i int) string { return bs[i].Key() }), "status", "sharing", "bookingDate", "joiningDate")
	es := ExpenseSections()
	check("expenses", sectionKeys(len(es), func(i int) string { return es[i].Key() }), "category", "paymentMode", "expenseDate", "amount")
}
