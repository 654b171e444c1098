package filter

import (
	"testing"
	"time"

	"github.com/rebelice/lazystay/internal/models"
)

type sheetHarness struct {
	live    models.TenantFilter
	changes int
	closes  int
	sheet   *Sheet[models.TenantFilter]
}

func newTenantHarness(t *testing.T, now time.Time) *sheetHarness {
	t.Helper()
	h := &sheetHarness{live: models.EmptyTenantFilter()}
	h.sheet = NewSheet(SheetConfig[models.TenantFilter]{
		Sections: TenantSections(),
		Reset:    models.EmptyTenantFilter(),
		OnChange: func(next models.TenantFilter) {
			h.changes++
			h.live = next
		},
		OnClose: func() { h.closes++ },
		Now:     func() time.Time { return now },
	})
	return h
}

func TestSheet_OpenCopiesValue(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.live.Sharing = []int{2}

	h.sheet.Open(h.live)

	if h.sheet.State() != StateBrowsing {
		t.Fatalf("expected browsing after open, got %s", h.sheet.State())
	}
	if h.sheet.Active().Key() != "sharing" {
		t.Errorf("expected first section active, got %q", h.sheet.Active().Key())
	}

	h.sheet.ToggleCheckbox("sharing", 2) // 3 Sharing
	if len(h.live.Sharing) != 1 || h.live.Sharing[0] != 2 {
		t.Errorf("live value changed while editing draft: %v", h.live.Sharing)
	}
	draft := h.sheet.Draft()
	if len(draft.Sharing) != 2 || draft.Sharing[1] != 3 {
		t.Errorf("expected draft sharing [2 3], got %v", draft.Sharing)
	}
}

func TestSheet_SelectTabKeepsDraft(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.sheet.Open(h.live)
	h.sheet.ToggleCheckbox("sharing", 0)

	if !h.sheet.SelectTab("joinDate") {
		t.Fatal("expected joinDate tab to exist")
	}
	if h.sheet.Active().Kind() != KindDateRange {
		t.Errorf("expected date-range section, got %s", h.sheet.Active().Kind())
	}
	if h.sheet.SelectTab("nope") {
		t.Error("unknown tab should not be selectable")
	}
	if got := h.sheet.Draft().Sharing; len(got) != 1 || got[0] != 1 {
		t.Errorf("tab switch changed draft: %v", got)
	}
}

func TestSheet_ApplyCommitsOnce(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.sheet.Open(h.live)
	h.sheet.ToggleCheckbox("status", 0)

	h.sheet.Apply()
	h.sheet.Apply()

	if h.changes != 1 {
		t.Errorf("expected exactly one OnChange, got %d", h.changes)
	}
	if h.closes != 1 {
		t.Errorf("expected exactly one OnClose, got %d", h.closes)
	}
	if h.sheet.Visible() {
		t.Error("sheet should be closed after apply")
	}
	if len(h.live.Status) != 1 || h.live.Status[0] != models.TenantActive {
		t.Errorf("expected live status [Active], got %v", h.live.Status)
	}
}

func TestSheet_DismissDiscardsDraft(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.live.Status = []string{models.TenantDues}
	before := h.live.Clone()

	h.sheet.Open(h.live)
	h.sheet.ToggleCheckbox("status", 1) // removes Dues
	h.sheet.ToggleCheckbox("sharing", 3)
	h.sheet.SetDateBound("joinDate", BoundFrom, ptr(day(2024, 1, 1)))
	h.sheet.Dismiss()

	if h.changes != 0 {
		t.Errorf("dismiss must not call OnChange, got %d calls", h.changes)
	}
	if h.closes != 1 {
		t.Errorf("expected OnClose on dismiss, got %d", h.closes)
	}
	if len(h.live.Status) != 1 || h.live.Status[0] != before.Status[0] ||
		len(h.live.Sharing) != 0 || !h.live.JoinDate.IsZero() {
		t.Errorf("live value changed by dismissed sheet: %+v", h.live)
	}
}

func TestSheet_ClearAllThenDismissIsNoop(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.live.Sharing = []int{2, 3}
	h.live.JoinDate = models.DateRange{From: ptr(day(2025, 1, 1))}

	h.sheet.Open(h.live)
	h.sheet.ClearAll()

	if !h.sheet.Visible() {
		t.Fatal("clear all must keep the sheet open")
	}
	if h.changes != 0 {
		t.Fatal("clear all must not commit")
	}
	if d := h.sheet.Draft(); len(d.Sharing) != 0 || !d.JoinDate.IsZero() {
		t.Errorf("expected pristine draft after clear all, got %+v", d)
	}

	h.sheet.Dismiss()
	if len(h.live.Sharing) != 2 || h.live.JoinDate.From == nil {
		t.Errorf("clear all then dismiss altered live value: %+v", h.live)
	}
}

func TestSheet_ClearAllThenApply(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.live.Status = []string{models.TenantActive}

	h.sheet.Open(h.live)
	h.sheet.ClearAll()
	h.sheet.Apply()

	if h.live.ActiveCount() != 0 {
		t.Errorf("expected pristine live value, got %+v", h.live)
	}
	if h.live.Status == nil || h.live.Sharing == nil {
		t.Error("pristine checkbox facets should be empty slices, not nil")
	}
}

func TestSheet_ClearAllDoesNotShareResetValue(t *testing.T) {
	h := newTenantHarness(t, time.Now())

	h.sheet.Open(h.live)
	h.sheet.ClearAll()
	h.sheet.ToggleCheckbox("sharing", 0)
	h.sheet.Apply()

	h.sheet.Open(h.live)
	h.sheet.ClearAll()
	if got := h.sheet.Draft().Sharing; len(got) != 0 {
		t.Errorf("reset value was mutated through a previous draft: %v", got)
	}
}

func TestSheet_FutureDateClamped(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	h := newTenantHarness(t, now)

	h.sheet.Open(h.live)
	h.sheet.SetDateBound("joinDate", BoundTo, ptr(day(2025, 7, 1)))

	to := h.sheet.Draft().JoinDate.To
	if to == nil || !to.Equal(day(2025, 6, 15)) {
		t.Errorf("expected future bound clamped to 2025-06-15, got %v", to)
	}

	h.sheet.SetDateBound("joinDate", BoundTo, nil)
	if h.sheet.Draft().JoinDate.To != nil {
		t.Error("nil date should clear the bound")
	}
}

func TestSheet_FutureAllowed(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	sheet := NewSheet(SheetConfig[models.AdvanceBookingFilter]{
		Sections: AdvanceBookingSections(),
		Reset:    models.EmptyAdvanceBookingFilter(),
		Now:      func() time.Time { return now },
	})

	sheet.Open(models.EmptyAdvanceBookingFilter())
	sheet.SetDateBound("joiningDate", BoundFrom, ptr(day(2025, 8, 1)))

	from := sheet.Draft().JoiningDate.From
	if from == nil || !from.Equal(day(2025, 8, 1)) {
		t.Errorf("expected future joining date kept, got %v", from)
	}
}

func TestSheet_WrongKindIsNoop(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.sheet.Open(h.live)

	h.sheet.ToggleCheckbox("joinDate", 0)
	h.sheet.SetDateBound("status", BoundFrom, ptr(day(2025, 1, 1)))
	h.sheet.ToggleCheckbox("missing", 0)
	h.sheet.ToggleCheckbox("status", 99)

	if h.sheet.State() != StateBrowsing {
		t.Errorf("mismatched operations should not dirty the draft, state %s", h.sheet.State())
	}
	if d := h.sheet.Draft(); d.ActiveCount() != 0 {
		t.Errorf("expected untouched draft, got %+v", d)
	}
}

func TestSheet_DebugLoggerReceivesUnknownKey(t *testing.T) {
	var logged []string
	SetDebugLogger(func(format string, args ...any) { logged = append(logged, format) })
	defer SetDebugLogger(nil)

	h := newTenantHarness(t, time.Now())
	h.sheet.Open(h.live)
	h.sheet.ToggleCheckbox("missing", 0)

	if len(logged) != 1 {
		t.Errorf("expected one debug assertion, got %d", len(logged))
	}
}

func TestSheet_ClosedOperationsIgnored(t *testing.T) {
	h := newTenantHarness(t, time.Now())

	h.sheet.ToggleCheckbox("sharing", 0)
	h.sheet.ClearAll()
	h.sheet.Apply()
	h.sheet.Dismiss()

	if h.changes != 0 || h.closes != 0 {
		t.Errorf("closed sheet should ignore actions, got %d changes %d closes", h.changes, h.closes)
	}
}

func TestSheet_TabWrap(t *testing.T) {
	h := newTenantHarness(t, time.Now())
	h.sheet.Open(h.live)

	h.sheet.PrevTab()
	if h.sheet.Active().Key() != "joinDate" {
		t.Errorf("expected wrap to last tab, got %q", h.sheet.Active().Key())
	}
	h.sheet.NextTab()
	if h.sheet.Active().Key() != "sharing" {
		t.Errorf("expected wrap to first tab, got %q", h.sheet.Active().Key())
	}
}

func TestSheet_CustomSectionEditsDraft(t *testing.T) {
	live := models.EmptyExpenseFilter()
	sheet := NewSheet(SheetConfig[models.ExpenseFilter]{
		Sections: ExpenseSections(),
		Reset:    models.EmptyExpenseFilter(),
		OnChange: func(next models.ExpenseFilter) { live = next },
	})

	sheet.Open(live)
	if !sheet.SelectTab("amount") {
		t.Fatal("expected amount tab")
	}
	custom, ok := sheet.Active().(*CustomSection[models.ExpenseFilter])
	if !ok {
		t.Fatalf("expected custom section, got %T", sheet.Active())
	}

	if !custom.HandleKey(sheet.Draft(), "down", sheet.SetDraft) {
		t.Fatal("expected down to be handled")
	}
	if sheet.Draft().Amount != models.AmountUnder1K {
		t.Errorf("expected Under 1K band, got %v", sheet.Draft().Amount)
	}
	if live.Amount != models.AmountAny {
		t.Error("custom edit leaked into live value before apply")
	}

	sheet.Apply()
	if live.Amount != models.AmountUnder1K {
		t.Errorf("expected applied band Under 1K, got %v", live.Amount)
	}
}
