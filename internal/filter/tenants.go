package filter

import (
	"github.com/rebelice/lazystay/internal/models"
)

// TenantSections describes the Tenants filter sheet
func TenantSections() []Section[models.TenantFilter] {
	return []Section[models.TenantFilter]{
		&CheckboxSection[models.TenantFilter, int]{
			FacetKey: "sharing",
			Title:    "Sharing",
			Options:  sharingOptions(),
			Field:    func(f *models.TenantFilter) *[]int { return &f.Sharing },
		},
		&CheckboxSection[models.TenantFilter, string]{
			FacetKey: "status",
			Title:    "Status",
			Options: []Option[string]{
				{Label: models.TenantActive, Value: models.TenantActive},
				{Label: models.TenantDues, Value: models.TenantDues},
				{Label: "On Notice", Value: models.TenantNotice},
				{Label: models.TenantLeft, Value: models.TenantLeft},
			},
			Field: func(f *models.TenantFilter) *[]string { return &f.Status },
		},
		&DateRangeSection[models.TenantFilter]{
			FacetKey: "joinDate",
			Title:    "Joining Date",
			Field:    func(f *models.TenantFilter) *models.DateRange { return &f.JoinDate },
		},
	}
}

// ApplyTenantFilters returns the tenants visible under f and search
func ApplyTenantFilters(tenants []models.Tenant, f models.TenantFilter, search string) []models.Tenant {
	return Apply(tenants,
		Search(search,
			func(t models.Tenant) string { return t.Name },
			func(t models.Tenant) string { return t.Phone },
		),
		Member(f.Sharing, func(t models.Tenant) int { return t.Sharing }),
		Member(f.Status, func(t models.Tenant) string { return t.Status }),
		Within(f.JoinDate, func(t models.Tenant) string { return t.JoiningDate }),
	)
}
