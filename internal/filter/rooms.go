package filter

import (
	"github.com/rebelice/lazystay/internal/models"
)

// sharingOptions are the sharing types offered by every sheet
func sharingOptions() []Option[int] {
	return []Option[int]{
		{Label: "Single", Value: 1},
		{Label: "2 Sharing", Value: 2},
		{Label: "3 Sharing", Value: 3},
		{Label: "4 Sharing", Value: 4},
		{Label: "5 Sharing", Value: 5},
	}
}

// RoomSections describes the Rooms filter sheet
func RoomSections() []Section[models.RoomFilter] {
	return []Section[models.RoomFilter]{
		&CheckboxSection[models.RoomFilter, int]{
			FacetKey: "sharing",
			Title:    "Sharing",
			Options:  sharingOptions(),
			Field:    func(f *models.RoomFilter) *[]int { return &f.Sharing },
		},
		&CheckboxSection[models.RoomFilter, int]{
			FacetKey: "status",
			Title:    "Status",
			Options: []Option[int]{
				{Label: models.RoomStatusLabel(models.RoomVacant), Value: models.RoomVacant},
				{Label: models.RoomStatusLabel(models.RoomPartiallyFilled), Value: models.RoomPartiallyFilled},
				{Label: models.RoomStatusLabel(models.RoomFull), Value: models.RoomFull},
				{Label: models.RoomStatusLabel(models.RoomUnderMaintenance), Value: models.RoomUnderMaintenance},
			},
			Field: func(f *models.RoomFilter) *[]int { return &f.Status },
		},
	}
}

// ApplyRoomFilters returns the rooms visible under f and search
func ApplyRoomFilters(rooms []models.Room, f models.RoomFilter, search string) []models.Room {
	return Apply(rooms,
		Search(search, func(r models.Room) string { return r.RoomNo }),
		Member(f.Sharing, func(r models.Room) int { return r.Sharing }),
		Member(f.Status, func(r models.Room) int { return r.Status }),
	)
}
