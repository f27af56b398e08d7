package repository

import (
	"tripkit/entities"
	"tripkit/pkg/pricing"
)

// CatalogRepository is the read-only catalog surface consumed by pricing and
// checklist expansion. The create methods exist only for the importer; this
// core never edits catalog rows.
type CatalogRepository interface {
	Snapshot() (*pricing.Snapshot, error)

	Hotels() ([]entities.Hotel, error)
	RoomTypesByHotel(hotelID uint) ([]entities.RoomType, error)
	Sightseeings() ([]entities.Sightseeing, error)
	Activities() ([]entities.Activity, error)
	OptionsByActivity(activityID uint) ([]entities.ActivityOption, error)
	Tickets() ([]entities.EntryTicket, error)
	Meals() ([]entities.Meal, error)
	Transportations() ([]entities.Transportation, error)

	HotelByName(name string) (*entities.Hotel, error)
	CreateHotel(h *entities.Hotel) error
	CreateRoomType(rt *entities.RoomType) error
}
