package repositoryImp

import (
	"gorm.io/gorm"

	"tripkit/entities"
	"tripkit/pkg/catalog/repository"
	"tripkit/pkg/pricing"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

// Snapshot loads the whole catalog into lookup maps. The catalog is small
// (operator-curated) so one pricing call gets a consistent in-memory view.
func (r *catalogRepo) Snapshot() (*pricing.Snapshot, error) {
	snap := &pricing.Snapshot{
		Hotels:     map[uint]entities.Hotel{},
		RoomTypes:  map[uint]entities.RoomType{},
		Sights:     map[uint]entities.Sightseeing{},
		Activities: map[uint]entities.Activity{},
		Options:    map[uint]entities.ActivityOption{},
		Tickets:    map[uint]entities.EntryTicket{},
		Meals:      map[uint]entities.Meal{},
		Transport:  map[string]entities.Transportation{},
	}

	var hotels []entities.Hotel
	if err := r.db.Find(&hotels).Error; err != nil {
		return nil, err
	}
	for _, h := range hotels {
		snap.Hotels[h.HotelID] = h
	}
	var rts []entities.RoomType
	if err := r.db.Find(&rts).Error; err != nil {
		return nil, err
	}
	for _, rt := range rts {
		snap.RoomTypes[rt.RoomTypeID] = rt
	}
	var sights []entities.Sightseeing
	if err := r.db.Find(&sights).Error; err != nil {
		return nil, err
	}
	for _, s := range sights {
		snap.Sights[s.SightseeingID] = s
	}
	var acts []entities.Activity
	if err := r.db.Find(&acts).Error; err != nil {
		return nil, err
	}
	for _, a := range acts {
		snap.Activities[a.ActivityID] = a
	}
	var opts []entities.ActivityOption
	if err := r.db.Find(&opts).Error; err != nil {
		return nil, err
	}
	for _, o := range opts {
		snap.Options[o.OptionID] = o
	}
	var tickets []entities.EntryTicket
	if err := r.db.Find(&tickets).Error; err != nil {
		return nil, err
	}
	for _, t := range tickets {
		snap.Tickets[t.TicketID] = t
	}
	var meals []entities.Meal
	if err := r.db.Find(&meals).Error; err != nil {
		return nil, err
	}
	for _, m := range meals {
		snap.Meals[m.MealID] = m
	}
	var trs []entities.Transportation
	if err := r.db.Find(&trs).Error; err != nil {
		return nil, err
	}
	for _, tr := range trs {
		snap.Transport[tr.Mode] = tr
	}
	return snap, nil
}

func (r *catalogRepo) Hotels() ([]entities.Hotel, error) {
	var out []entities.Hotel
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *catalogRepo) RoomTypesByHotel(hotelID uint) ([]entities.RoomType, error) {
	var out []entities.RoomType
	return out, r.db.Where("hotel_id = ?", hotelID).Find(&out).Error
}

func (r *catalogRepo) Sightseeings() ([]entities.Sightseeing, error) {
	var out []entities.Sightseeing
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *catalogRepo) Activities() ([]entities.Activity, error) {
	var out []entities.Activity
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *catalogRepo) OptionsByActivity(activityID uint) ([]entities.ActivityOption, error) {
	var out []entities.ActivityOption
	return out, r.db.Where("activity_id = ?", activityID).Find(&out).Error
}

func (r *catalogRepo) Tickets() ([]entities.EntryTicket, error) {
	var out []entities.EntryTicket
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *catalogRepo) Meals() ([]entities.Meal, error) {
	var out []entities.Meal
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *catalogRepo) Transportations() ([]entities.Transportation, error) {
	var out []entities.Transportation
	return out, r.db.Find(&out).Error
}

func (r *catalogRepo) HotelByName(name string) (*entities.Hotel, error) {
	var h entities.Hotel
	if err := r.db.Where("name = ?", name).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *catalogRepo) CreateHotel(h *entities.Hotel) error        { return r.db.Create(h).Error }
func (r *catalogRepo) CreateRoomType(rt *entities.RoomType) error { return r.db.Create(rt).Error }
