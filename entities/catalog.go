package entities

import "time"

// Transport modes for a package. Cab folds vehicle cost into per-stop
// sightseeing pricing; self-drive modes charge a flat daily rental instead.
const (
	ModeCab           = "cab"
	ModeSelfDriveCar  = "self-drive-car"
	ModeSelfDriveScoo = "self-drive-scooter"
)

type Hotel struct {
	HotelID   uint   `gorm:"primaryKey" json:"hotel_id"`
	Name      string `json:"name" gorm:"index"`
	Area      string `json:"area"`
	CreatedAt time.Time
}

type RoomType struct {
	RoomTypeID uint    `gorm:"primaryKey" json:"room_type_id"`
	HotelID    uint    `gorm:"index" json:"hotel_id"`
	Name       string  `json:"name"`
	PeakRate   float64 `json:"peak_rate"`
	MidRate    float64 `json:"mid_rate"`
	OffRate    float64 `json:"off_rate"`
	CreatedAt  time.Time
}

// Sightseeing carries the shared-vehicle cost profile, one flat cost per
// vehicle class, picked by total pax bracket.
type Sightseeing struct {
	SightseeingID uint    `gorm:"primaryKey" json:"sightseeing_id"`
	Name          string  `json:"name" gorm:"index"`
	Area          string  `json:"area"`
	CabSmall      float64 `json:"cab_small"`  // up to 6 pax
	CabMedium     float64 `json:"cab_medium"` // up to 14
	CabLarge      float64 `json:"cab_large"`  // up to 20
	CabBus        float64 `json:"cab_bus"`    // above 20
	CreatedAt     time.Time
}

type Activity struct {
	ActivityID uint   `gorm:"primaryKey" json:"activity_id"`
	Name       string `json:"name" gorm:"index"`
	CreatedAt  time.Time
}

// ActivityOption is charged per group of Capacity people, not per person.
type ActivityOption struct {
	OptionID   uint    `gorm:"primaryKey" json:"option_id"`
	ActivityID uint    `gorm:"index" json:"activity_id"`
	Name       string  `json:"name"`
	FlatCost   float64 `json:"flat_cost"`
	Capacity   int     `json:"capacity"`
	CreatedAt  time.Time
}

type EntryTicket struct {
	TicketID      uint    `gorm:"primaryKey" json:"ticket_id"`
	Name          string  `json:"name" gorm:"index"`
	CostPerPerson float64 `json:"cost_per_person"`
	CreatedAt     time.Time
}

type Meal struct {
	MealID        uint    `gorm:"primaryKey" json:"meal_id"`
	Name          string  `json:"name" gorm:"index"`
	CostPerPerson float64 `json:"cost_per_person"`
	CreatedAt     time.Time
}

type Transportation struct {
	TransportID          uint    `gorm:"primaryKey" json:"transport_id"`
	Mode                 string  `gorm:"uniqueIndex" json:"mode"`
	DailyRentalRate      float64 `json:"daily_rental_rate"`       // self-drive modes only
	FuelSurchargePerStop float64 `json:"fuel_surcharge_per_stop"` // per sightseeing-day, car > scooter
	CreatedAt            time.Time
}
