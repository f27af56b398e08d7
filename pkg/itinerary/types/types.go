package types

type Lodging struct {
	HotelID    uint `json:"hotel_id"`
	RoomTypeID uint `json:"room_type_id"`
}

type ActivityChoice struct {
	ActivityID uint `json:"activity_id"`
	OptionID   uint `json:"option_id"`
}

// DayPlan holds the catalog selections for a single trip day. Day numbers are
// 1..N, contiguous.
type DayPlan struct {
	Day            int              `json:"day"`
	Area           string           `json:"area,omitempty"`
	SightseeingIDs []uint           `json:"sightseeing_ids,omitempty"`
	Lodging        *Lodging         `json:"lodging,omitempty"`
	Activities     []ActivityChoice `json:"activities,omitempty"`
	TicketIDs      []uint           `json:"ticket_ids,omitempty"`
	MealIDs        []uint           `json:"meal_ids,omitempty"`
}

type DayCost struct {
	Day            int     `json:"day"`
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Sightseeing    float64 `json:"sightseeing"`
	Activities     float64 `json:"activities"`
	Tickets        float64 `json:"tickets"`
	Meals          float64 `json:"meals"`
}

func (d DayCost) Total() float64 {
	return d.Transportation + d.Accommodation + d.Sightseeing + d.Activities + d.Tickets + d.Meals
}

type CostBreakdown struct {
	Transportation float64   `json:"transportation"`
	Accommodation  float64   `json:"accommodation"`
	Sightseeing    float64   `json:"sightseeing"`
	Activities     float64   `json:"activities"`
	Tickets        float64   `json:"tickets"`
	Meals          float64   `json:"meals"`
	TotalBaseCost  float64   `json:"total_base_cost"`
	SeasonLabel    string    `json:"season_label"`
	Days           []DayCost `json:"days"`
}
