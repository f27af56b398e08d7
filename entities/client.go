package entities

import "time"

type SalesClient struct {
	ClientID        uint       `gorm:"primaryKey" json:"client_id"`
	OperatorID      string     `json:"operator_id" gorm:"index"`
	Name            string     `json:"name" gorm:"index:idx_client_natural,unique"`
	Phone           string     `json:"phone" gorm:"index:idx_client_natural,unique"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	TravelStartDate time.Time  `json:"travel_start_date"`
	NumberOfDays    int        `json:"number_of_days"`
	TransportMode   string     `json:"transport_mode"` // cab|self-drive-car|self-drive-scooter
	ExchangeRate    float64    `json:"exchange_rate"`
	CurrentStatus   string     `json:"current_status" gorm:"index"`
	NextFollowUpAt  *time.Time `json:"next_follow_up_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pax is the divisor/multiplier for every per-person cost.
func (c *SalesClient) Pax() int { return c.Adults + c.Children }
