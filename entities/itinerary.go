package entities

import "time"

// ItineraryVersion is an immutable, per-client numbered snapshot of the day
// plans and price. Corrections create a new version, never mutate one.
type ItineraryVersion struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	ClientID          uint    `json:"client_id" gorm:"index:idx_client_version,unique"`
	VersionNumber     int     `json:"version_number" gorm:"index:idx_client_version,unique"`
	DaysJSON          string  `json:"days_json"`
	TotalBaseCost     float64 `json:"total_base_cost"`
	ProfitMargin      float64 `json:"profit_margin"`
	FinalPrice        float64 `json:"final_price"`
	ExchangeRate      float64 `json:"exchange_rate"`
	ChangeDescription string  `json:"change_description"`
	FollowUpStatus    string  `json:"follow_up_status"`
	CreatedBy         string  `json:"created_by"`
	CreatedAt         time.Time
}
