package entities

import "time"

// FollowUpEntry is the append-only record of one funnel transition.
// VersionNumber is the itinerary version active at transition time, nil when
// the client had no version yet.
type FollowUpEntry struct {
	EntryID        uint       `gorm:"primaryKey" json:"entry_id"`
	ClientID       uint       `gorm:"index" json:"client_id"`
	SalesPersonID  string     `json:"sales_person_id"`
	Status         string     `json:"status"`
	Remarks        string     `json:"remarks"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at"`
	VersionNumber  *int       `json:"version_number"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time
}
