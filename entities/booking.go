package entities

import "time"

// Checklist item types.
const (
	ItemHotel          = "hotel"
	ItemSightseeing    = "sightseeing"
	ItemActivity       = "activity"
	ItemEntryTicket    = "entry_ticket"
	ItemMeal           = "meal"
	ItemTransportation = "transportation"
)

// ChecklistItem is one bookable unit of a confirmed package, derived from
// exactly one itinerary version. DayNumber is nil for whole-trip items.
type ChecklistItem struct {
	ItemID       uint       `gorm:"primaryKey" json:"item_id"`
	ClientID     uint       `gorm:"index" json:"client_id"`
	ItemType     string     `json:"item_type"`
	RefID        uint       `json:"ref_id"`
	ItemName     string     `json:"item_name"`
	DayNumber    *int       `json:"day_number"`
	IsBooked     bool       `json:"is_booked"`
	BookedAt     *time.Time `json:"booked_at"`
	BookedBy     *string    `json:"booked_by"`
	BookingNotes *string    `json:"booking_notes"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FulfillmentAssignment hands a confirmed package to operations. At most one
// per client; re-confirms are no-ops.
type FulfillmentAssignment struct {
	AssignmentID  uint   `gorm:"primaryKey" json:"assignment_id"`
	ClientID      uint   `gorm:"uniqueIndex" json:"client_id"`
	VersionNumber int    `json:"version_number"`
	AssignedTo    string `json:"assigned_to"`
	Status        string `json:"status"` // pending|in-progress|done
	CreatedBy     string `json:"created_by"`
	CreatedAt     time.Time
}
