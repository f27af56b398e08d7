package repository

import "tripkit/entities"

// BookingRepository owns fulfillment records. Confirm commits the assignment,
// the checklist, the confirmed history entry, and the client status flip as
// one transaction; if any write fails, none of them land.
type BookingRepository interface {
	Confirm(c *entities.SalesClient, a *entities.FulfillmentAssignment, items []entities.ChecklistItem, e *entities.FollowUpEntry) error
	AssignmentByClient(clientID uint) (*entities.FulfillmentAssignment, error)
	ItemsByClient(clientID uint) ([]entities.ChecklistItem, error)
	MarkBooked(itemID uint, booked bool, by string, notes string) (*entities.ChecklistItem, error)
}
