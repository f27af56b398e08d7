package repository

import "tripkit/entities"

// FollowUpRepository owns the append-only transition history. Transition
// writes the history entry and the client's current-status fields as one
// unit; a failure leaves both untouched.
type FollowUpRepository interface {
	Transition(c *entities.SalesClient, e *entities.FollowUpEntry) error
	ListByClient(clientID uint) ([]entities.FollowUpEntry, error)
}
