package service

import "tripkit/entities"

type ConfirmResult struct {
	AlreadyExists bool                            `json:"already_exists"`
	Assignment    *entities.FulfillmentAssignment `json:"assignment,omitempty"`
	Items         []entities.ChecklistItem        `json:"items,omitempty"`
}

type BookingService interface {
	// Confirm materializes fulfillment from an explicitly chosen version.
	// A second call for the same client is a no-op reporting AlreadyExists.
	Confirm(c *entities.SalesClient, versionNumber int, remarks, assignedTo, uid string) (*ConfirmResult, error)
	Checklist(clientID uint) ([]entities.ChecklistItem, error)
	MarkBooked(itemID uint, booked bool, by string, notes string) (*entities.ChecklistItem, error)
}
