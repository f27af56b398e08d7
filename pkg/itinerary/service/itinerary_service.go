package service

import (
	"tripkit/entities"
	"tripkit/pkg/itinerary/types"
)

type ItineraryService interface {
	Quote(c *entities.SalesClient, days []types.DayPlan) (types.CostBreakdown, error)
	CreateVersion(c *entities.SalesClient, days []types.DayPlan, margin float64, changeDescription, uid string) (*entities.ItineraryVersion, error)
	Latest(clientID uint) (*entities.ItineraryVersion, error)
	List(clientID uint) ([]entities.ItineraryVersion, error)
}
