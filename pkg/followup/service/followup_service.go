package service

import (
	"time"

	"tripkit/entities"
	"tripkit/pkg/funnel"
)

type FollowUpService interface {
	Suggest(c *entities.SalesClient) funnel.Status
	Transition(c *entities.SalesClient, to funnel.Status, remarks string, nextAt *time.Time, uid string) (*entities.FollowUpEntry, error)
	History(clientID uint) ([]entities.FollowUpEntry, error)
}
