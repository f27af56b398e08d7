package repository

import "tripkit/entities"

// VersionRepository persists immutable itinerary snapshots. Create assigns
// VersionNumber server-side; callers never pick a number.
type VersionRepository interface {
	Create(v *entities.ItineraryVersion) error
	LatestByClient(clientID uint) (*entities.ItineraryVersion, error)
	ListByClient(clientID uint) ([]entities.ItineraryVersion, error)
	FindByNumber(clientID uint, version int) (*entities.ItineraryVersion, error)
}
