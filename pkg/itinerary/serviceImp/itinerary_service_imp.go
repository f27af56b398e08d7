package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tripkit/entities"
	catrepo "tripkit/pkg/catalog/repository"
	"tripkit/pkg/itinerary/repository"
	"tripkit/pkg/itinerary/types"
	"tripkit/pkg/pricing"
)

type ItinerarySvc struct {
	engine   pricing.Engine
	catalog  catrepo.CatalogRepository
	versions repository.VersionRepository
}

func New(engine pricing.Engine, catalog catrepo.CatalogRepository, versions repository.VersionRepository) *ItinerarySvc {
	return &ItinerarySvc{engine: engine, catalog: catalog, versions: versions}
}

func validateDays(c *entities.SalesClient, days []types.DayPlan) error {
	if len(days) == 0 {
		return errors.New("day plans are required")
	}
	if c.NumberOfDays > 0 && len(days) != c.NumberOfDays {
		return fmt.Errorf("expected %d day plans, got %d", c.NumberOfDays, len(days))
	}
	// day numbers must be exactly 1..N, no gaps, no duplicates
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d.Day < 1 || d.Day > len(days) || seen[d.Day] {
			return fmt.Errorf("day numbers must be 1..%d with no gaps", len(days))
		}
		seen[d.Day] = true
	}
	return nil
}

func (s *ItinerarySvc) Quote(c *entities.SalesClient, days []types.DayPlan) (types.CostBreakdown, error) {
	if err := validateDays(c, days); err != nil {
		return types.CostBreakdown{}, err
	}
	snap, err := s.catalog.Snapshot()
	if err != nil {
		return types.CostBreakdown{}, err
	}
	return s.engine.Quote(snap, c, days), nil
}

// CreateVersion prices the day plans and persists an immutable snapshot.
// Validation happens before any write; the version number is assigned
// atomically by the repository.
func (s *ItinerarySvc) CreateVersion(c *entities.SalesClient, days []types.DayPlan, margin float64, changeDescription, uid string) (*entities.ItineraryVersion, error) {
	if strings.TrimSpace(changeDescription) == "" {
		return nil, errors.New("change description is required")
	}
	if strings.TrimSpace(uid) == "" {
		return nil, errors.New("actor identity is required")
	}
	bd, err := s.Quote(c, days)
	if err != nil {
		return nil, err
	}

	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	v := &entities.ItineraryVersion{
		ClientID:          c.ClientID,
		DaysJSON:          string(daysJSON),
		TotalBaseCost:     bd.TotalBaseCost,
		ProfitMargin:      margin,
		FinalPrice:        bd.TotalBaseCost + margin,
		ExchangeRate:      c.ExchangeRate,
		ChangeDescription: strings.TrimSpace(changeDescription),
		FollowUpStatus:    c.CurrentStatus,
		CreatedBy:         uid,
	}
	if err := s.versions.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ItinerarySvc) Latest(clientID uint) (*entities.ItineraryVersion, error) {
	return s.versions.LatestByClient(clientID)
}

func (s *ItinerarySvc) List(clientID uint) ([]entities.ItineraryVersion, error) {
	return s.versions.ListByClient(clientID)
}
