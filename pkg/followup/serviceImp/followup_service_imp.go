package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tripkit/entities"
	"tripkit/pkg/followup/repository"
	"tripkit/pkg/funnel"
	versionrepo "tripkit/pkg/itinerary/repository"
)

type FollowUpSvc struct {
	repo     repository.FollowUpRepository
	versions versionrepo.VersionRepository
}

func New(repo repository.FollowUpRepository, versions versionrepo.VersionRepository) *FollowUpSvc {
	return &FollowUpSvc{repo: repo, versions: versions}
}

func (s *FollowUpSvc) Suggest(c *entities.SalesClient) funnel.Status {
	return funnel.SuggestNext(funnel.Status(c.CurrentStatus))
}

// Transition validates, snapshots the active version number, and records the
// move. Confirmation is excluded here: it must go through the booking flow so
// that status change and fulfillment creation commit together.
func (s *FollowUpSvc) Transition(c *entities.SalesClient, to funnel.Status, remarks string, nextAt *time.Time, uid string) (*entities.FollowUpEntry, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, errors.New("actor identity is required")
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, errors.New("remarks is required")
	}
	if !funnel.Valid(to) {
		return nil, fmt.Errorf("unknown status %q", to)
	}
	if to == funnel.Confirmed {
		return nil, errors.New("confirmation must go through the booking confirm flow")
	}
	cur := funnel.Status(c.CurrentStatus)
	if !funnel.CanTransition(cur, to) {
		return nil, fmt.Errorf("client is %s, no further transitions", cur)
	}
	if funnel.RequiresScheduling(to) {
		if nextAt == nil {
			return nil, errors.New("next follow-up date/time is required")
		}
	} else {
		nextAt = nil // terminals carry no schedule
	}

	entry := &entities.FollowUpEntry{
		ClientID:       c.ClientID,
		SalesPersonID:  c.OperatorID,
		Status:         string(to),
		Remarks:        strings.TrimSpace(remarks),
		NextFollowUpAt: nextAt,
		VersionNumber:  s.activeVersion(c.ClientID),
		CreatedBy:      uid,
	}
	if err := s.repo.Transition(c, entry); err != nil {
		return nil, err
	}
	c.CurrentStatus = string(to)
	c.NextFollowUpAt = nextAt
	return entry, nil
}

func (s *FollowUpSvc) History(clientID uint) ([]entities.FollowUpEntry, error) {
	return s.repo.ListByClient(clientID)
}

// activeVersion is nil while the client has no itinerary version yet.
func (s *FollowUpSvc) activeVersion(clientID uint) *int {
	v, err := s.versions.LatestByClient(clientID)
	if err != nil {
		return nil
	}
	return &v.VersionNumber
}
