package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tripkit/entities"
	bookingrepo "tripkit/pkg/booking/repository"
	"tripkit/pkg/booking/service"
	catrepo "tripkit/pkg/catalog/repository"
	"tripkit/pkg/funnel"
	versionrepo "tripkit/pkg/itinerary/repository"
	"tripkit/pkg/itinerary/types"
	"tripkit/pkg/pricing"
)

type BookingSvc struct {
	repo     bookingrepo.BookingRepository
	versions versionrepo.VersionRepository
	catalog  catrepo.CatalogRepository
}

func New(repo bookingrepo.BookingRepository, versions versionrepo.VersionRepository, catalog catrepo.CatalogRepository) *BookingSvc {
	return &BookingSvc{repo: repo, versions: versions, catalog: catalog}
}

func (s *BookingSvc) Confirm(c *entities.SalesClient, versionNumber int, remarks, assignedTo, uid string) (*service.ConfirmResult, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, errors.New("actor identity is required")
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, errors.New("remarks is required")
	}
	if funnel.Status(c.CurrentStatus) == funnel.Dead {
		return nil, errors.New("client is dead, cannot confirm")
	}
	// the caller picks the version explicitly; "latest" is never assumed
	v, err := s.versions.FindByNumber(c.ClientID, versionNumber)
	if err != nil {
		return nil, fmt.Errorf("version %d not found", versionNumber)
	}

	// retried/duplicate confirm clicks land here
	if _, err := s.repo.AssignmentByClient(c.ClientID); err == nil {
		return &service.ConfirmResult{AlreadyExists: true}, nil
	}

	items, err := s.expand(c, v)
	if err != nil {
		return nil, err
	}
	assignment := &entities.FulfillmentAssignment{
		ClientID:      c.ClientID,
		VersionNumber: v.VersionNumber,
		AssignedTo:    assignedTo,
		Status:        "pending",
		CreatedBy:     uid,
	}
	entry := &entities.FollowUpEntry{
		ClientID:      c.ClientID,
		SalesPersonID: c.OperatorID,
		Status:        string(funnel.Confirmed),
		Remarks:       strings.TrimSpace(remarks),
		VersionNumber: &v.VersionNumber,
		CreatedBy:     uid,
	}
	if err := s.repo.Confirm(c, assignment, items, entry); err != nil {
		// nothing was persisted; the client keeps its previous status
		return nil, err
	}
	c.CurrentStatus = string(funnel.Confirmed)
	c.NextFollowUpAt = nil
	return &service.ConfirmResult{Assignment: assignment, Items: items}, nil
}

// expand turns the chosen version's day plans into one checklist row per
// bookable unit, tagged with its day. Catalog names are best-effort: a row
// whose catalog entry is gone keeps a placeholder name, the unit still has
// to be arranged.
func (s *BookingSvc) expand(c *entities.SalesClient, v *entities.ItineraryVersion) ([]entities.ChecklistItem, error) {
	var days []types.DayPlan
	if err := json.Unmarshal([]byte(v.DaysJSON), &days); err != nil {
		return nil, fmt.Errorf("version %d payload: %w", v.VersionNumber, err)
	}
	snap, err := s.catalog.Snapshot()
	if err != nil {
		return nil, err
	}

	var items []entities.ChecklistItem

	// whole-trip rental for self-drive modes
	if c.TransportMode != entities.ModeCab {
		name := c.TransportMode
		var refID uint
		if tr, ok := snap.Transport[c.TransportMode]; ok {
			refID = tr.TransportID
		}
		items = append(items, entities.ChecklistItem{
			ClientID: c.ClientID, ItemType: entities.ItemTransportation, RefID: refID, ItemName: name,
		})
	}

	for _, d := range days {
		day := d.Day
		if d.Lodging != nil {
			items = append(items, entities.ChecklistItem{
				ClientID: c.ClientID, ItemType: entities.ItemHotel, RefID: d.Lodging.RoomTypeID,
				ItemName: lodgingName(snap, d.Lodging), DayNumber: intPtr(day),
			})
		}
		for _, a := range d.Activities {
			items = append(items, entities.ChecklistItem{
				ClientID: c.ClientID, ItemType: entities.ItemActivity, RefID: a.OptionID,
				ItemName: activityName(snap, a), DayNumber: intPtr(day),
			})
		}
		for _, tid := range d.TicketIDs {
			items = append(items, entities.ChecklistItem{
				ClientID: c.ClientID, ItemType: entities.ItemEntryTicket, RefID: tid,
				ItemName: ticketName(snap, tid), DayNumber: intPtr(day),
			})
		}
		for _, mid := range d.MealIDs {
			items = append(items, entities.ChecklistItem{
				ClientID: c.ClientID, ItemType: entities.ItemMeal, RefID: mid,
				ItemName: mealName(snap, mid), DayNumber: intPtr(day),
			})
		}
	}
	return items, nil
}

func (s *BookingSvc) Checklist(clientID uint) ([]entities.ChecklistItem, error) {
	return s.repo.ItemsByClient(clientID)
}

func (s *BookingSvc) MarkBooked(itemID uint, booked bool, by string, notes string) (*entities.ChecklistItem, error) {
	if booked && strings.TrimSpace(by) == "" {
		return nil, errors.New("actor identity is required")
	}
	return s.repo.MarkBooked(itemID, booked, by, notes)
}

func intPtr(v int) *int { return &v }

func lodgingName(snap *pricing.Snapshot, l *types.Lodging) string {
	rt, ok := snap.RoomTypes[l.RoomTypeID]
	if !ok {
		return fmt.Sprintf("room type #%d", l.RoomTypeID)
	}
	if h, ok := snap.Hotels[rt.HotelID]; ok {
		return h.Name + " / " + rt.Name
	}
	return rt.Name
}

func activityName(snap *pricing.Snapshot, a types.ActivityChoice) string {
	opt, ok := snap.Options[a.OptionID]
	if !ok {
		return fmt.Sprintf("activity option #%d", a.OptionID)
	}
	if act, ok := snap.Activities[opt.ActivityID]; ok {
		return act.Name + " / " + opt.Name
	}
	return opt.Name
}

func ticketName(snap *pricing.Snapshot, id uint) string {
	if t, ok := snap.Tickets[id]; ok {
		return t.Name
	}
	return fmt.Sprintf("ticket #%d", id)
}

func mealName(snap *pricing.Snapshot, id uint) string {
	if m, ok := snap.Meals[id]; ok {
		return m.Name
	}
	return fmt.Sprintf("meal #%d", id)
}
