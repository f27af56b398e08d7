package pricing

import (
	"log"
	"time"

	"tripkit/entities"
	"tripkit/pkg/itinerary/types"
)

// Snapshot is the read-only catalog view for one pricing call. It is assumed
// consistent for the duration of the call; day plans may reference ids that
// were since removed from the catalog, and those line items are skipped.
type Snapshot struct {
	Hotels     map[uint]entities.Hotel
	RoomTypes  map[uint]entities.RoomType
	Sights     map[uint]entities.Sightseeing
	Activities map[uint]entities.Activity
	Options    map[uint]entities.ActivityOption
	Tickets    map[uint]entities.EntryTicket
	Meals      map[uint]entities.Meal
	Transport  map[string]entities.Transportation
}

type StayKey struct {
	HotelID    uint
	RoomTypeID uint
}

type Engine interface {
	SeasonalRate(rt entities.RoomType, start time.Time) (float64, string)
	VehicleCost(s entities.Sightseeing, pax int) float64
	GroupCost(opt entities.ActivityOption, pax int) float64
	ConsolidateStays(days []types.DayPlan) map[StayKey]int
	Quote(snap *Snapshot, c *entities.SalesClient, days []types.DayPlan) types.CostBreakdown
}

type engine struct{}

func New() Engine { return &engine{} }

// SeasonalRate picks the nightly rate from the travel start date. Only
// month/day are compared: peak is Dec 20..Jan 5 inclusive (wraps the year
// boundary), mid is Jul 1..Aug 31, everything else is off-season.
func (e *engine) SeasonalRate(rt entities.RoomType, start time.Time) (float64, string) {
	md := int(start.Month())*100 + start.Day()
	switch {
	case md >= 1220 || md <= 105:
		return rt.PeakRate, "peak"
	case md >= 701 && md <= 831:
		return rt.MidRate, "mid"
	default:
		return rt.OffRate, "off"
	}
}

// VehicleCost maps total pax to the shared-vehicle tier, inclusive upper
// bounds: 6 / 14 / 20 / bus.
func (e *engine) VehicleCost(s entities.Sightseeing, pax int) float64 {
	switch {
	case pax <= 6:
		return s.CabSmall
	case pax <= 14:
		return s.CabMedium
	case pax <= 20:
		return s.CabLarge
	default:
		return s.CabBus
	}
}

// GroupCost charges the flat cost once per group of Capacity people, rounding
// fractional groups up. A capacity covering everyone is a single group.
func (e *engine) GroupCost(opt entities.ActivityOption, pax int) float64 {
	if opt.Capacity <= 0 || opt.Capacity >= pax {
		return opt.FlatCost
	}
	groups := (pax + opt.Capacity - 1) / opt.Capacity
	return opt.FlatCost * float64(groups)
}

// ConsolidateStays counts nights per (hotel, room type) pair across the trip.
// Occurrences are accumulated whether or not they are contiguous; an A, B, A
// pattern still reports two nights for A.
func (e *engine) ConsolidateStays(days []types.DayPlan) map[StayKey]int {
	nights := map[StayKey]int{}
	for _, d := range days {
		if d.Lodging == nil {
			continue
		}
		nights[StayKey{d.Lodging.HotelID, d.Lodging.RoomTypeID}]++
	}
	return nights
}

// Quote produces the six-category breakdown plus the per-day parallel view.
// Pure: no side effects beyond warn logs for skipped catalog references.
func (e *engine) Quote(snap *Snapshot, c *entities.SalesClient, days []types.DayPlan) types.CostBreakdown {
	pax := c.Pax()
	out := types.CostBreakdown{Days: make([]types.DayCost, 0, len(days))}

	tr, hasTransport := snap.Transport[c.TransportMode]
	selfDrive := c.TransportMode != entities.ModeCab
	if !hasTransport {
		log.Printf("[pricing] skip: transport mode %q not in catalog", c.TransportMode)
	}

	for _, d := range days {
		dc := types.DayCost{Day: d.Day}

		// Transportation: flat daily rental for self-drive; cab cost is folded
		// into per-stop sightseeing below.
		if selfDrive && hasTransport {
			dc.Transportation = tr.DailyRentalRate
		}

		if d.Lodging != nil {
			if rt, ok := snap.RoomTypes[d.Lodging.RoomTypeID]; ok {
				rate, label := e.SeasonalRate(rt, c.TravelStartDate)
				dc.Accommodation = rate
				out.SeasonLabel = label
			} else {
				log.Printf("[pricing] skip: room type %d not in catalog", d.Lodging.RoomTypeID)
			}
		}

		for _, sid := range d.SightseeingIDs {
			s, ok := snap.Sights[sid]
			if !ok {
				log.Printf("[pricing] skip: sightseeing %d not in catalog", sid)
				continue
			}
			if selfDrive {
				if hasTransport {
					dc.Sightseeing += tr.FuelSurchargePerStop
				}
			} else {
				dc.Sightseeing += e.VehicleCost(s, pax)
			}
		}

		for _, a := range d.Activities {
			opt, ok := snap.Options[a.OptionID]
			if !ok {
				log.Printf("[pricing] skip: activity option %d not in catalog", a.OptionID)
				continue
			}
			dc.Activities += e.GroupCost(opt, pax)
		}

		for _, tid := range d.TicketIDs {
			t, ok := snap.Tickets[tid]
			if !ok {
				log.Printf("[pricing] skip: ticket %d not in catalog", tid)
				continue
			}
			dc.Tickets += t.CostPerPerson * float64(pax)
		}

		for _, mid := range d.MealIDs {
			m, ok := snap.Meals[mid]
			if !ok {
				log.Printf("[pricing] skip: meal %d not in catalog", mid)
				continue
			}
			dc.Meals += m.CostPerPerson * float64(pax)
		}

		out.Transportation += dc.Transportation
		out.Sightseeing += dc.Sightseeing
		out.Activities += dc.Activities
		out.Tickets += dc.Tickets
		out.Meals += dc.Meals
		out.Days = append(out.Days, dc)
	}

	// Accommodation category total goes through the stay consolidator so the
	// summary view and the per-day view always agree.
	for key, n := range e.ConsolidateStays(days) {
		rt, ok := snap.RoomTypes[key.RoomTypeID]
		if !ok {
			continue // already warned per-day
		}
		rate, _ := e.SeasonalRate(rt, c.TravelStartDate)
		out.Accommodation += rate * float64(n)
	}

	out.TotalBaseCost = out.Transportation + out.Accommodation + out.Sightseeing +
		out.Activities + out.Tickets + out.Meals
	return out
}
