package funnel

// Status is the sales funnel stage of a package. The string values are the
// wire/storage representation and their order drives SuggestNext.
type Status string

const (
	Created     Status = "itinerary-created"
	Sent        Status = "itinerary-sent"
	FollowUp1   Status = "1st-follow-up"
	FollowUp2   Status = "2nd-follow-up"
	FollowUp3   Status = "3rd-follow-up"
	FollowUp4   Status = "4th-follow-up"
	Edited      Status = "itinerary-edited"
	UpdatedSent Status = "updated-itinerary-sent"
	Confirmed   Status = "advance-paid-confirmed"
	Dead        Status = "dead"
)

// successor drives SuggestNext. Follow-ups cycle 1..4 before falling through
// to itinerary-edited; terminals map to themselves.
var successor = map[Status]Status{
	Created:     Sent,
	Sent:        FollowUp1,
	FollowUp1:   FollowUp2,
	FollowUp2:   FollowUp3,
	FollowUp3:   FollowUp4,
	FollowUp4:   Edited,
	Edited:      UpdatedSent,
	UpdatedSent: Confirmed,
	Confirmed:   Confirmed,
	Dead:        Dead,
}

func Valid(s Status) bool { _, ok := successor[s]; return ok }

// Terminal statuses are absorbing: no transition leaves them.
func Terminal(s Status) bool { return s == Confirmed || s == Dead }

// SuggestNext returns the default next stage. A client with no status yet
// starts at the top of the funnel.
func SuggestNext(s Status) Status {
	if n, ok := successor[s]; ok {
		return n
	}
	return Created
}

// RequiresScheduling reports whether a transition into s must carry a
// next-follow-up date/time. False exactly for the two terminals.
func RequiresScheduling(s Status) bool { return s != Confirmed && s != Dead }

// CanTransition gates a funnel move. Terminals absorb; dead is reachable from
// anywhere; otherwise operators may move the funnel in either direction (a
// stalled client can drop back to itinerary-edited, for example).
func CanTransition(from, to Status) bool {
	if !Valid(to) {
		return false
	}
	if from == "" {
		return true
	}
	if Terminal(from) {
		return false
	}
	return true
}

func All() []Status {
	return []Status{Created, Sent, FollowUp1, FollowUp2, FollowUp3, FollowUp4, Edited, UpdatedSent, Confirmed, Dead}
}
