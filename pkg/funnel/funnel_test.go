package funnel

import "testing"

func TestSuggestNext(t *testing.T) {
	cases := []struct{ in, want Status }{
		{Created, Sent},
		{Sent, FollowUp1},
		{FollowUp1, FollowUp2},
		{FollowUp2, FollowUp3},
		{FollowUp3, FollowUp4},
		{FollowUp4, Edited}, // follow-ups exhausted, fall through
		{Edited, UpdatedSent},
		{UpdatedSent, Confirmed},
		{Confirmed, Confirmed}, // absorbing
		{Dead, Dead},
		{"", Created},
		{"bogus", Created},
	}
	for _, c := range cases {
		if got := SuggestNext(c.in); got != c.want {
			t.Errorf("SuggestNext(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWireValues(t *testing.T) {
	want := []string{
		"itinerary-created", "itinerary-sent",
		"1st-follow-up", "2nd-follow-up", "3rd-follow-up", "4th-follow-up",
		"itinerary-edited", "updated-itinerary-sent",
		"advance-paid-confirmed", "dead",
	}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(all), len(want))
	}
	for i, s := range all {
		if string(s) != want[i] {
			t.Errorf("status %d = %q, want %q", i, s, want[i])
		}
	}
}

func TestRequiresScheduling(t *testing.T) {
	for _, s := range All() {
		want := s != Confirmed && s != Dead
		if got := RequiresScheduling(s); got != want {
			t.Errorf("RequiresScheduling(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	if CanTransition(Confirmed, Dead) {
		t.Error("confirmed must absorb")
	}
	if CanTransition(Dead, Created) {
		t.Error("dead must absorb")
	}
	if !CanTransition(FollowUp3, Dead) {
		t.Error("dead must be reachable from any live status")
	}
	if !CanTransition("", Created) {
		t.Error("fresh record must accept the first status")
	}
	if !CanTransition(FollowUp2, Edited) {
		t.Error("live statuses may move anywhere in the funnel")
	}
	if CanTransition(Sent, "nope") {
		t.Error("unknown target must be rejected")
	}
}
