package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"tripkit/entities"
	followuprepo "tripkit/pkg/followup/repositoryImp"
	"tripkit/pkg/funnel"
	versionrepo "tripkit/pkg/itinerary/repositoryImp"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.SalesClient{}, &entities.FollowUpEntry{}, &entities.ItineraryVersion{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newSvc(t *testing.T) (*FollowUpSvc, *gorm.DB, *entities.SalesClient) {
	db := openTestDB(t)
	svc := New(followuprepo.New(db), versionrepo.New(db))
	cl := &entities.SalesClient{Name: "Asha", Phone: "100", OperatorID: "op1", CurrentStatus: string(funnel.Created)}
	if err := db.Create(cl).Error; err != nil {
		t.Fatal(err)
	}
	return svc, db, cl
}

func nextWeek() *time.Time {
	t := time.Now().AddDate(0, 0, 7)
	return &t
}

func TestTransitionValidation(t *testing.T) {
	svc, _, cl := newSvc(t)

	if _, err := svc.Transition(cl, funnel.Sent, "", nextWeek(), "op1"); err == nil {
		t.Error("missing remarks must be rejected")
	}
	if _, err := svc.Transition(cl, funnel.Sent, "sent quote", nextWeek(), ""); err == nil {
		t.Error("missing actor must be rejected")
	}
	if _, err := svc.Transition(cl, funnel.Sent, "sent quote", nil, "op1"); err == nil {
		t.Error("missing schedule must be rejected for a scheduling status")
	}
	if _, err := svc.Transition(cl, "bogus", "x", nextWeek(), "op1"); err == nil {
		t.Error("unknown status must be rejected")
	}
	if _, err := svc.Transition(cl, funnel.Confirmed, "paid", nil, "op1"); err == nil {
		t.Error("direct confirmation must be rejected")
	}

	// nothing was written
	history, err := svc.History(cl.ClientID)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Fatalf("validation failures wrote %d entries", len(history))
	}
	if cl.CurrentStatus != string(funnel.Created) {
		t.Fatalf("status changed to %q", cl.CurrentStatus)
	}
}

func TestTransitionWritesHistoryAndStatus(t *testing.T) {
	svc, db, cl := newSvc(t)

	entry, err := svc.Transition(cl, funnel.Sent, "quote mailed", nextWeek(), "op1")
	if err != nil {
		t.Fatal(err)
	}
	if entry.VersionNumber != nil {
		t.Errorf("version number should be nil before any version exists, got %d", *entry.VersionNumber)
	}

	var stored entities.SalesClient
	if err := db.First(&stored, cl.ClientID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.CurrentStatus != string(funnel.Sent) {
		t.Errorf("stored status = %q", stored.CurrentStatus)
	}
	if stored.NextFollowUpAt == nil {
		t.Error("stored next follow-up is nil")
	}

	history, _ := svc.History(cl.ClientID)
	if len(history) != 1 || history[0].Remarks != "quote mailed" {
		t.Fatalf("history = %+v", history)
	}
}

func TestTransitionSnapshotsActiveVersion(t *testing.T) {
	svc, db, cl := newSvc(t)

	vrepo := versionrepo.New(db)
	for i := 0; i < 2; i++ {
		v := &entities.ItineraryVersion{ClientID: cl.ClientID, DaysJSON: "[]", ChangeDescription: "edit", CreatedBy: "op1"}
		if err := vrepo.Create(v); err != nil {
			t.Fatal(err)
		}
	}

	entry, err := svc.Transition(cl, funnel.FollowUp1, "called, thinking", nextWeek(), "op1")
	if err != nil {
		t.Fatal(err)
	}
	if entry.VersionNumber == nil || *entry.VersionNumber != 2 {
		t.Fatalf("entry version = %v, want 2", entry.VersionNumber)
	}
}

func TestDeadIsTerminalAndUnscheduled(t *testing.T) {
	svc, _, cl := newSvc(t)

	entry, err := svc.Transition(cl, funnel.Dead, "no response for a month", nil, "op1")
	if err != nil {
		t.Fatal(err)
	}
	if entry.NextFollowUpAt != nil {
		t.Error("dead must not carry a follow-up schedule")
	}

	if _, err := svc.Transition(cl, funnel.Sent, "trying again", nextWeek(), "op1"); err == nil {
		t.Error("transitions out of dead must be rejected")
	}
}
