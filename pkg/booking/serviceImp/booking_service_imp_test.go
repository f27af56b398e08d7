package serviceImp

import (
	"encoding/json"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"tripkit/entities"
	bookingrepo "tripkit/pkg/booking/repositoryImp"
	catalogrepo "tripkit/pkg/catalog/repositoryImp"
	"tripkit/pkg/funnel"
	versionrepo "tripkit/pkg/itinerary/repositoryImp"
	"tripkit/pkg/itinerary/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&entities.Hotel{}, &entities.RoomType{}, &entities.Sightseeing{},
		&entities.Activity{}, &entities.ActivityOption{}, &entities.EntryTicket{},
		&entities.Meal{}, &entities.Transportation{},
		&entities.SalesClient{}, &entities.ItineraryVersion{},
		&entities.FollowUpEntry{}, &entities.ChecklistItem{}, &entities.FulfillmentAssignment{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, row := range []any{
		&entities.Hotel{HotelID: 1, Name: "Seaside"},
		&entities.RoomType{RoomTypeID: 11, HotelID: 1, Name: "Deluxe", PeakRate: 100, MidRate: 80, OffRate: 60},
		&entities.Activity{ActivityID: 7, Name: "Rafting"},
		&entities.ActivityOption{OptionID: 71, ActivityID: 7, Name: "Shared raft", FlatCost: 30, Capacity: 4},
		&entities.EntryTicket{TicketID: 3, Name: "Fort", CostPerPerson: 5},
		&entities.Meal{MealID: 9, Name: "Buffet", CostPerPerson: 10},
		&entities.Transportation{TransportID: 2, Mode: entities.ModeSelfDriveCar, DailyRentalRate: 25, FuelSurchargePerStop: 8},
	} {
		if err := db.Create(row).Error; err != nil {
			t.Fatal(err)
		}
	}
}

func setup(t *testing.T, mode string) (*BookingSvc, *gorm.DB, *entities.SalesClient) {
	db := openTestDB(t)
	seed(t, db)

	svc := New(bookingrepo.New(db), versionrepo.New(db), catalogrepo.New(db))

	cl := &entities.SalesClient{
		Name: "Asha", Phone: "100", OperatorID: "op1", Adults: 2,
		TransportMode: mode, CurrentStatus: string(funnel.UpdatedSent),
	}
	if err := db.Create(cl).Error; err != nil {
		t.Fatal(err)
	}

	days := []types.DayPlan{
		{Day: 1, Lodging: &types.Lodging{HotelID: 1, RoomTypeID: 11}, TicketIDs: []uint{3}},
		{Day: 2, Lodging: &types.Lodging{HotelID: 1, RoomTypeID: 11},
			Activities: []types.ActivityChoice{{ActivityID: 7, OptionID: 71}}, MealIDs: []uint{9}},
	}
	raw, _ := json.Marshal(days)
	v := &entities.ItineraryVersion{ClientID: cl.ClientID, DaysJSON: string(raw), ChangeDescription: "final plan", CreatedBy: "op1"}
	if err := versionrepo.New(db).Create(v); err != nil {
		t.Fatal(err)
	}
	return svc, db, cl
}

func TestConfirmCreatesChecklistAndAssignment(t *testing.T) {
	svc, db, cl := setup(t, entities.ModeCab)

	res, err := svc.Confirm(cl, 1, "advance received", "ops-desk", "op1")
	if err != nil {
		t.Fatal(err)
	}
	if res.AlreadyExists {
		t.Fatal("first confirm reported already exists")
	}
	// 2 lodging + 1 activity + 1 ticket + 1 meal; cab mode adds no rental row
	if len(res.Items) != 5 {
		t.Fatalf("got %d checklist items: %+v", len(res.Items), res.Items)
	}
	if res.Assignment.VersionNumber != 1 || res.Assignment.Status != "pending" {
		t.Fatalf("assignment = %+v", res.Assignment)
	}

	named := map[string]bool{}
	for _, it := range res.Items {
		named[it.ItemType+":"+it.ItemName] = true
		if it.DayNumber == nil {
			t.Errorf("per-day item without day: %+v", it)
		}
	}
	if !named["hotel:Seaside / Deluxe"] || !named["activity:Rafting / Shared raft"] {
		t.Errorf("catalog names missing: %v", named)
	}

	var stored entities.SalesClient
	if err := db.First(&stored, cl.ClientID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.CurrentStatus != string(funnel.Confirmed) {
		t.Errorf("status = %q", stored.CurrentStatus)
	}

	var entries []entities.FollowUpEntry
	db.Where("client_id = ?", cl.ClientID).Find(&entries)
	if len(entries) != 1 || entries[0].Status != string(funnel.Confirmed) || *entries[0].VersionNumber != 1 {
		t.Fatalf("history = %+v", entries)
	}
}

func TestConfirmSelfDriveAddsWholeTripRental(t *testing.T) {
	svc, _, cl := setup(t, entities.ModeSelfDriveCar)

	res, err := svc.Confirm(cl, 1, "advance received", "", "op1")
	if err != nil {
		t.Fatal(err)
	}
	var rental *entities.ChecklistItem
	for i := range res.Items {
		if res.Items[i].ItemType == entities.ItemTransportation {
			rental = &res.Items[i]
		}
	}
	if rental == nil {
		t.Fatal("no transportation checklist item")
	}
	if rental.DayNumber != nil {
		t.Error("rental must be a whole-trip item (nil day)")
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	svc, db, cl := setup(t, entities.ModeCab)

	if _, err := svc.Confirm(cl, 1, "advance received", "", "op1"); err != nil {
		t.Fatal(err)
	}
	res, err := svc.Confirm(cl, 1, "clicked twice", "", "op1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.AlreadyExists {
		t.Fatal("second confirm did not report already exists")
	}

	var nAssignments, nItems, nEntries int64
	db.Model(&entities.FulfillmentAssignment{}).Where("client_id = ?", cl.ClientID).Count(&nAssignments)
	db.Model(&entities.ChecklistItem{}).Where("client_id = ?", cl.ClientID).Count(&nItems)
	db.Model(&entities.FollowUpEntry{}).Where("client_id = ?", cl.ClientID).Count(&nEntries)
	if nAssignments != 1 || nItems != 5 || nEntries != 1 {
		t.Fatalf("second confirm wrote rows: %d/%d/%d", nAssignments, nItems, nEntries)
	}
}

func TestConfirmValidation(t *testing.T) {
	svc, db, cl := setup(t, entities.ModeCab)

	if _, err := svc.Confirm(cl, 99, "advance received", "", "op1"); err == nil {
		t.Error("missing version must fail")
	}
	if _, err := svc.Confirm(cl, 1, "", "", "op1"); err == nil {
		t.Error("missing remarks must fail")
	}
	if _, err := svc.Confirm(cl, 1, "advance received", "", ""); err == nil {
		t.Error("missing actor must fail")
	}

	// failed confirms must not flip the status
	var stored entities.SalesClient
	db.First(&stored, cl.ClientID)
	if stored.CurrentStatus != string(funnel.UpdatedSent) {
		t.Errorf("status = %q after failed confirms", stored.CurrentStatus)
	}
}

func TestMarkBooked(t *testing.T) {
	svc, _, cl := setup(t, entities.ModeCab)

	res, err := svc.Confirm(cl, 1, "advance received", "", "op1")
	if err != nil {
		t.Fatal(err)
	}
	items, _ := svc.Checklist(cl.ClientID)
	if len(items) != len(res.Items) {
		t.Fatalf("checklist = %d items, want %d", len(items), len(res.Items))
	}

	item, err := svc.MarkBooked(items[0].ItemID, true, "op2", "ref 4451")
	if err != nil {
		t.Fatal(err)
	}
	if !item.IsBooked || item.BookedBy == nil || *item.BookedBy != "op2" || item.BookedAt == nil {
		t.Fatalf("item = %+v", item)
	}

	if _, err := svc.MarkBooked(items[1].ItemID, true, "", ""); err == nil {
		t.Error("booking without actor must fail")
	}
}
