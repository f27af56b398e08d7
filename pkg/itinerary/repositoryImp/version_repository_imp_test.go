package repositoryImp

import (
	"path/filepath"
	"sync"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"tripkit/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(10000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.ItineraryVersion{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	repo := New(openTestDB(t))

	for want := 1; want <= 3; want++ {
		v := &entities.ItineraryVersion{ClientID: 7, DaysJSON: "[]", ChangeDescription: "initial", CreatedBy: "op1"}
		if err := repo.Create(v); err != nil {
			t.Fatal(err)
		}
		if v.VersionNumber != want {
			t.Fatalf("version %d: got number %d", want, v.VersionNumber)
		}
	}

	// numbering is per client
	v := &entities.ItineraryVersion{ClientID: 8, DaysJSON: "[]", ChangeDescription: "initial", CreatedBy: "op1"}
	if err := repo.Create(v); err != nil {
		t.Fatal(err)
	}
	if v.VersionNumber != 1 {
		t.Fatalf("other client: got number %d, want 1", v.VersionNumber)
	}
}

func TestCreateConcurrentNoGapsNoDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := &entities.ItineraryVersion{ClientID: 1, DaysJSON: "[]", ChangeDescription: "edit", CreatedBy: "op1"}
			errs <- repo.Create(v)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	vs, err := repo.ListByClient(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != n {
		t.Fatalf("got %d versions, want %d", len(vs), n)
	}
	for i, v := range vs {
		if v.VersionNumber != i+1 {
			t.Fatalf("position %d holds number %d: %v", i, v.VersionNumber, vs)
		}
	}
}

func TestLatestAndFindByNumber(t *testing.T) {
	repo := New(openTestDB(t))

	for _, desc := range []string{"first", "second"} {
		v := &entities.ItineraryVersion{ClientID: 3, DaysJSON: "[]", ChangeDescription: desc, CreatedBy: "op1"}
		if err := repo.Create(v); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := repo.LatestByClient(3)
	if err != nil {
		t.Fatal(err)
	}
	if latest.VersionNumber != 2 || latest.ChangeDescription != "second" {
		t.Fatalf("latest = %+v", latest)
	}

	v1, err := repo.FindByNumber(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v1.ChangeDescription != "first" {
		t.Fatalf("v1 = %+v", v1)
	}

	if _, err := repo.LatestByClient(99); err == nil {
		t.Fatal("want error for client with no versions")
	}
}
