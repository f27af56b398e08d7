// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"tripkit/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Hotel{},
		&entities.RoomType{},
		&entities.Sightseeing{},
		&entities.Activity{},
		&entities.ActivityOption{},
		&entities.EntryTicket{},
		&entities.Meal{},
		&entities.Transportation{},
		&entities.SalesClient{},
		&entities.ItineraryVersion{},
		&entities.FollowUpEntry{},
		&entities.ChecklistItem{},
		&entities.FulfillmentAssignment{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := migrateVersionIndex(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

// migrateVersionIndex backstops the (client_id, version_number) uniqueness on
// DBs created before the composite index existed. Version numbering relies on
// this index to reject duplicates under concurrent writers.
func migrateVersionIndex(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='itinerary_versions'`).Scan(&tbl).Error; err != nil {
		return err
	}
	if tbl == "" {
		// fresh DB, AutoMigrate handles it
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_client_version ON itinerary_versions(client_id, version_number)`).Error
	})
}
