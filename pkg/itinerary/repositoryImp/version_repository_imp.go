package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"tripkit/entities"
	"tripkit/pkg/itinerary/repository"
)

type versionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VersionRepository { return &versionRepo{db} }

// Create assigns the next version number and inserts the row in a single
// INSERT..SELECT statement, so concurrent writers for the same client can
// never observe the same max and the sequence has no gaps. The unique index
// on (client_id, version_number) backstops the invariant.
func (r *versionRepo) Create(v *entities.ItineraryVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
INSERT INTO itinerary_versions
  (client_id, version_number, days_json, total_base_cost, profit_margin, final_price,
   exchange_rate, change_description, follow_up_status, created_by, created_at)
SELECT ?, COALESCE(MAX(version_number), 0) + 1, ?, ?, ?, ?, ?, ?, ?, ?, ?
FROM itinerary_versions WHERE client_id = ?`,
			v.ClientID, v.DaysJSON, v.TotalBaseCost, v.ProfitMargin, v.FinalPrice,
			v.ExchangeRate, v.ChangeDescription, v.FollowUpStatus, v.CreatedBy, time.Now(),
			v.ClientID)
		if res.Error != nil {
			return res.Error
		}
		// read the assigned number back inside the same transaction
		return tx.Where("client_id = ?", v.ClientID).Order("version_number DESC").First(v).Error
	})
}

func (r *versionRepo) LatestByClient(clientID uint) (*entities.ItineraryVersion, error) {
	var v entities.ItineraryVersion
	if err := r.db.Where("client_id = ?", clientID).Order("version_number DESC").First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *versionRepo) ListByClient(clientID uint) ([]entities.ItineraryVersion, error) {
	var vs []entities.ItineraryVersion
	if err := r.db.Where("client_id = ?", clientID).Order("version_number ASC").Find(&vs).Error; err != nil {
		return nil, err
	}
	return vs, nil
}

func (r *versionRepo) FindByNumber(clientID uint, version int) (*entities.ItineraryVersion, error) {
	var v entities.ItineraryVersion
	if err := r.db.Where("client_id = ? AND version_number = ?", clientID, version).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
