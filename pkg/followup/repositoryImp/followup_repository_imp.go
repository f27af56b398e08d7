package repositoryImp

import (
	"gorm.io/gorm"

	"tripkit/entities"
	"tripkit/pkg/followup/repository"
)

type followUpRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FollowUpRepository { return &followUpRepo{db} }

func (r *followUpRepo) Transition(c *entities.SalesClient, e *entities.FollowUpEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return tx.Model(&entities.SalesClient{}).
			Where("client_id = ?", c.ClientID).
			Updates(map[string]any{
				"current_status":    e.Status,
				"next_follow_up_at": e.NextFollowUpAt,
			}).Error
	})
}

func (r *followUpRepo) ListByClient(clientID uint) ([]entities.FollowUpEntry, error) {
	var out []entities.FollowUpEntry
	if err := r.db.Where("client_id = ?", clientID).Order("entry_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
