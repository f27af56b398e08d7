package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"tripkit/entities"
	"tripkit/pkg/booking/repository"
)

type bookingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BookingRepository { return &bookingRepo{db} }

func (r *bookingRepo) Confirm(c *entities.SalesClient, a *entities.FulfillmentAssignment, items []entities.ChecklistItem, e *entities.FollowUpEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// the unique index on client_id rejects a racing second confirm
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return tx.Model(&entities.SalesClient{}).
			Where("client_id = ?", c.ClientID).
			Updates(map[string]any{"current_status": e.Status, "next_follow_up_at": nil}).Error
	})
}

func (r *bookingRepo) AssignmentByClient(clientID uint) (*entities.FulfillmentAssignment, error) {
	var a entities.FulfillmentAssignment
	if err := r.db.Where("client_id = ?", clientID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *bookingRepo) ItemsByClient(clientID uint) ([]entities.ChecklistItem, error) {
	var out []entities.ChecklistItem
	if err := r.db.Where("client_id = ?", clientID).Order("item_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookingRepo) MarkBooked(itemID uint, booked bool, by string, notes string) (*entities.ChecklistItem, error) {
	upd := map[string]any{"is_booked": booked}
	if booked {
		now := time.Now()
		upd["booked_at"] = &now
		upd["booked_by"] = &by
		if notes != "" {
			upd["booking_notes"] = &notes
		}
	} else {
		upd["booked_at"] = nil
		upd["booked_by"] = nil
	}
	if err := r.db.Model(&entities.ChecklistItem{}).Where("item_id = ?", itemID).Updates(upd).Error; err != nil {
		return nil, err
	}
	var item entities.ChecklistItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
