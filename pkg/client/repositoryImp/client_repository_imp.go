package repositoryImp

import (
	"gorm.io/gorm"

	"tripkit/entities"
	"tripkit/pkg/client/repository"
)

type clientRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ClientRepository { return &clientRepo{db} }

func (r *clientRepo) Create(c *entities.SalesClient) error { return r.db.Create(c).Error }

func (r *clientRepo) FindByID(id uint) (*entities.SalesClient, error) {
	var c entities.SalesClient
	if err := r.db.Where("client_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) FindByNatural(name, phone string) (*entities.SalesClient, error) {
	var c entities.SalesClient
	if err := r.db.Where("name = ? AND phone = ?", name, phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) ListByOperator(uid string) ([]entities.SalesClient, error) {
	var out []entities.SalesClient
	if err := r.db.Where("operator_id = ?", uid).Order("updated_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
