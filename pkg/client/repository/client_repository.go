package repository

import "tripkit/entities"

type ClientRepository interface {
	Create(c *entities.SalesClient) error
	FindByID(id uint) (*entities.SalesClient, error)
	FindByNatural(name, phone string) (*entities.SalesClient, error)
	ListByOperator(uid string) ([]entities.SalesClient, error)
}
