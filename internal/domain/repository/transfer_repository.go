package repository

import "github.com/jhoicas/InventoryPro-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para TransferRequest (DIP).
type TransferRepository interface {
	Create(transfer *entity.TransferRequest) error
	GetByID(id string) (*entity.TransferRequest, error)
	Update(transfer *entity.TransferRequest) error
	List() ([]*entity.TransferRequest, error)
	NextID() string
}
