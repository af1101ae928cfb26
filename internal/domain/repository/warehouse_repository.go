package repository

import "github.com/jhoicas/InventoryPro-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// La colección la posee el llamador; el núcleo solo opera sobre ella.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	Delete(id string) error
	NextID() string
}
