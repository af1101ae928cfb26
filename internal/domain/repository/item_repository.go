package repository

import "github.com/jhoicas/InventoryPro-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// NextID entrega el siguiente ID secuencial (conveniencia cuando el llamador
// omite uno); la unicidad del ID dentro de la colección es invariante del
// llamador.
type ItemRepository interface {
	Create(item *entity.Item) error
	CreateBatch(items []*entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List() ([]*entity.Item, error)
	Delete(id string) error
	NextID() string
}
