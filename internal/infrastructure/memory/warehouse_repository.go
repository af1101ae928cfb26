package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
)

// WarehouseRepository repositorio de bodegas en memoria.
type WarehouseRepository struct {
	mu         sync.RWMutex
	warehouses map[string]*entity.Warehouse
	order      []string
	seq        int
}

// NewWarehouseRepository construye el repositorio vacío.
func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{warehouses: make(map[string]*entity.Warehouse)}
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// Create agrega una bodega.
func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.warehouses[warehouse.ID]; exists {
		return fmt.Errorf("%w: bodega %s", domain.ErrDuplicate, warehouse.ID)
	}
	copied := *warehouse
	r.warehouses[warehouse.ID] = &copied
	r.order = append(r.order, warehouse.ID)
	return nil
}

// GetByID devuelve la bodega o nil si no existe.
func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	warehouse, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	copied := *warehouse
	return &copied, nil
}

// GetByName busca por nombre exacto; el alta de bodegas lo usa para garantizar
// nombres únicos, ya que traslados e importaciones referencian por nombre.
func (r *WarehouseRepository) GetByName(name string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.warehouses[id].Name == name {
			copied := *r.warehouses[id]
			return &copied, nil
		}
	}
	return nil, nil
}

// Update reemplaza la bodega existente.
func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warehouses[warehouse.ID]; !ok {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, warehouse.ID)
	}
	copied := *warehouse
	r.warehouses[warehouse.ID] = &copied
	return nil
}

// List devuelve las bodegas en orden de inserción.
func (r *WarehouseRepository) List() ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.warehouses[id]
		out = append(out, &copied)
	}
	return out, nil
}

// Delete elimina la bodega por ID.
func (r *WarehouseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warehouses[id]; !ok {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	delete(r.warehouses, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextID entrega y consume el siguiente ID secuencial con el prefijo WH.
func (r *WarehouseRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("WH%03d", r.seq)
}

func (r *WarehouseRepository) setSeq(n int) {
	r.mu.Lock()
	r.seq = n
	r.mu.Unlock()
}
