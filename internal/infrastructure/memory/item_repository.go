// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria con orden de inserción. No hay base de datos: el estado vive en el
// proceso y se siembra con los datos de muestra del dashboard.
package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
)

// ItemRepository repositorio de ítems en memoria.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
	order []string
	seq   int
}

// NewItemRepository construye el repositorio vacío.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*entity.Item)}
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

// Create agrega un ítem. Devuelve ErrDuplicate si el ID ya existe: la
// unicidad del ID dentro de la colección es invariante del llamador.
func (r *ItemRepository) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(item)
}

// CreateBatch agrega los ítems aceptados de una importación en una sola
// sección crítica, preservando el orden recibido.
func (r *ItemRepository) CreateBatch(items []*entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		if err := r.create(item); err != nil {
			return err
		}
	}
	return nil
}

func (r *ItemRepository) create(item *entity.Item) error {
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("%w: ítem %s", domain.ErrDuplicate, item.ID)
	}
	copied := *item
	r.items[item.ID] = &copied
	r.order = append(r.order, item.ID)
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

// Update reemplaza el ítem existente.
func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, item.ID)
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

// List devuelve los ítems en orden de inserción.
func (r *ItemRepository) List() ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.items[id]
		out = append(out, &copied)
	}
	return out, nil
}

// Delete elimina el ítem por ID.
func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, id)
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextID entrega y consume el siguiente ID secuencial con el prefijo INV.
func (r *ItemRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("INV%03d", r.seq)
}

// setSeq posiciona el contador después de la semilla; ver seed.go.
func (r *ItemRepository) setSeq(n int) {
	r.mu.Lock()
	r.seq = n
	r.mu.Unlock()
}
