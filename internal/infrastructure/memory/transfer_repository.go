package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
)

// TransferRepository repositorio de solicitudes de traslado en memoria.
type TransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*entity.TransferRequest
	order     []string
	seq       int
}

// NewTransferRepository construye el repositorio vacío.
func NewTransferRepository() *TransferRepository {
	return &TransferRepository{transfers: make(map[string]*entity.TransferRequest)}
}

var _ repository.TransferRepository = (*TransferRepository)(nil)

// Create agrega una solicitud.
func (r *TransferRepository) Create(transfer *entity.TransferRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transfers[transfer.ID]; exists {
		return fmt.Errorf("%w: traslado %s", domain.ErrDuplicate, transfer.ID)
	}
	copied := *transfer
	r.transfers[transfer.ID] = &copied
	r.order = append(r.order, transfer.ID)
	return nil
}

// GetByID devuelve la solicitud o nil si no existe.
func (r *TransferRepository) GetByID(id string) (*entity.TransferRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	transfer, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	copied := *transfer
	return &copied, nil
}

// Update reemplaza la solicitud existente.
func (r *TransferRepository) Update(transfer *entity.TransferRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transfers[transfer.ID]; !ok {
		return fmt.Errorf("%w: traslado %s", domain.ErrNotFound, transfer.ID)
	}
	copied := *transfer
	r.transfers[transfer.ID] = &copied
	return nil
}

// List devuelve las solicitudes en orden de inserción.
func (r *TransferRepository) List() ([]*entity.TransferRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.TransferRequest, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.transfers[id]
		out = append(out, &copied)
	}
	return out, nil
}

// NextID entrega y consume el siguiente ID secuencial con el prefijo TRN.
func (r *TransferRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("TRN%03d", r.seq)
}

func (r *TransferRepository) setSeq(n int) {
	r.mu.Lock()
	r.seq = n
	r.mu.Unlock()
}
