// Package transfer implementa el flujo de traslados de stock entre bodegas:
// creación con validación, aprobación/rechazo autorizados por la bodega
// destino y emisión de notificaciones al outbox del colaborador.
package transfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/domain/repository"
	"github.com/jhoicas/InventoryPro-api/pkg/logger"
)

// UseCase casos de uso del flujo de traslados.
type UseCase struct {
	transfers repository.TransferRepository
	outbox    repository.NotificationOutbox
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(transfers repository.TransferRepository, outbox repository.NotificationOutbox, log *logger.Logger) *UseCase {
	return &UseCase{transfers: transfers, outbox: outbox, log: log}
}

// Create registra una solicitud en estado Pending Approval. Falla con
// ErrSameWarehouse cuando origen y destino coinciden y con ErrBadQuantity
// cuando la cantidad no es un entero positivo; en ambos casos no se crea
// nada. Al crear emite una notificación dirigida a la bodega destino.
func (uc *UseCase) Create(item, from, to string, quantity int) (*entity.TransferRequest, error) {
	if item == "" || from == "" || to == "" {
		return nil, fmt.Errorf("%w: item, from y to son requeridos", domain.ErrInvalidInput)
	}
	if from == to {
		return nil, domain.ErrSameWarehouse
	}
	if quantity <= 0 {
		return nil, domain.ErrBadQuantity
	}

	now := time.Now()
	req := &entity.TransferRequest{
		ID:          uc.transfers.NextID(),
		Item:        item,
		From:        from,
		To:          to,
		Quantity:    quantity,
		Status:      entity.TransferStatusPending,
		InitiatedBy: from,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.transfers.Create(req); err != nil {
		return nil, err
	}

	// La notificación va al destino: es quien debe aprobar o rechazar.
	if err := uc.outbox.Emit(&entity.Notification{
		ID:        uuid.New().String(),
		Text:      fmt.Sprintf("New transfer request for %dx %q from %s.", quantity, item, from),
		Warehouse: to,
		Color:     "orange",
		CreatedAt: now,
	}); err != nil {
		uc.log.Warn().Err(err).Str("transfer", req.ID).Msg("emisión de notificación fallida")
	}

	uc.log.Info().
		Str("transfer", req.ID).
		Str("from", from).
		Str("to", to).
		Int("quantity", quantity).
		Msg("solicitud de traslado creada")
	return req, nil
}

// Approve transiciona Pending Approval → Completed. Solo la bodega destino
// puede actuar; cualquier otro actor recibe ErrForbidden sin que el estado
// cambie. Desde un estado terminal devuelve ErrInvalidState.
func (uc *UseCase) Approve(requestID, actingWarehouse string) (*entity.TransferRequest, error) {
	return uc.transition(requestID, actingWarehouse, entity.TransferStatusCompleted)
}

// Reject transiciona Pending Approval → Rejected bajo la misma guarda que
// Approve.
func (uc *UseCase) Reject(requestID, actingWarehouse string) (*entity.TransferRequest, error) {
	return uc.transition(requestID, actingWarehouse, entity.TransferStatusRejected)
}

func (uc *UseCase) transition(requestID, actingWarehouse, newStatus string) (*entity.TransferRequest, error) {
	req, err := uc.transfers.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Terminal() {
		return nil, domain.ErrInvalidState
	}
	// La UI no expone el control a otras bodegas, pero la guarda se mantiene
	// aquí: el estado almacenado nunca debe corromperse.
	if actingWarehouse != req.To {
		return nil, domain.ErrForbidden
	}

	req.Status = newStatus
	req.UpdatedAt = time.Now()
	if err := uc.transfers.Update(req); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transfer", req.ID).
		Str("status", newStatus).
		Str("actor", actingWarehouse).
		Msg("traslado actualizado")
	return req, nil
}

// List devuelve todas las solicitudes en orden de inserción.
func (uc *UseCase) List() ([]*entity.TransferRequest, error) {
	return uc.transfers.List()
}

// Notifications lista el outbox de una bodega.
func (uc *UseCase) Notifications(warehouse string) ([]*entity.Notification, error) {
	return uc.outbox.ListByWarehouse(warehouse)
}
