package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventoryPro-api/internal/application/transfer"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
	"github.com/jhoicas/InventoryPro-api/internal/infrastructure/memory"
	"github.com/jhoicas/InventoryPro-api/pkg/logger"
)

func newTransferUC(t *testing.T) (*transfer.UseCase, *memory.NotificationOutbox) {
	t.Helper()
	outbox := memory.NewNotificationOutbox()
	return transfer.NewUseCase(memory.NewTransferRepository(), outbox, logger.Nop()), outbox
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SolicitudValida(t *testing.T) {
	uc, _ := newTransferUC(t)

	req, err := uc.Create("Laptop Dell XPS", "Central", "Norte", 10)
	require.NoError(t, err)

	assert.Equal(t, "TRN001", req.ID)
	assert.Equal(t, entity.TransferStatusPending, req.Status)
	assert.Equal(t, "Central", req.InitiatedBy, "la solicitud queda iniciada por la bodega origen")
	assert.False(t, req.Terminal())
}

func TestCreate_CamposVacios(t *testing.T) {
	uc, _ := newTransferUC(t)

	_, err := uc.Create("", "Central", "Norte", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("Laptop", "", "Norte", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("Laptop", "Central", "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MismaBodega(t *testing.T) {
	uc, _ := newTransferUC(t)

	_, err := uc.Create("Laptop", "Central", "Central", 10)
	assert.ErrorIs(t, err, domain.ErrSameWarehouse)
}

func TestCreate_CantidadInvalida(t *testing.T) {
	uc, _ := newTransferUC(t)

	_, err := uc.Create("Laptop", "Central", "Norte", 0)
	assert.ErrorIs(t, err, domain.ErrBadQuantity)

	_, err = uc.Create("Laptop", "Central", "Norte", -3)
	assert.ErrorIs(t, err, domain.ErrBadQuantity)

	list, lerr := uc.List()
	require.NoError(t, lerr)
	assert.Empty(t, list, "una creación rechazada no deja rastro")
}

// Al crear se emite una notificación dirigida a la bodega destino, que es
// quien debe decidir la solicitud.
func TestCreate_NotificaALaBodegaDestino(t *testing.T) {
	uc, outbox := newTransferUC(t)

	_, err := uc.Create("Laptop Dell XPS", "Central", "Norte", 10)
	require.NoError(t, err)

	forDestination, err := outbox.ListByWarehouse("Norte")
	require.NoError(t, err)
	require.Len(t, forDestination, 1)
	assert.Equal(t, `New transfer request for 10x "Laptop Dell XPS" from Central.`, forDestination[0].Text)
	assert.Equal(t, "orange", forDestination[0].Color)

	forOrigin, err := outbox.ListByWarehouse("Central")
	require.NoError(t, err)
	assert.Empty(t, forOrigin, "la bodega origen no recibe notificación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_SoloLaBodegaDestino(t *testing.T) {
	uc, _ := newTransferUC(t)
	req, err := uc.Create("Laptop", "Central", "Norte", 10)
	require.NoError(t, err)

	// Ni el origen ni un tercero pueden aprobar
	_, err = uc.Approve(req.ID, "Central")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Approve(req.ID, "Sur")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.Approve(req.ID, "Norte")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusCompleted, got.Status)
	assert.True(t, got.Terminal())
}

func TestReject_SoloLaBodegaDestino(t *testing.T) {
	uc, _ := newTransferUC(t)
	req, err := uc.Create("Laptop", "Central", "Norte", 10)
	require.NoError(t, err)

	_, err = uc.Reject(req.ID, "Central")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.Reject(req.ID, "Norte")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusRejected, got.Status)
}

// Un estado terminal es definitivo: ninguna transición posterior lo cambia.
func TestTransition_EstadoTerminalEsDefinitivo(t *testing.T) {
	uc, _ := newTransferUC(t)
	req, err := uc.Create("Laptop", "Central", "Norte", 10)
	require.NoError(t, err)

	_, err = uc.Approve(req.ID, "Norte")
	require.NoError(t, err)

	_, err = uc.Approve(req.ID, "Norte")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = uc.Reject(req.ID, "Norte")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.TransferStatusCompleted, list[0].Status,
		"el estado no debe cambiar tras el rechazo de la transición")
}

// Un intento no autorizado no muta el estado.
func TestTransition_IntentoNoAutorizadoNoMuta(t *testing.T) {
	uc, _ := newTransferUC(t)
	req, err := uc.Create("Laptop", "Central", "Norte", 10)
	require.NoError(t, err)

	_, err = uc.Approve(req.ID, "Central")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusPending, list[0].Status)
}

func TestTransition_SolicitudInexistente(t *testing.T) {
	uc, _ := newTransferUC(t)

	_, err := uc.Approve("TRN999", "Norte")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrdenDeCreacion(t *testing.T) {
	uc, _ := newTransferUC(t)

	first, err := uc.Create("Laptop", "Central", "Norte", 1)
	require.NoError(t, err)
	second, err := uc.Create("Mouse", "Norte", "Sur", 2)
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
