package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventoryPro-api/internal/application/dto"
	"github.com/jhoicas/InventoryPro-api/internal/application/transfer"
	"github.com/jhoicas/InventoryPro-api/internal/domain"
	"github.com/jhoicas/InventoryPro-api/internal/domain/entity"
)

// TransferHandler maneja las solicitudes de traslado entre bodegas
// (protegido). La bodega del token define el punto de vista: qué solicitudes
// puede aprobar o rechazar el usuario.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create inicia una solicitud de traslado desde la bodega del token.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in.Item, in.From, in.To, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item, from y to son requeridos"})
		case errors.Is(err, domain.ErrSameWarehouse):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SAME_WAREHOUSE", Message: err.Error()})
		case errors.Is(err, domain.ErrBadQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_QUANTITY", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(transferResponse(out, GetWarehouse(c)))
}

// Approve marca la solicitud como completada. Solo la bodega destino puede.
func (h *TransferHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"), GetWarehouse(c))
	return h.transitionResponse(c, out, err)
}

// Reject marca la solicitud como rechazada. Solo la bodega destino puede.
func (h *TransferHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Params("id"), GetWarehouse(c))
	return h.transitionResponse(c, out, err)
}

func (h *TransferHandler) transitionResponse(c *fiber.Ctx, out *entity.TransferRequest, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		case errors.Is(err, domain.ErrInvalidState):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo la bodega destino puede decidir la solicitud"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(transferResponse(out, GetWarehouse(c)))
}

// List retorna todas las solicitudes, anotadas con CanAct según la bodega del
// token.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	viewer := GetWarehouse(c)
	transfers, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.TransferListResponse{Items: make([]dto.TransferResponse, 0, len(transfers)), Viewer: viewer}
	for _, t := range transfers {
		out.Items = append(out.Items, transferResponse(t, viewer))
	}
	return c.JSON(out)
}

// Notifications retorna las notificaciones dirigidas a la bodega del token.
func (h *TransferHandler) Notifications(c *fiber.Ctx) error {
	notifications, err := h.uc.Notifications(GetWarehouse(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Text:      n.Text,
			Warehouse: n.Warehouse,
			Color:     n.Color,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(out)
}

func transferResponse(t *entity.TransferRequest, viewer string) dto.TransferResponse {
	return dto.TransferResponse{
		ID:          t.ID,
		Item:        t.Item,
		From:        t.From,
		To:          t.To,
		Quantity:    t.Quantity,
		Status:      t.Status,
		InitiatedBy: t.InitiatedBy,
		CanAct:      !t.Terminal() && t.To == viewer,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
