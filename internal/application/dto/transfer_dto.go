package dto

import "time"

// CreateTransferRequest entrada para iniciar un traslado entre bodegas.
type CreateTransferRequest struct {
	Item     string `json:"item" validate:"required"`
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// TransferResponse salida de una solicitud de traslado. CanAct indica si la
// bodega del punto de vista actual puede aprobar o rechazar.
type TransferResponse struct {
	ID          string    `json:"id"`
	Item        string    `json:"item"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	InitiatedBy string    `json:"initiated_by"`
	CanAct      bool      `json:"can_act"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransferListResponse lista de traslados vista desde una bodega.
type TransferListResponse struct {
	Items  []TransferResponse `json:"items"`
	Viewer string             `json:"viewer"` // bodega del punto de vista actual
}

// NotificationResponse notificación dirigida a una bodega.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Warehouse string    `json:"warehouse"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
