package entity

import "time"

// Estados del ciclo de vida de una solicitud de traslado. PendingApproval es
// el estado inicial; Completed y Rejected son terminales (no hay transiciones
// definidas desde ellos).
const (
	TransferStatusPending   = "Pending Approval"
	TransferStatusCompleted = "Completed"
	TransferStatusRejected  = "Rejected"
)

// TransferRequest una propuesta de movimiento de stock entre dos bodegas,
// sujeta a aprobación del lado destino. Invariante: From != To, Quantity > 0.
// La autorización se resuelve por igualdad del nombre de bodega: el origen no
// maneja un identificador estable, debilidad conocida que se preserva.
type TransferRequest struct {
	ID          string
	Item        string
	From        string
	To          string
	Quantity    int
	Status      string
	InitiatedBy string // igual a From en la creación
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Terminal indica si la solicitud alcanzó un estado final.
func (t TransferRequest) Terminal() bool {
	return t.Status == TransferStatusCompleted || t.Status == TransferStatusRejected
}
