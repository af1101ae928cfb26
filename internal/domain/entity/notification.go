package entity

import "time"

// Notification evento emitido por el flujo de traslados, dirigido a la bodega
// que debe actuar. Vive en un outbox en memoria propiedad del colaborador.
type Notification struct {
	ID        string
	Text      string
	Warehouse string // bodega destinataria
	Color     string // pista de presentación heredada del dashboard
	CreatedAt time.Time
}
